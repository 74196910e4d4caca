package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"encore/config"
	"encore/infras/otel"
	"encore/shared/constant"
	"net/url"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

const otelAttrRecipient = "mail.to"

type Attachment struct {
	Filename string
	Content  []byte
}

type Email struct {
	From        string
	To          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Provider sends one transactional email and returns the provider message id.
type Provider interface {
	Send(ctx context.Context, email Email) (id string, err error)
}

type resendProvider struct {
	client *resend.Client
	from   string
	otel   otel.Otel
}

// New returns the Resend backed provider. An empty API key still yields a provider;
// callers check the key before sending so the failure reads as a configuration error.
func New(config *config.Config, otel otel.Otel) Provider {
	if config.External.Mail.APIKey == "" {
		log.Warn().Msg("Mail API key is empty, outbound email is disabled")
	}

	client := resend.NewClient(config.External.Mail.APIKey)

	if raw := config.External.Mail.BaseURL; raw != "" {
		baseURL, err := url.Parse(raw)
		if err != nil {
			log.Warn().Err(err).Str("base_url", raw).Msg("Ignoring invalid mail base URL")
		} else {
			client.BaseURL = baseURL
		}
	}

	return &resendProvider{
		client: client,
		from:   config.External.Mail.From,
		otel:   otel,
	}
}

func (p *resendProvider) Send(ctx context.Context, email Email) (id string, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.Finish(&err)

	scope.SetAttribute(otelAttrRecipient, email.To)

	from := email.From
	if from == "" {
		from = p.from
	}

	request := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	}

	for _, attachment := range email.Attachments {
		request.Attachments = append(request.Attachments, &resend.Attachment{
			Filename: attachment.Filename,
			Content:  attachment.Content,
		})
	}

	sent, err := p.client.Emails.SendWithContext(ctx, request)
	if err != nil {
		log.Error().Err(err).Strs("to", email.To).Msg("failed to send email")

		return constant.Empty, err //nolint:wrapcheck
	}

	log.Info().Str("id", sent.Id).Strs("to", email.To).Msg("email sent")

	return sent.Id, nil
}
