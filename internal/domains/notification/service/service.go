package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"embed"
	"encore/config"
	"encore/infras/jwt"
	"encore/infras/mailer"
	"encore/infras/otel"
	"encore/internal/domains/booking/event"
	bookingModel "encore/internal/domains/booking/model"
	"encore/internal/domains/notification/model/dto"
	"encore/shared/constant"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
)

const (
	defaultTimeout = 8 * time.Second
	qrSize         = 256
	qrFilename     = "booking-status.png"

	pathVerifyEmail   = "/pages/verify-email"
	pathBookingStatus = "/pages/booking_status"
	pathManageBooking = "/pages/manage_booking"
)

var ErrMissingAPIKey = errors.New("email provider API key is not configured")

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Notification interface {
	// SendEmail forwards one message to the provider and gives up waiting after the configured deadline.
	SendEmail(ctx context.Context, req dto.SendEmailRequest) (dto.SendEmailResponse, error)
	SendVerification(ctx context.Context, booking bookingModel.Booking) error
	SendStatusUpdate(ctx context.Context, evt event.Event) error
	NotifyAdmin(ctx context.Context, evt event.Event) error
}

type serviceImpl struct {
	provider mailer.Provider
	jwt      jwt.JWT
	cfg      *config.Config
	otel     otel.Otel
}

func New(provider mailer.Provider, jwt jwt.JWT, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		provider: provider,
		jwt:      jwt,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) SendEmail(ctx context.Context, req dto.SendEmailRequest) (res dto.SendEmailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendEmail")
	defer scope.Finish(&err)

	res.ID, err = s.deliver(ctx, mailer.Email{
		To:      []string{req.To},
		Subject: req.Subject,
		HTML:    req.Body,
	})

	return res, err
}

func (s *serviceImpl) SendVerification(ctx context.Context, booking bookingModel.Booking) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendVerification")
	defer scope.Finish(&err)

	token, err := s.jwt.GenerateVerifyToken(booking.ID, booking.Email)
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to generate verify token")

		return fmt.Errorf("failed to generate verify token: %w", err)
	}

	statusURL := s.statusURL(booking.ID, booking.Email)

	qr, err := qrcode.Encode(statusURL, qrcode.Medium, qrSize)
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to encode status qr code")

		return fmt.Errorf("failed to encode status qr code: %w", err)
	}

	body, err := render("verification.html", map[string]string{
		"Name":      booking.Name,
		"EventDate": booking.EventDate,
		"Venue":     booking.Venue,
		"VerifyURL": s.link(pathVerifyEmail, url.Values{constant.RequestParamToken: {token}}),
		"StatusURL": statusURL,
	})
	if err != nil {
		return err
	}

	_, err = s.deliver(ctx, mailer.Email{
		To:          []string{booking.Email},
		Subject:     "Confirm your booking request",
		HTML:        body,
		Attachments: []mailer.Attachment{{Filename: qrFilename, Content: qr}},
	})

	return err
}

func (s *serviceImpl) SendStatusUpdate(ctx context.Context, evt event.Event) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendStatusUpdate")
	defer scope.Finish(&err)

	body, err := render("status.html", map[string]string{
		"Name":      evt.Name,
		"EventDate": evt.EventDate,
		"Venue":     evt.Venue,
		"Status":    evt.Status.String(),
		"StatusURL": s.statusURL(evt.BookingID, evt.Email),
	})
	if err != nil {
		return err
	}

	_, err = s.deliver(ctx, mailer.Email{
		To:      []string{evt.Email},
		Subject: "Your booking is " + evt.Status.String(),
		HTML:    body,
	})

	return err
}

func (s *serviceImpl) NotifyAdmin(ctx context.Context, evt event.Event) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NotifyAdmin")
	defer scope.Finish(&err)

	if s.cfg.External.Mail.AdminAddress == "" {
		log.Debug().Str("booking_id", evt.BookingID).Msg("no admin address configured, skipping new booking alert")

		return nil
	}

	body, err := render("admin_new_booking.html", map[string]string{
		"Name":      evt.Name,
		"Email":     evt.Email,
		"EventDate": evt.EventDate,
		"Venue":     evt.Venue,
		"ManageURL": s.link(pathManageBooking, nil),
	})
	if err != nil {
		return err
	}

	_, err = s.deliver(ctx, mailer.Email{
		To:      []string{s.cfg.External.Mail.AdminAddress},
		Subject: "New booking request from " + evt.Name,
		HTML:    body,
	})

	return err
}

type delivery struct {
	id  string
	err error
}

// deliver races the provider call against the deadline. The provider gets the
// deadline context but is not trusted to honour it.
func (s *serviceImpl) deliver(ctx context.Context, email mailer.Email) (string, error) {
	if s.cfg.External.Mail.APIKey == "" {
		return constant.Empty, ErrMissingAPIKey
	}

	timeout := s.cfg.External.Mail.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan delivery, 1)

	go func() {
		id, err := s.provider.Send(ctx, email)
		done <- delivery{id: id, err: err}
	}()

	select {
	case result := <-done:
		return result.id, result.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.Warn().Strs("to", email.To).Dur("timeout", timeout).Msg("email send timed out")

			return constant.Empty, fmt.Errorf("email send timed out after %s", timeout)
		}

		return constant.Empty, fmt.Errorf("email send aborted: %w", ctx.Err())
	}
}

func (s *serviceImpl) link(path string, query url.Values) string {
	link := strings.TrimRight(s.cfg.App.BaseURL, "/") + path
	if len(query) > 0 {
		link += "?" + query.Encode()
	}

	return link
}

func (s *serviceImpl) statusURL(bookingID, email string) string {
	return s.link(pathBookingStatus, url.Values{
		constant.RequestParamID:    {bookingID},
		constant.RequestParamEmail: {email},
	})
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to render email")

		return constant.Empty, fmt.Errorf("failed to render %s: %w", name, err)
	}

	return buf.String(), nil
}
