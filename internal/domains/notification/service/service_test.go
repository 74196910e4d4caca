package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore/config"
	jwtMocks "encore/infras/jwt/mocks"
	"encore/infras/mailer"
	mailerMocks "encore/infras/mailer/mocks"
	"encore/infras/otel/mocks"
	"encore/internal/domains/booking/event"
	bookingModel "encore/internal/domains/booking/model"
	"encore/internal/domains/notification/model/dto"
	"encore/internal/domains/notification/service"
)

func newConfig(apiKey string, timeout time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.App.BaseURL = "https://encore.test"
	cfg.External.Mail.APIKey = apiKey
	cfg.External.Mail.Timeout = timeout

	return cfg
}

func TestNotificationService_SendEmail(t *testing.T) {
	req := dto.SendEmailRequest{To: "fan@example.com", Subject: "Hello", Body: "<p>hi</p>"}

	tests := []struct {
		name      string
		apiKey    string
		timeout   time.Duration
		setupMock func(provider *mailerMocks.MockProvider, release chan struct{})
		wantID    string
		wantErr   string
	}{
		{
			name:      "missing api key",
			setupMock: func(*mailerMocks.MockProvider, chan struct{}) {},
			wantErr:   "email provider API key is not configured",
		},
		{
			name:   "provider error is returned verbatim",
			apiKey: "re_test",
			setupMock: func(provider *mailerMocks.MockProvider, _ chan struct{}) {
				provider.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("The `to` field must be a valid email"))
			},
			wantErr: "The `to` field must be a valid email",
		},
		{
			name:    "deadline expires before the provider answers",
			apiKey:  "re_test",
			timeout: 20 * time.Millisecond,
			setupMock: func(provider *mailerMocks.MockProvider, release chan struct{}) {
				provider.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, mailer.Email) (string, error) {
						<-release

						return "late-id", nil
					})
			},
			wantErr: "email send timed out after 20ms",
		},
		{
			name:   "sent",
			apiKey: "re_test",
			setupMock: func(provider *mailerMocks.MockProvider, _ chan struct{}) {
				provider.EXPECT().
					Send(gomock.Any(), mailer.Email{To: []string{"fan@example.com"}, Subject: "Hello", HTML: "<p>hi</p>"}).
					Return("msg-123", nil)
			},
			wantID: "msg-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mailerMocks.NewMockProvider(ctrl)
			release := make(chan struct{})

			tt.setupMock(provider, release)

			svc := service.New(provider, jwtMocks.NewMockJWT(ctrl), newConfig(tt.apiKey, tt.timeout), mocks.NewOtel())

			res, err := svc.SendEmail(context.Background(), req)
			close(release)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
		})
	}
}

func TestNotificationService_SendEmail_MissingKeySentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mailerMocks.NewMockProvider(ctrl)

	svc := service.New(provider, jwtMocks.NewMockJWT(ctrl), newConfig("", 0), mocks.NewOtel())

	_, err := svc.SendEmail(context.Background(), dto.SendEmailRequest{To: "a@b.c"})
	assert.ErrorIs(t, err, service.ErrMissingAPIKey)
}

func TestNotificationService_SendVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mailerMocks.NewMockProvider(ctrl)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(provider, jwtService, newConfig("re_test", time.Second), mocks.NewOtel())

	booking := bookingModel.Booking{ID: "b1", Name: "Ada", Email: "ada@example.com", Venue: "Town Hall", EventDate: "2026-12-31"}

	jwtService.EXPECT().GenerateVerifyToken("b1", "ada@example.com").Return("signed", nil)
	provider.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, email mailer.Email) (string, error) {
			assert.Equal(t, []string{"ada@example.com"}, email.To)
			assert.Contains(t, email.HTML, "https://encore.test/pages/verify-email?token=signed")
			assert.Contains(t, email.HTML, "Town Hall")
			require.Len(t, email.Attachments, 1)
			assert.Equal(t, []byte("\x89PNG"), email.Attachments[0].Content[:4])

			return "id", nil
		})

	require.NoError(t, svc.SendVerification(context.Background(), booking))
}

func TestNotificationService_SendStatusUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mailerMocks.NewMockProvider(ctrl)

	svc := service.New(provider, jwtMocks.NewMockJWT(ctrl), newConfig("re_test", time.Second), mocks.NewOtel())

	provider.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, email mailer.Email) (string, error) {
			assert.Equal(t, "Your booking is confirmed", email.Subject)
			assert.Contains(t, email.HTML, "is confirmed")

			return "id", nil
		})

	err := svc.SendStatusUpdate(context.Background(), event.Event{
		BookingID: "b1",
		Email:     "ada@example.com",
		Status:    bookingModel.StatusConfirmed,
	})
	require.NoError(t, err)
}

func TestNotificationService_NotifyAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mailerMocks.NewMockProvider(ctrl)

	cfg := newConfig("re_test", time.Second)
	svc := service.New(provider, jwtMocks.NewMockJWT(ctrl), cfg, mocks.NewOtel())

	require.NoError(t, svc.NotifyAdmin(context.Background(), event.Event{BookingID: "b1"}))

	cfg.External.Mail.AdminAddress = "owner@encore.test"

	provider.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, email mailer.Email) (string, error) {
			assert.Equal(t, []string{"owner@encore.test"}, email.To)
			assert.Contains(t, email.HTML, "https://encore.test/pages/manage_booking")

			return "id", nil
		})

	require.NoError(t, svc.NotifyAdmin(context.Background(), event.Event{BookingID: "b1", Name: "Ada"}))
}
