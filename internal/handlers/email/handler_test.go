package email_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore/infras/otel/mocks"
	notificationMocks "encore/internal/domains/notification/mocks"
	"encore/internal/domains/notification/model/dto"
	"encore/internal/domains/notification/service"
	"encore/internal/handlers/email"
)

type envelope struct {
	Success bool                   `json:"success"`
	Data    *dto.SendEmailResponse `json:"data"`
	Error   *string                `json:"error"`
}

func send(t *testing.T, svc *notificationMocks.MockNotification, body string) (int, envelope) {
	t.Helper()

	handler := email.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/send-email", strings.NewReader(body)))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec.Code, env
}

const validBody = `{"to":"ada@example.com","subject":"Your booking","body":"<p>Confirmed</p>"}`

func TestSendEmail(t *testing.T) {
	svc := notificationMocks.NewMockNotification(gomock.NewController(t))

	svc.EXPECT().SendEmail(gomock.Any(), dto.SendEmailRequest{
		To:      "ada@example.com",
		Subject: "Your booking",
		Body:    "<p>Confirmed</p>",
	}).Return(dto.SendEmailResponse{ID: "msg-1"}, nil)

	code, env := send(t, svc, validBody)

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Data)
	assert.Equal(t, "msg-1", env.Data.ID)
	assert.Nil(t, env.Error)
}

func TestSendEmail_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "missing api key", err: service.ErrMissingAPIKey, want: service.ErrMissingAPIKey.Error()},
		{name: "provider error", err: errors.New("domain is not verified"), want: "domain is not verified"},
		{name: "timeout", err: errors.New("email send timed out after 8s"), want: "email send timed out after 8s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := notificationMocks.NewMockNotification(gomock.NewController(t))
			svc.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(dto.SendEmailResponse{}, tt.err)

			code, env := send(t, svc, validBody)

			assert.Equal(t, http.StatusInternalServerError, code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.want, *env.Error)
		})
	}
}

func TestSendEmail_InvalidBody(t *testing.T) {
	svc := notificationMocks.NewMockNotification(gomock.NewController(t))

	code, env := send(t, svc, `{"to":"not-an-email","subject":"x","body":"y"}`)

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Contains(t, *env.Error, "email")
}
