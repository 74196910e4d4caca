package mailer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore/config"
	"encore/infras/mailer"
	"encore/infras/otel/mocks"
)

func newProvider(t *testing.T, handler http.HandlerFunc) mailer.Provider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.External.Mail.APIKey = "re_test"
	cfg.External.Mail.BaseURL = server.URL
	cfg.External.Mail.From = "bookings@encore.local"

	return mailer.New(cfg, mocks.NewOtel())
}

func TestSend_UsesDefaultSender(t *testing.T) {
	var sent map[string]any

	provider := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"em_123"}`))
	})

	id, err := provider.Send(context.Background(), mailer.Email{
		To:          []string{"fan@example.com"},
		Subject:     "Your booking is confirmed",
		HTML:        "<p>See you there</p>",
		Attachments: []mailer.Attachment{{Filename: "status.png", Content: []byte{0x89, 'P', 'N', 'G'}}},
	})

	require.NoError(t, err)
	assert.Equal(t, "em_123", id)
	assert.Equal(t, "bookings@encore.local", sent["from"])
	assert.Equal(t, []any{"fan@example.com"}, sent["to"])
	assert.Equal(t, "Your booking is confirmed", sent["subject"])
	assert.Len(t, sent["attachments"], 1)
}

func TestSend_SurfacesProviderMessage(t *testing.T) {
	provider := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid to field"}`))
	})

	id, err := provider.Send(context.Background(), mailer.Email{
		From:    "owner@encore.local",
		To:      []string{"not-an-address"},
		Subject: "x",
		HTML:    "y",
	})

	require.Error(t, err)
	assert.Empty(t, id)
	assert.Contains(t, err.Error(), "Invalid to field")
}
