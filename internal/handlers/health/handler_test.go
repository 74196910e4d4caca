package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"encore/infras/otel/mocks"
	"encore/internal/handlers/health"
)

func ok(context.Context) error { return nil }

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		checks   []health.Check
		wantCode int
		wantBody string
	}{
		{
			name:     "all reachable",
			checks:   []health.Check{{Name: "mongo", Ping: ok}, {Name: "redis", Ping: ok}},
			wantCode: http.StatusOK,
			wantBody: `"status":"ok"`,
		},
		{
			name: "redis down",
			checks: []health.Check{
				{Name: "mongo", Ping: ok},
				{Name: "redis", Ping: func(context.Context) error { return errors.New("connection refused") }},
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: `"redis":"connection refused"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := health.NewWithChecks(mocks.NewOtel(), tt.checks...)

			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
