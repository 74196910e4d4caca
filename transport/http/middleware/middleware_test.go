package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore/config"
	"encore/infras/jwt"
	"encore/infras/otel/mocks"
	"encore/permissions"
	"encore/shared/constant"
)

const internalAPIKey = "internal-key"

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "encore"
	cfg.App.APIKey = internalAPIKey
	cfg.App.Session.CookieName = "encore_session"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.VerifySecret = "verify-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60
	cfg.JWT.VerifyExpireMin = 60

	return cfg
}

func reached(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// newProtectedRouter mirrors the /v1 and /api trees with the real permissions table.
func newProtectedRouter(t *testing.T) (http.Handler, jwt.JWT) {
	t.Helper()

	cfg := newConfig()
	jwtService := jwt.New(cfg)
	authRole := NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), permissions.Get(), cfg)

	router := chi.NewRouter()

	router.Route("/v1", func(v1 chi.Router) {
		v1.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)

		v1.Route("/bookings", func(bookings chi.Router) {
			bookings.Post("/", reached)
			bookings.Patch("/{id}", reached)
		})
		v1.Route("/users", func(users chi.Router) {
			users.Get("/", reached)
		})
	})

	router.Route("/api", func(api chi.Router) {
		api.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
		api.Post("/send-email", reached)
	})

	return router, jwtService
}

func accessToken(t *testing.T, jwtService jwt.JWT, role string) string {
	t.Helper()

	pair, err := jwtService.GenerateTokenPair("u-1", role+"@encore.local", role)
	require.NoError(t, err)

	return pair.AccessToken
}

func TestAuthChain(t *testing.T) {
	router, jwtService := newProtectedRouter(t)

	admin := accessToken(t, jwtService, constant.RoleAdmin)
	superAdmin := accessToken(t, jwtService, constant.RoleSuperAdmin)

	tests := []struct {
		name     string
		method   string
		path     string
		bearer   string
		cookie   string
		apiKey   string
		wantCode int
	}{
		{name: "send-email without credentials", method: http.MethodPost, path: "/api/send-email", wantCode: http.StatusUnauthorized},
		{name: "send-email with admin bearer", method: http.MethodPost, path: "/api/send-email", bearer: admin, wantCode: http.StatusNoContent},
		{name: "send-email with admin session cookie", method: http.MethodPost, path: "/api/send-email", cookie: admin, wantCode: http.StatusNoContent},
		{name: "send-email with internal key", method: http.MethodPost, path: "/api/send-email", apiKey: internalAPIKey, wantCode: http.StatusNoContent},
		{name: "send-email with wrong key", method: http.MethodPost, path: "/api/send-email", apiKey: "guess", wantCode: http.StatusForbidden},
		{name: "send-email with forged bearer", method: http.MethodPost, path: "/api/send-email", bearer: "not-a-jwt", wantCode: http.StatusUnauthorized},
		{name: "public booking intake", method: http.MethodPost, path: "/v1/bookings", wantCode: http.StatusNoContent},
		{name: "booking edit without credentials", method: http.MethodPatch, path: "/v1/bookings/abc", wantCode: http.StatusUnauthorized},
		{name: "booking edit with admin bearer", method: http.MethodPatch, path: "/v1/bookings/abc", bearer: admin, wantCode: http.StatusNoContent},
		{name: "user list is superadmin only", method: http.MethodGet, path: "/v1/users", bearer: admin, wantCode: http.StatusForbidden},
		{name: "user list for superadmin", method: http.MethodGet, path: "/v1/users", bearer: superAdmin, wantCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)

			if tt.bearer != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+tt.bearer)
			}

			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "encore_session", Value: tt.cookie})
			}

			if tt.apiKey != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.apiKey)
			}

			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newThrottle(perMinute, burst int) (*ipThrottle, *clock) {
	c := &clock{now: time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)}

	throttle := newIPThrottle(perMinute, burst)
	throttle.now = c.Now

	return throttle, c
}

func TestIPThrottle_BurstThenRefill(t *testing.T) {
	throttle, c := newThrottle(60, 2)

	assert.True(t, throttle.allow("203.0.113.7"))
	assert.True(t, throttle.allow("203.0.113.7"))
	assert.False(t, throttle.allow("203.0.113.7"), "burst is spent")
	assert.True(t, throttle.allow("198.51.100.1"), "other visitors keep their own bucket")

	c.now = c.now.Add(time.Second)

	assert.True(t, throttle.allow("203.0.113.7"), "one token per second at 60 per minute")
	assert.False(t, throttle.allow("203.0.113.7"))
}

func TestIPThrottle_EvictsIdleVisitors(t *testing.T) {
	throttle, c := newThrottle(1, 1)

	assert.True(t, throttle.allow("203.0.113.7"))
	assert.False(t, throttle.allow("203.0.113.7"))

	c.now = c.now.Add(throttleIdleTTL + time.Second)

	assert.True(t, throttle.allow("198.51.100.1"))
	assert.NotContains(t, throttle.visitors, "203.0.113.7")
	assert.Len(t, throttle.visitors, 1)

	assert.True(t, throttle.allow("203.0.113.7"), "an evicted visitor starts with a full bucket")
}

func TestThrottle_Middleware(t *testing.T) {
	throttle, _ := newThrottle(1, 1)
	app := &appMiddleware{config: newConfig(), throttle: throttle}
	handler := app.Throttle()(http.HandlerFunc(reached))

	send := func(method, forwardedFor string) int {
		req := httptest.NewRequest(method, "/pages/booking", nil)
		req.RemoteAddr = "203.0.113.7:51000"

		if forwardedFor != "" {
			req.Header.Set("X-Forwarded-For", forwardedFor)
		}

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec.Code
	}

	require.Equal(t, http.StatusNoContent, send(http.MethodPost, ""))
	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost, ""))
	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost, "192.0.2.99"), "a spoofed forwarded header does not reset the bucket")
	assert.Equal(t, http.StatusNoContent, send(http.MethodGet, ""), "reads are never throttled")
}
