package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore/infras/otel/mocks"
	authMocks "encore/internal/domains/auth/mocks"
	"encore/internal/domains/auth/model/dto"
	userDto "encore/internal/domains/user/model/dto"
	"encore/internal/handlers/auth"
	"encore/shared/constant"
	"encore/shared/failure"
)

func newRouter(t *testing.T, userID string) (*authMocks.MockAuth, http.Handler) {
	t.Helper()

	svc := authMocks.NewMockAuth(gomock.NewController(t))
	handler := auth.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.Router(router)

	return svc, router
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(svc *authMocks.MockAuth)
		wantCode int
		wantBody string
	}{
		{
			name: "valid credentials return a token pair",
			body: `{"email":"owner@encore.local","password":"secret"}`,
			setup: func(svc *authMocks.MockAuth) {
				svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{Email: "owner@encore.local", Password: "secret"}).
					Return(dto.LoginResponse{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"access_token":"access"`,
		},
		{
			name: "wrong password is unauthorized",
			body: `{"email":"owner@encore.local","password":"nope"}`,
			setup: func(svc *authMocks.MockAuth) {
				svc.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(dto.LoginResponse{}, failure.Unauthorized("invalid email or password"))
			},
			wantCode: http.StatusUnauthorized,
			wantBody: "invalid email or password",
		},
		{
			name:     "missing password never reaches the service",
			body:     `{"email":"owner@encore.local"}`,
			setup:    func(*authMocks.MockAuth) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t, "")
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestMe_UsesSignedInAdmin(t *testing.T) {
	svc, router := newRouter(t, "u-1")

	svc.EXPECT().Me(gomock.Any(), "u-1").
		Return(userDto.UserResponse{ID: "u-1", Email: "owner@encore.local", Level: constant.RoleSuperAdmin, Active: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"owner@encore.local"`)
}

func TestChangePassword_PassesSignedInAdmin(t *testing.T) {
	svc, router := newRouter(t, "u-2")

	svc.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), "u-2").Return(nil)

	body := `{"current_password":"old-secret","new_password":"new-secret-1"}`
	req := httptest.NewRequest(http.MethodPatch, "/auth/password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
