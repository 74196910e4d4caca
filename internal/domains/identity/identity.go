// Package identity is the sign-in boundary used by the admin pages.
//
// Callers see only Provider. The local implementation verifies credentials
// through the auth service and resolves sessions from signed access tokens.
package identity

//go:generate go run go.uber.org/mock/mockgen -source=./identity.go -destination=./mocks/identity_mock.go -package=mocks

import (
	"context"
	"encore/infras/jwt"
	authDto "encore/internal/domains/auth/model/dto"
	authService "encore/internal/domains/auth/service"
	"encore/shared/failure"
	"errors"

	"github.com/rs/zerolog/log"
)

// ErrMissingToken is returned by SignIn when the provider accepted the credentials but issued no token.
var ErrMissingToken = errors.New("identity provider returned no session token")

type Session struct {
	Token     string
	UserID    string
	Email     string
	Role      string
	ExpiresIn int64
}

type Provider interface {
	// SignIn verifies the credentials. The returned error's message is meant to be shown to the user as is.
	SignIn(ctx context.Context, email, password string) (Session, error)
	// Observe resolves the session carried by token. The bool is false when there is none.
	Observe(ctx context.Context, token string) (Session, bool)
}

type local struct {
	auth authService.Auth
	jwt  jwt.JWT
}

func NewLocal(auth authService.Auth, jwt jwt.JWT) Provider {
	return &local{auth: auth, jwt: jwt}
}

func (l *local) SignIn(ctx context.Context, email, password string) (Session, error) {
	res, err := l.auth.Login(ctx, authDto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return Session{}, errors.New(failure.GetMessage(err))
	}

	if res.AccessToken == "" {
		return Session{}, ErrMissingToken
	}

	return Session{
		Token:     res.AccessToken,
		UserID:    res.User.ID,
		Email:     res.User.Email,
		Role:      res.User.Level,
		ExpiresIn: res.ExpiresIn,
	}, nil
}

func (l *local) Observe(_ context.Context, token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	claims, err := l.jwt.ValidateToken(token, jwt.AccessToken)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")

		return Session{}, false
	}

	return Session{
		Token:  token,
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, true
}
