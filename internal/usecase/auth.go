package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/polkiloo/healthboard/internal/domain/errors"
	"github.com/polkiloo/healthboard/internal/domain/model"
	pkgAuth "github.com/polkiloo/healthboard/internal/pkg/auth"
)

// AuthUseCase exchanges the configured credential pair for session tokens.
type AuthUseCase struct {
	creds  pkgAuth.CredentialStore
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(creds pkgAuth.CredentialStore, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{creds: creds, tokens: strategy}
}

// Login validates the submitted pair and returns a signed token for username.
// The username is not normalized; comparison is exact.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if username == "" || password == "" || !u.creds.Check(username, password) {
		return "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// ParseToken verifies token and returns the session it encodes.
func (u *AuthUseCase) ParseToken(token string) (*model.Session, error) {
	if token == "" {
		return nil, domainErrors.ErrMissingToken
	}
	session, err := u.tokens.ParseToken(token)
	switch {
	case errors.Is(err, pkgAuth.ErrInvalidToken), errors.Is(err, pkgAuth.ErrTokenExpired):
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrInvalidToken, err)
	case err != nil:
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return session, nil
}

// StrategyName reports the configured token format.
func (u *AuthUseCase) StrategyName() string {
	return u.tokens.Name()
}
