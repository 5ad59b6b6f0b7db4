package auth

import (
	"fmt"

	"go.uber.org/fx"

	"github.com/polkiloo/healthboard/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newCredentialStore),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type credentialParams struct {
	fx.In

	Config *config.Config
	Hasher PasswordHasher
}

func newCredentialStore(p credentialParams) CredentialStore {
	if p.Config.AppPasswordHash != "" {
		return NewHashedCredentials(p.Config.AppUsername, p.Config.AppPasswordHash, p.Hasher)
	}
	return NewFixedCredentials(p.Config.AppUsername, p.Config.AppPassword)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) (Strategy, error) {
	opts := Options{TTL: p.Config.TokenTTL}
	switch p.Config.TokenStrategy {
	case "", "jwt":
		return NewJWTStrategy(p.Config.JWTSecret, opts), nil
	case "hmac":
		return NewHMACStrategy(p.Config.JWTSecret, opts), nil
	default:
		return nil, fmt.Errorf("unknown token strategy %q", p.Config.TokenStrategy)
	}
}
