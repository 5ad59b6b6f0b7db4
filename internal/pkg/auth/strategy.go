package auth

import (
	"errors"
	"time"

	"github.com/polkiloo/healthboard/internal/domain/model"
)

var (
	ErrInvalidToken = errors.New("invalid auth token")
	ErrTokenExpired = errors.New("auth token expired")
)

// DefaultTTL is the lifetime of issued tokens unless configured otherwise.
const DefaultTTL = 24 * time.Hour

// Strategy issues and verifies signed session tokens.
type Strategy interface {
	IssueToken(username string) (string, error)
	ParseToken(token string) (*model.Session, error)
	Name() string
}

// Options tune token strategies. Now is used for issue and expiry checks.
type Options struct {
	TTL time.Duration
	Now func() time.Time
}

func (o Options) normalize() Options {
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
