package test

import (
	"context"
	"errors"
	"time"

	"github.com/polkiloo/healthboard/internal/domain/model"
	pkgAuth "github.com/polkiloo/healthboard/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// CredentialStoreStub accepts exactly Username/Password unless CheckFn is set.
type CredentialStoreStub struct {
	Username string
	Password string
	CheckFn  func(string, string) bool
}

// Check reports whether the pair matches the configured one.
func (s CredentialStoreStub) Check(username, password string) bool {
	if s.CheckFn != nil {
		return s.CheckFn(username, password)
	}
	return username == s.Username && password == s.Password
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (*model.Session, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(username string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(username)
	}
	return "token-" + username, nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (*model.Session, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return FixedSession("analyst"), nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// FixedSession returns a session issued at a fixed instant with a 24h lifetime.
func FixedSession(username string) *model.Session {
	issued := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return &model.Session{Username: username, IssuedAt: issued, ExpiresAt: issued.Add(24 * time.Hour)}
}

// TokenParserStub implements middleware token parsing contract.
type TokenParserStub struct {
	Session *model.Session
	Err     error
	ParseFn func(string) (*model.Session, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s TokenParserStub) ParseToken(token string) (*model.Session, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Session != nil {
		return s.Session, nil
	}
	return FixedSession("analyst"), nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	LoginFn func(context.Context, string, string) (string, error)
	ParseFn func(string) (*model.Session, error)
}

// Login returns token for successful login scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, username, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return "token", nil
}

// ParseToken returns a fixed session for any token.
func (s AuthFacadeStub) ParseToken(token string) (*model.Session, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return FixedSession("analyst"), nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
var _ pkgAuth.CredentialStore = CredentialStoreStub{}
