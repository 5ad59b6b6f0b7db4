package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNewHMACStrategy_DefaultTTL(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if strategy == nil {
		t.Fatal("expected strategy instance")
	}
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}

func TestNewHMACStrategy_CustomTTL(t *testing.T) {
	ttl := 2 * time.Hour
	strategy := NewHMACStrategy("secret", Options{TTL: ttl})
	if strategy.ttl != ttl {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}

func TestHMACStrategy_IssueAndParse(t *testing.T) {
	clock := newClock()
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute, Now: clock.Now})
	token, err := strategy.IssueToken("dr:who")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	session, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if session.Username != "dr:who" {
		t.Fatalf("unexpected username: %q", session.Username)
	}
	if !session.ExpiresAt.Equal(clock.now.Add(time.Minute)) {
		t.Fatalf("unexpected expiry: %v", session.ExpiresAt)
	}
}

func TestHMACStrategy_ParseInvalidBase64(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if _, err := strategy.ParseToken("not-base64"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategy_ParseInvalidParts(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	token := base64.StdEncoding.EncodeToString([]byte("only:two"))
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategy_ParseInvalidSignature(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken("analyst")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		t.Fatalf("unexpected parts count: %d", len(parts))
	}
	parts[3] = "tampered"
	tamperedToken := base64.StdEncoding.EncodeToString([]byte(strings.Join(parts, ":")))
	if _, err := strategy.ParseToken(tamperedToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func signedHMACToken(s *HMACStrategy, payload string) string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", payload, s.sign(payload))))
}

func TestHMACStrategy_ParseInvalidFields(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	user := base64.RawURLEncoding.EncodeToString([]byte("analyst"))
	future := time.Now().Add(time.Minute).Unix()

	cases := map[string]string{
		"bad username": fmt.Sprintf("!!:%d:%d", time.Now().Unix(), future),
		"empty user":   fmt.Sprintf(":%d:%d", time.Now().Unix(), future),
		"bad issued":   fmt.Sprintf("%s:abc:%d", user, future),
		"bad expiry":   fmt.Sprintf("%s:%d:not-a-number", user, time.Now().Unix()),
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := strategy.ParseToken(signedHMACToken(strategy, payload)); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestHMACStrategy_ParseExpired(t *testing.T) {
	clock := newClock()
	strategy := NewHMACStrategy("secret", Options{Now: clock.Now})
	token, err := strategy.IssueToken("analyst")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	clock.now = clock.now.Add(24 * time.Hour)
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACStrategy_Name(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if strategy.Name() != "hmac" {
		t.Fatalf("unexpected name: %s", strategy.Name())
	}
}
