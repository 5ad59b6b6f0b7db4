package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/polkiloo/healthboard/internal/domain/model"
)

// HMACStrategy implements compact tokens of the form
// base64(username:issued:expires:signature) signed with HMAC-SHA256.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	opts = opts.normalize()
	return &HMACStrategy{secret: []byte(secret), ttl: opts.TTL, now: opts.Now}
}

// IssueToken generates signed auth token for the user.
func (s *HMACStrategy) IssueToken(username string) (string, error) {
	issued := s.now()
	payload := fmt.Sprintf("%s:%d:%d",
		base64.RawURLEncoding.EncodeToString([]byte(username)),
		issued.Unix(),
		issued.Add(s.ttl).Unix(),
	)
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates token and returns the encoded session.
func (s *HMACStrategy) ParseToken(token string) (*model.Session, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		return nil, ErrInvalidToken
	}

	payload := strings.Join(parts[:3], ":")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[3])) {
		return nil, ErrInvalidToken
	}

	username, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil || len(username) == 0 {
		return nil, ErrInvalidToken
	}

	issued, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	session := &model.Session{
		Username:  string(username),
		IssuedAt:  time.Unix(issued, 0),
		ExpiresAt: time.Unix(expires, 0),
	}
	if session.Expired(s.now()) {
		return nil, ErrTokenExpired
	}

	return session, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
