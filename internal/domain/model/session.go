package model

import "time"

// Session holds the claims carried by an issued auth token.
type Session struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at the given moment.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
