package auth

import "crypto/subtle"

// CredentialStore decides whether a submitted login pair is accepted.
type CredentialStore interface {
	Check(username, password string) bool
}

// FixedCredentials is a one-entry credential table configured at deploy time.
// The password is held either in plain text or as a hash checked by hasher.
type FixedCredentials struct {
	username string
	password string
	hash     string
	hasher   PasswordHasher
}

// NewFixedCredentials accepts exactly the given pair, compared case-sensitively.
func NewFixedCredentials(username, password string) *FixedCredentials {
	return &FixedCredentials{username: username, password: password}
}

// NewHashedCredentials accepts username with any password matching hash.
func NewHashedCredentials(username, hash string, hasher PasswordHasher) *FixedCredentials {
	return &FixedCredentials{username: username, hash: hash, hasher: hasher}
}

// Check reports whether username and password match the configured pair.
func (c *FixedCredentials) Check(username, password string) bool {
	if c.username == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1

	var passOK bool
	switch {
	case c.hash != "" && c.hasher != nil:
		passOK = c.hasher.Compare(c.hash, password) == nil
	case c.password != "":
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
	}

	return userOK && passOK
}
