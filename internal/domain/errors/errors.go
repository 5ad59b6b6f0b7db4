package errors

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing auth token")
	ErrInvalidToken       = errors.New("invalid or expired auth token")
	ErrDatastore          = errors.New("datastore error")
)
