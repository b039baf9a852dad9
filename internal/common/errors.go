package common

import "errors"

var (
	ErrorNotFound     = errors.New("not found")
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// ErrNoSession is returned by operations that require an active session.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidToken is returned when a bearer token cannot be decoded.
	ErrInvalidToken = errors.New("invalid token")
)
