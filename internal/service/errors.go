// Package service provides business-logic services for authentication and
// command management, delegating persistence to repository interfaces.
package service

import "errors"

// Sentinel errors forming the service error taxonomy. Handlers map these
// to HTTP responses with errors.Is; anything else is an internal error.
var (
	// ErrValidation indicates client-supplied data violates required-field constraints.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound indicates the requested record does not exist under the
	// caller's ownership. A record owned by someone else is reported the
	// same way as a missing one.
	ErrNotFound = errors.New("not found")
	// ErrUserExists indicates a registration attempt with a taken username.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials indicates a failed login. Unknown username and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
