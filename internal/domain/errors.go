package domain

import "errors"

// Sentinel errors shared across services and repositories. Controllers map
// these to HTTP statuses; everything else is a 500.
var (
	// ErrNotFound: no record has the given id. A syntactically invalid
	// store id is reported the same way, not as a distinct error.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail: a registration attempted to reuse an email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
