package domain

import "errors"

// Service-level failures. Each one is terminal for the request; the
// delivery layer maps them to HTTP statuses.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
