package services

import "errors"

// Failure categories surfaced to handlers. Handlers map these onto HTTP
// status codes; services wrap them with context via fmt.Errorf and %w.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrCarUnavailable    = errors.New("car is not available")
	ErrDatesUnavailable  = errors.New("car is not available for selected dates")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmailTaken        = errors.New("email is already registered")
	ErrBadCredentials    = errors.New("invalid email or password")
)
