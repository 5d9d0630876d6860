package adapter

import "errors"

// Errors mapped from provider HTTP statuses by mapHTTPError.
var (
	ErrBadRequest          = errors.New("provider rejected the request")
	ErrUnauthorized        = errors.New("provider credentials rejected")
	ErrForbidden           = errors.New("provider access forbidden")
	ErrNotFound            = errors.New("provider resource not found")
	ErrConflict            = errors.New("provider conflict")
	ErrTooManyRequests     = errors.New("provider rate limit reached")
	ErrBadGateway          = errors.New("provider bad gateway")
	ErrInternalServerError = errors.New("provider internal error")
)

var (
	// ErrNotConfigured is returned by adapters whose provider settings are
	// missing.
	ErrNotConfigured = errors.New("provider is not configured")

	// ErrUnexpectedStatus is returned when a provider answers with a
	// verification status this package does not know.
	ErrUnexpectedStatus = errors.New("unexpected verification status")
)
