// File: internal/domain/errors/errors.go
package errors

import (
	"errors"
)

var (
	// Generic errors.
	ErrInternal     = errors.New("internal server error")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")

	// Authentication errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrInvalidSignature   = errors.New("invalid token signature")
	ErrMalformedToken     = errors.New("malformed token")

	// User errors.
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email is already registered")

	// Two-factor errors.
	ErrInvalid2FACode    = errors.New("invalid 2FA code")
	ErrTwoFactorRequired = errors.New("2FA verification required")
)

// IsNotFound reports whether err is a "not found" failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsUnauthorized reports whether err should surface as 401. The invalid
// two-factor code and "second factor required" conditions are deliberately
// included: both deny access without revealing anything further.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrInvalid2FACode) ||
		errors.Is(err, ErrTwoFactorRequired)
}

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailExists)
}
