// Package common defines shared constants and sentinel errors used across
// the diary server and client. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Registration conflicts. The store's unique constraints are the
	// authority; the service pre-check returns the same values.
	ErrDuplicateEmail    = errors.New("a user with this email already exists")
	ErrDuplicateUsername = errors.New("this username is already taken")

	// Login failure. Unknown email and wrong password are reported identically.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEntryNotFound is returned when an entry does not exist or belongs to
	// another user. The two cases are never distinguished.
	ErrEntryNotFound = errors.New("entry not found")

	// Configuration errors.
	ErrMissingSecretKey = errors.New("jwt secret key is not configured")
	ErrExportDisabled   = errors.New("export storage is not configured")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
