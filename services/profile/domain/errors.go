package domain

import "errors"

// Sentinel errors for the profile domain. Use errors.Is() to check these.
var (
	// ErrProfileNotFound indicates no profile row exists for the user.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidTheme indicates the requested display theme is not one of the
	// supported values.
	ErrInvalidTheme = errors.New("invalid theme")
)
