package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist or is owned
	// by a different user.
	ErrItemNotFound = errors.New("item not found")

	// ErrDuplicateName indicates another item with the same name (compared
	// case-insensitively) already exists for this user.
	ErrDuplicateName = errors.New("item with this name already exists")

	// ErrQuotaExceeded indicates a free-plan user has reached the item limit.
	ErrQuotaExceeded = errors.New("free plan item limit reached")

	// ErrInvalidItemName indicates the item name violates domain constraints.
	ErrInvalidItemName = errors.New("invalid item name")

	// ErrInvalidItem indicates a field other than the name violates domain
	// constraints (negative quantity, negative price, negative threshold).
	ErrInvalidItem = errors.New("invalid item")
)
