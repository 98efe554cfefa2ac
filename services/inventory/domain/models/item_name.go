package models

import (
	"fmt"
	"strings"
)

// ItemName is a value object representing a valid item name.
// Encapsulates validation rules: 1 <= len(name) <= 255.
// Uniqueness is case-insensitive per user; Fold returns the comparison key.
type ItemName string

const (
	minItemNameLength = 1
	maxItemNameLength = 255
)

// NewItemName constructs a valid ItemName or returns an error if constraints are violated.
func NewItemName(s string) (ItemName, error) {
	if len(s) < minItemNameLength {
		return "", fmt.Errorf("item name must be at least %d character", minItemNameLength)
	}
	if len(s) > maxItemNameLength {
		return "", fmt.Errorf("item name must not exceed %d characters", maxItemNameLength)
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}

// Fold returns the case-folded form used for duplicate detection. Two names
// with the same Fold value collide regardless of letter case.
func (n ItemName) Fold() string {
	return strings.ToLower(string(n))
}

// Equal reports whether two names collide under case-insensitive comparison.
func (n ItemName) Equal(other ItemName) bool {
	return n.Fold() == other.Fold()
}
