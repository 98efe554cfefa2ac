package domain

import "errors"

// Sentinel errors for the sales domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the sale references an item that does not
	// exist or is owned by a different user.
	ErrItemNotFound = errors.New("item not found")

	// ErrSaleNotFound indicates the requested sale does not exist or is owned
	// by a different user.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrInsufficientStock indicates the item holds fewer units than the sale
	// requested. The stock is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidSale indicates the sale violates domain constraints
	// (non-positive quantity, negative unit price).
	ErrInvalidSale = errors.New("invalid sale")
)
