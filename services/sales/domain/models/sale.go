package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale records a single completed sale of one item. The quantity sold is
// deducted from the item's stock in the same transaction that persists the
// sale, so a Sale row always reflects stock that actually existed.
type Sale struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ItemID     uuid.UUID
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

// NewSale constructs a valid Sale with generated ID and current timestamp.
// Quantity must be positive and the unit price non-negative; the total is
// quantity × unit price, computed here so every caller agrees on it.
func NewSale(userID, itemID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*Sale, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price must not be negative, got %s", unitPrice)
	}

	return &Sale{
		ID:         uuid.New(),
		UserID:     userID,
		ItemID:     itemID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt:  time.Now().UTC(),
	}, nil
}
