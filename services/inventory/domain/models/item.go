package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FreePlanItemLimit is the maximum number of items a free-plan user may hold.
const FreePlanItemLimit = 15

// DefaultLowStockThreshold is applied when an item is created without an
// explicit restock threshold.
const DefaultLowStockThreshold = 5

// Item is the core aggregate for the inventory bounded context.
type Item struct {
	ID                uuid.UUID
	UserID            uuid.UUID // owner scope — always filter by this in queries
	Name              ItemName
	Quantity          int
	CostPrice         *decimal.Decimal // nil when the vendor never entered one
	SellingPrice      *decimal.Decimal
	LowStockThreshold int
	CreatedAt         time.Time
}

// NewItem constructs a valid Item aggregate with generated ID and current timestamp.
// Quantity must be >= 0 and prices, when present, must be non-negative.
func NewItem(userID uuid.UUID, name ItemName, quantity int, costPrice, sellingPrice *decimal.Decimal) (*Item, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative, got %d", quantity)
	}
	if err := validatePrice("cost_price", costPrice); err != nil {
		return nil, err
	}
	if err := validatePrice("selling_price", sellingPrice); err != nil {
		return nil, err
	}

	return &Item{
		ID:                uuid.New(),
		UserID:            userID,
		Name:              name,
		Quantity:          quantity,
		CostPrice:         costPrice,
		SellingPrice:      sellingPrice,
		LowStockThreshold: DefaultLowStockThreshold,
		CreatedAt:         time.Now().UTC(),
	}, nil
}

// IsLowStock reports whether the item has fallen to or below its restock
// threshold. The boundary is inclusive: quantity == threshold is low stock.
func (i *Item) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}

func validatePrice(field string, d *decimal.Decimal) error {
	if d != nil && d.IsNegative() {
		return fmt.Errorf("%s must not be negative, got %s", field, d)
	}
	return nil
}
