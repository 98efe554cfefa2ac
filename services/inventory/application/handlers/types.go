package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockledger/services/inventory/domain/models"
)

// ItemResponse is the JSON representation of an inventory item.
type ItemResponse struct {
	ID                uuid.UUID `json:"id"                  example:"123e4567-e89b-12d3-a456-426614174000"`
	Name              string    `json:"name"                example:"Rice 5kg"`
	Quantity          int       `json:"quantity"            example:"12"`
	CostPrice         *float64  `json:"cost_price"          example:"350"`
	SellingPrice      *float64  `json:"selling_price"       example:"500"`
	LowStockThreshold int       `json:"low_stock_threshold" example:"5"`
	CreatedAt         time.Time `json:"created_at"          example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item with this name already exists"`
} // @name ErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:                item.ID,
		Name:              item.Name.String(),
		Quantity:          item.Quantity,
		CostPrice:         priceOut(item.CostPrice),
		SellingPrice:      priceOut(item.SellingPrice),
		LowStockThreshold: item.LowStockThreshold,
		CreatedAt:         item.CreatedAt,
	}
}

func toItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}

func priceOut(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

func priceIn(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
