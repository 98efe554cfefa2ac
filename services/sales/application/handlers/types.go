package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockledger/services/sales/domain/models"
)

// SaleResponse is the JSON representation of a recorded sale.
type SaleResponse struct {
	ID         uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	ItemID     uuid.UUID `json:"item_id"     example:"123e4567-e89b-12d3-a456-426614174001"`
	Quantity   int       `json:"quantity"    example:"3"`
	UnitPrice  float64   `json:"unit_price"  example:"500"`
	TotalPrice float64   `json:"total_price" example:"1500"`
	CreatedAt  time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
} // @name SaleResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"insufficient stock"`
} // @name SalesErrorResponse

func toSaleResponse(sale *models.Sale) SaleResponse {
	return SaleResponse{
		ID:         sale.ID,
		ItemID:     sale.ItemID,
		Quantity:   sale.Quantity,
		UnitPrice:  sale.UnitPrice.InexactFloat64(),
		TotalPrice: sale.TotalPrice.InexactFloat64(),
		CreatedAt:  sale.CreatedAt,
	}
}

func toSaleResponses(sales []*models.Sale) []SaleResponse {
	out := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		out[i] = toSaleResponse(sale)
	}
	return out
}
