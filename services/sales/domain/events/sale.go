package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicSaleRecorded is the Watermill topic published when a sale is recorded.
const TopicSaleRecorded = "sale.recorded"

// SaleRecordedEvent is published after a sale is persisted and the stock
// decremented. RemainingQuantity and LowStockThreshold are captured inside
// the sale transaction so the worker can decide on a low-stock alert without
// re-reading the item. Money travels as decimal strings.
type SaleRecordedEvent struct {
	EventID           uuid.UUID `json:"event_id"`
	Version           int       `json:"version"`
	SaleID            uuid.UUID `json:"sale_id"`
	UserID            uuid.UUID `json:"user_id"`
	ItemID            uuid.UUID `json:"item_id"`
	ItemName          string    `json:"item_name"`
	Quantity          int       `json:"quantity"`
	UnitPrice         string    `json:"unit_price"`
	TotalPrice        string    `json:"total_price"`
	RemainingQuantity int       `json:"remaining_quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	OccurredAt        time.Time `json:"occurred_at"`
}
