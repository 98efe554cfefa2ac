package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicItemCreated is the Watermill topic published when an Item is created.
const TopicItemCreated = "item.created"

// ItemCreatedEvent is published after a new Item is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
// Prices travel as decimal strings; empty means the price was never set.
type ItemCreatedEvent struct {
	EventID           uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version           int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID            uuid.UUID `json:"item_id"`
	UserID            uuid.UUID `json:"user_id"`
	Name              string    `json:"name"`
	Quantity          int       `json:"quantity"`
	CostPrice         string    `json:"cost_price,omitempty"`
	SellingPrice      string    `json:"selling_price,omitempty"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	OccurredAt        time.Time `json:"occurred_at"`
}
