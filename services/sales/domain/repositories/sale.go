package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockledger/services/sales/domain/models"
)

// QueryOpts contains pagination and time-window parameters for sale listings.
// A zero Since means no lower bound.
type QueryOpts struct {
	Limit  int
	Offset int
	Since  time.Time
}

// SaleRepository is the persistence interface for the Sale aggregate.
// Every method is scoped by userID.
type SaleRepository interface {
	// Record persists the sale and decrements the sold item's stock in a
	// single transaction. The decrement is conditional on sufficient stock:
	// it returns ErrInsufficientStock when the item holds fewer units than
	// sale.Quantity and ErrItemNotFound when the item does not exist for the
	// user. On success it publishes SaleRecordedEvent within the transaction.
	Record(ctx context.Context, sale *models.Sale) error

	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Sale, error)

	// FindByUserID retrieves a paginated list of the user's sales, newest
	// first, plus the total count within the window.
	FindByUserID(ctx context.Context, userID uuid.UUID, opts QueryOpts) ([]*models.Sale, int, error)
}
