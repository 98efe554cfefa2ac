package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockledger/services/inventory/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Every method is scoped by userID — no call can touch another user's rows.
type ItemRepository interface {
	// Save persists a new Item, enforcing the free-plan quota and the
	// case-insensitive name uniqueness inside a single transaction.
	// Returns ErrQuotaExceeded or ErrDuplicateName on violation.
	Save(ctx context.Context, item *models.Item) error

	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Item, error)

	// FindByUserID retrieves a paginated list of items for the given user.
	// Returns the items slice and the total count (ignoring pagination).
	FindByUserID(ctx context.Context, userID uuid.UUID, opts QueryOpts) ([]*models.Item, int, error)

	// FindLowStock returns the user's items at or below their restock
	// threshold, ordered by quantity ascending, capped at limit (0 = no cap).
	FindLowStock(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Item, error)

	// Update persists the mutable fields (name, quantity, prices, threshold)
	// of an existing Item. Returns ErrItemNotFound when no row matches both
	// the item ID and the user, ErrDuplicateName on a rename collision.
	Update(ctx context.Context, item *models.Item) error

	// SetQuantity sets the quantity to an absolute value (not a delta).
	// Returns ErrItemNotFound when no row matches.
	SetQuantity(ctx context.Context, userID, id uuid.UUID, quantity int) error

	// Delete removes an item by ID scoped to the given user.
	// Returns ErrItemNotFound when no row was deleted.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// DeleteMany removes the given items scoped to the user and reports how
	// many rows were actually deleted. Missing ids are skipped silently.
	DeleteMany(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)

	// CountByUserID returns the number of items the user currently holds.
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
