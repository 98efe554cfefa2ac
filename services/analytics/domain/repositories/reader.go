package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockledger/services/analytics/domain/metrics"
)

// Reader loads the snapshots the metrics functions operate on. Analytics is
// read-only: it never mutates items or sales.
type Reader interface {
	// ItemsForUser returns every item the user holds.
	ItemsForUser(ctx context.Context, userID uuid.UUID) ([]metrics.Item, error)

	// SalesForUser returns the user's sales created at or after since.
	// A zero since means all sales.
	SalesForUser(ctx context.Context, userID uuid.UUID, since time.Time) ([]metrics.Sale, error)
}
