package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockledger/pkg/database"
	"github.com/ghuser/stockledger/services/analytics/domain/metrics"
)

// Reader implements repositories.Reader against PostgreSQL. Sales are joined
// to their item so rankings can group by name without a second query.
type Reader struct {
	db *database.Database
}

// NewReader returns a Reader backed by the given connection pool.
func NewReader(db *database.Database) *Reader {
	return &Reader{db: db}
}

// ItemsForUser returns every item the user holds.
func (r *Reader) ItemsForUser(ctx context.Context, userID uuid.UUID) ([]metrics.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, name, quantity, cost_price, low_stock_threshold
		FROM items
		WHERE user_id = $1
		ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var items []metrics.Item
	for rows.Next() {
		var (
			item      metrics.Item
			costPrice sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &costPrice, &item.LowStockThreshold); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if costPrice.Valid {
			d, err := decimal.NewFromString(costPrice.String)
			if err != nil {
				return nil, fmt.Errorf("parse cost_price: %w", err)
			}
			item.CostPrice = &d
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// SalesForUser returns the user's sales created at or after since, joined to
// the sold item's name.
func (r *Reader) SalesForUser(ctx context.Context, userID uuid.UUID, since time.Time) ([]metrics.Sale, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT s.item_id, i.name, s.quantity, s.total_price, s.created_at
		FROM sales s
		JOIN items i ON i.id = s.item_id
		WHERE s.user_id = $1 AND s.created_at >= $2
		ORDER BY s.created_at, s.id`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var sales []metrics.Sale
	for rows.Next() {
		var (
			sale       metrics.Sale
			totalPrice string
		)
		if err := rows.Scan(&sale.ItemID, &sale.ItemName, &sale.Quantity, &totalPrice, &sale.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if sale.TotalPrice, err = decimal.NewFromString(totalPrice); err != nil {
			return nil, fmt.Errorf("parse total_price: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}
	return sales, nil
}
