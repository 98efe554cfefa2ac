package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockledger/pkg/database"
	"github.com/ghuser/stockledger/pkg/events"
	salesdomain "github.com/ghuser/stockledger/services/sales/domain"
	domainevents "github.com/ghuser/stockledger/services/sales/domain/events"
	"github.com/ghuser/stockledger/services/sales/domain/models"
	"github.com/ghuser/stockledger/services/sales/domain/repositories"
)

// SaleRepository implements repositories.SaleRepository against PostgreSQL.
type SaleRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewSaleRepository returns a SaleRepository backed by the given connection
// pool and event bus. The bus publishes SaleRecordedEvents after a successful record.
func NewSaleRepository(db *database.Database, bus *events.EventBus) *SaleRepository {
	return &SaleRepository{db: db, bus: bus}
}

// Record persists the sale and decrements the item's stock in one transaction.
// The decrement is conditional on sufficient stock, so two concurrent sales of
// the last units cannot both succeed; zero rows affected means either the item
// is missing or the stock is short, distinguished by a probe inside the tx.
func (r *SaleRepository) Record(ctx context.Context, sale *models.Sale) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var (
			remaining int
			itemName  string
			threshold int
		)
		err := tx.QueryRowContext(ctx, `
			UPDATE items
			SET quantity = quantity - $3
			WHERE id = $1 AND user_id = $2 AND quantity >= $3
			RETURNING quantity, name, low_stock_threshold`,
			sale.ItemID, sale.UserID, sale.Quantity,
		).Scan(&remaining, &itemName, &threshold)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return r.classifyDecrementMiss(ctx, tx, sale)
			}
			return fmt.Errorf("decrement stock: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO sales (id, item_id, user_id, quantity, unit_price, total_price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			sale.ID, sale.ItemID, sale.UserID, sale.Quantity,
			sale.UnitPrice.String(), sale.TotalPrice.String(), sale.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert sale: %w", err)
		}

		if r.bus != nil {
			if err := r.publishRecorded(tx, sale, itemName, remaining, threshold); err != nil {
				return fmt.Errorf("publish sale recorded: %w", err)
			}
		}
		return nil
	})
}

// classifyDecrementMiss tells a missing item apart from short stock after the
// conditional update matched nothing. Runs inside the same transaction.
func (r *SaleRepository) classifyDecrementMiss(ctx context.Context, tx *sql.Tx, sale *models.Sale) error {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM items WHERE id = $1 AND user_id = $2)`,
		sale.ItemID, sale.UserID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("probe item: %w", err)
	}
	if !exists {
		return salesdomain.ErrItemNotFound
	}
	return salesdomain.ErrInsufficientStock
}

// GetByID retrieves a sale by ID scoped to the given user.
func (r *SaleRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Sale, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, item_id, user_id, quantity, unit_price, total_price, created_at
		FROM sales
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	sale, err := scanSale(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, salesdomain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("query sale: %w", err)
	}
	return sale, nil
}

// FindByUserID retrieves a paginated list of the user's sales, newest first.
// A non-zero opts.Since bounds the window; the total respects the same bound.
func (r *SaleRepository) FindByUserID(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Sale, int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, item_id, user_id, quantity, unit_price, total_price, created_at
		FROM sales
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4`,
		userID, opts.Since, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var sales []*models.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate sales: %w", err)
	}

	var total int
	if err := r.db.DB().QueryRowContext(ctx,
		`SELECT count(*) FROM sales WHERE user_id = $1 AND created_at >= $2`,
		userID, opts.Since,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}
	return sales, total, nil
}

func (r *SaleRepository) publishRecorded(tx *sql.Tx, sale *models.Sale, itemName string, remaining, threshold int) error {
	event := domainevents.SaleRecordedEvent{
		EventID:           uuid.New(),
		Version:           1,
		SaleID:            sale.ID,
		UserID:            sale.UserID,
		ItemID:            sale.ItemID,
		ItemName:          itemName,
		Quantity:          sale.Quantity,
		UnitPrice:         sale.UnitPrice.String(),
		TotalPrice:        sale.TotalPrice.String(),
		RemainingQuantity: remaining,
		LowStockThreshold: threshold,
		OccurredAt:        sale.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicSaleRecorded, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSale(row rowScanner) (*models.Sale, error) {
	var (
		sale       models.Sale
		unitPrice  string
		totalPrice string
	)
	if err := row.Scan(
		&sale.ID, &sale.ItemID, &sale.UserID, &sale.Quantity,
		&unitPrice, &totalPrice, &sale.CreatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if sale.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
		return nil, fmt.Errorf("parse unit_price: %w", err)
	}
	if sale.TotalPrice, err = decimal.NewFromString(totalPrice); err != nil {
		return nil, fmt.Errorf("parse total_price: %w", err)
	}
	return &sale, nil
}
