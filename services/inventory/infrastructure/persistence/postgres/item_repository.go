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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockledger/pkg/database"
	"github.com/ghuser/stockledger/pkg/events"
	invdomain "github.com/ghuser/stockledger/services/inventory/domain"
	domainevents "github.com/ghuser/stockledger/services/inventory/domain/events"
	"github.com/ghuser/stockledger/services/inventory/domain/models"
	"github.com/ghuser/stockledger/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/stockledger/services/inventory/domain/services"
)

const pgUniqueViolation = "23505"

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event bus. The bus is used to publish ItemCreatedEvents after a successful save.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Save persists a new Item and publishes an ItemCreatedEvent within the same
// transaction. The free-plan quota is enforced under a lock on the owner's
// profile row, which serializes concurrent inserts for the same user; the
// case-insensitive unique index covers duplicate names.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var plan string
		err := tx.QueryRowContext(ctx,
			`SELECT plan FROM profiles WHERE id = $1 FOR UPDATE`,
			item.UserID,
		).Scan(&plan)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("profile for user %s not found", item.UserID)
			}
			return fmt.Errorf("lock profile: %w", err)
		}

		var count int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM items WHERE user_id = $1`,
			item.UserID,
		).Scan(&count); err != nil {
			return fmt.Errorf("count items: %w", err)
		}

		if err := domainsvcs.CheckQuota(plan, count); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO items (id, user_id, name, quantity, cost_price, selling_price, low_stock_threshold, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, item.UserID, item.Name.String(), item.Quantity,
			priceArg(item.CostPrice), priceArg(item.SellingPrice),
			item.LowStockThreshold, item.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return invdomain.ErrDuplicateName
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, item); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an Item by ID scoped to the given user. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, user_id, name, quantity, cost_price, selling_price, low_stock_threshold, created_at
		FROM items
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// FindByUserID retrieves a paginated list of items and total count for the given user.
func (r *ItemRepository) FindByUserID(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, user_id, name, quantity, cost_price, selling_price, low_stock_threshold, created_at
		FROM items
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`,
		userID, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	items, err := collectItems(rows)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.CountByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindLowStock returns the user's items at or below their restock threshold,
// quantity ascending. The comparison is boundary inclusive.
func (r *ItemRepository) FindLowStock(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Item, error) {
	q := `
		SELECT id, user_id, name, quantity, cost_price, selling_price, low_stock_threshold, created_at
		FROM items
		WHERE user_id = $1 AND quantity <= low_stock_threshold
		ORDER BY quantity ASC, name`
	args := []any{userID}
	if limit > 0 {
		q += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.DB().QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query low stock items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	return collectItems(rows)
}

// Update persists the mutable fields of an existing Item.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE items
		SET name = $3, quantity = $4, cost_price = $5, selling_price = $6, low_stock_threshold = $7
		WHERE id = $1 AND user_id = $2`,
		item.ID, item.UserID, item.Name.String(), item.Quantity,
		priceArg(item.CostPrice), priceArg(item.SellingPrice), item.LowStockThreshold,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return invdomain.ErrDuplicateName
		}
		return fmt.Errorf("update item: %w", err)
	}
	return requireRow(res)
}

// SetQuantity sets the quantity to an absolute value scoped to the user.
func (r *ItemRepository) SetQuantity(ctx context.Context, userID, id uuid.UUID, quantity int) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE items SET quantity = $3
		WHERE id = $1 AND user_id = $2`,
		id, userID, quantity,
	)
	if err != nil {
		return fmt.Errorf("set quantity: %w", err)
	}
	return requireRow(res)
}

// Delete removes an item by ID scoped to the given user.
func (r *ItemRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM items WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return requireRow(res)
}

// DeleteMany removes the given items scoped to the user. Missing or
// foreign-owned ids are skipped; the affected row count is returned.
func (r *ItemRepository) DeleteMany(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM items WHERE user_id = $1 AND id = ANY($2)`,
		userID, uuidArray(ids),
	)
	if err != nil {
		return 0, fmt.Errorf("delete items: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// CountByUserID returns the number of items the user currently holds.
func (r *ItemRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	if err := r.db.DB().QueryRowContext(ctx,
		`SELECT count(*) FROM items WHERE user_id = $1`, userID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:           uuid.New(),
		Version:           1,
		ItemID:            item.ID,
		UserID:            item.UserID,
		Name:              item.Name.String(),
		Quantity:          item.Quantity,
		CostPrice:         priceString(item.CostPrice),
		SellingPrice:      priceString(item.SellingPrice),
		LowStockThreshold: item.LowStockThreshold,
		OccurredAt:        item.CreatedAt,
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
	return p.Publish(domainevents.TopicItemCreated, msg)
}

// requireRow converts a zero-row write into ErrItemNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return invdomain.ErrItemNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var (
		item         models.Item
		name         string
		costPrice    sql.NullString
		sellingPrice sql.NullString
	)
	if err := row.Scan(
		&item.ID, &item.UserID, &name, &item.Quantity,
		&costPrice, &sellingPrice, &item.LowStockThreshold, &item.CreatedAt,
	); err != nil {
		return nil, err
	}
	item.Name = models.ItemName(name)

	var err error
	if item.CostPrice, err = nullPrice(costPrice); err != nil {
		return nil, fmt.Errorf("parse cost_price: %w", err)
	}
	if item.SellingPrice, err = nullPrice(sellingPrice); err != nil {
		return nil, fmt.Errorf("parse selling_price: %w", err)
	}
	return &item, nil
}

func collectItems(rows *sql.Rows) ([]*models.Item, error) {
	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

func nullPrice(ns sql.NullString) (*decimal.Decimal, error) {
	if !ns.Valid {
		return nil, nil
	}
	d, err := decimal.NewFromString(ns.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// priceArg converts an optional decimal into a driver-friendly argument,
// preserving NULL for unset prices.
func priceArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func priceString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// uuidArray renders ids as a Postgres array literal for ANY($n) matching.
func uuidArray(ids []uuid.UUID) string {
	out := "{"
	for i, id := range ids {
		if i > 0 {
			out += ","
		}
		out += id.String()
	}
	return out + "}"
}
