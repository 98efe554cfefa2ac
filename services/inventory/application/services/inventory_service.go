package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	pkgcache "github.com/ghuser/stockledger/pkg/cache"
	invdomain "github.com/ghuser/stockledger/services/inventory/domain"
	"github.com/ghuser/stockledger/services/inventory/domain/models"
	"github.com/ghuser/stockledger/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/stockledger/services/inventory/domain/services"
)

// InventoryService orchestrates the item collection for one authenticated user:
// creation under the plan quota, duplicate-name rejection, quantity
// adjustments, and deletes. Event publishing is handled by the repository
// layer (outbox pattern). Reads are served from Redis cache when available.
type InventoryService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
}

// NewInventoryService returns an InventoryService wired with the given repository and cache.
func NewInventoryService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *InventoryService {
	return &InventoryService{repo: repo, cache: itemCache}
}

// UpdateFields carries the mutable fields for AddItem/UpdateItem. Nil prices
// mean "not set"; a nil Threshold keeps the default (create) or current
// (update) value.
type UpdateFields struct {
	Name         string
	Quantity     int
	CostPrice    *decimal.Decimal
	SellingPrice *decimal.Decimal
	Threshold    *int
}

// AddItem validates and persists a new Item for the user. The repository
// enforces the free-plan quota and name uniqueness transactionally and
// publishes ItemCreatedEvent on success.
func (s *InventoryService) AddItem(ctx context.Context, userID uuid.UUID, fields UpdateFields) (*models.Item, error) {
	itemName, err := models.NewItemName(fields.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidItemName, err)
	}

	item, err := models.NewItem(userID, itemName, fields.Quantity, fields.CostPrice, fields.SellingPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidItem, err)
	}
	if fields.Threshold != nil {
		if *fields.Threshold < 0 {
			return nil, fmt.Errorf("%w: low_stock_threshold must not be negative", invdomain.ErrInvalidItem)
		}
		item.LowStockThreshold = *fields.Threshold
	}

	if err := domainsvcs.ValidateItemForCreation(item); err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidItemName, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	return item, nil
}

// GetByID retrieves an Item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *InventoryService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, userID, id); err == nil {
			return cachedToItem(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error — fall through to Postgres.
			_ = err
		}
	}

	item, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), itemToCached(item))
		}()
	}

	return item, nil
}

// List returns a paginated slice of the user's items plus total count.
func (s *InventoryService) List(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	items, total, err := s.repo.FindByUserID(ctx, userID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// ListLowStock returns items at or below their restock threshold, quantity
// ascending, capped at limit (0 = no cap).
func (s *InventoryService) ListLowStock(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Item, error) {
	items, err := s.repo.FindLowStock(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return items, nil
}

// UpdateItem replaces the mutable fields of an existing item.
// Returns ErrItemNotFound when the item does not exist or belongs to another
// user, ErrDuplicateName when the new name collides.
func (s *InventoryService) UpdateItem(ctx context.Context, userID, id uuid.UUID, fields UpdateFields) (*models.Item, error) {
	itemName, err := models.NewItemName(fields.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidItemName, err)
	}
	if err := domainsvcs.ValidateName(itemName); err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidItemName, err)
	}
	if fields.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", invdomain.ErrInvalidItem)
	}

	current, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	current.Name = itemName
	current.Quantity = fields.Quantity
	current.CostPrice = fields.CostPrice
	current.SellingPrice = fields.SellingPrice
	if fields.Threshold != nil {
		if *fields.Threshold < 0 {
			return nil, fmt.Errorf("%w: low_stock_threshold must not be negative", invdomain.ErrInvalidItem)
		}
		current.LowStockThreshold = *fields.Threshold
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.invalidate(userID, id)
	return current, nil
}

// AdjustQuantity sets the item's quantity to an absolute value.
// A negative requested value is silently ignored (the operation succeeds and
// the stored quantity is unchanged); stock can only hit zero through sales or
// an explicit zero adjustment.
func (s *InventoryService) AdjustQuantity(ctx context.Context, userID, id uuid.UUID, quantity int) error {
	if quantity < 0 {
		return nil
	}
	if err := s.repo.SetQuantity(ctx, userID, id, quantity); err != nil {
		return fmt.Errorf("adjust quantity: %w", err)
	}
	s.invalidate(userID, id)
	return nil
}

// Delete removes an item by ID scoped to the given user.
// Returns ErrItemNotFound if no matching item exists — a delete of a foreign
// or missing id is reported rather than silently swallowed.
func (s *InventoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.invalidate(userID, id)
	return nil
}

// DeleteMany removes the given items, skipping ids that do not exist or are
// owned by another user, and reports the number actually deleted.
func (s *InventoryService) DeleteMany(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	n, err := s.repo.DeleteMany(ctx, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("delete items: %w", err)
	}
	for _, id := range ids {
		s.invalidate(userID, id)
	}
	return n, nil
}

func (s *InventoryService) invalidate(userID, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(context.Background(), userID, id)
}

func cachedToItem(c *pkgcache.CachedItem) *models.Item {
	return &models.Item{
		ID:                c.ID,
		UserID:            c.UserID,
		Name:              models.ItemName(c.Name),
		Quantity:          c.Quantity,
		CostPrice:         c.CostPrice,
		SellingPrice:      c.SellingPrice,
		LowStockThreshold: c.LowStockThreshold,
		CreatedAt:         c.CreatedAt,
	}
}

func itemToCached(item *models.Item) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:                item.ID,
		UserID:            item.UserID,
		Name:              item.Name.String(),
		Quantity:          item.Quantity,
		CostPrice:         item.CostPrice,
		SellingPrice:      item.SellingPrice,
		LowStockThreshold: item.LowStockThreshold,
		CreatedAt:         item.CreatedAt,
	}
}
