package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	// ItemCacheTTL is the time-to-live for cached items.
	ItemCacheTTL = 24 * time.Hour

	itemCacheKeyPrefix = "item"
)

// CachedItem is the denormalized item read model stored in Redis.
// Prices are stored as decimal strings; nil pointers mean the price was never set.
type CachedItem struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Name              string
	Quantity          int
	CostPrice         *decimal.Decimal
	SellingPrice      *decimal.Decimal
	LowStockThreshold int
	CreatedAt         time.Time
}

// ItemCache provides structured read/write operations for item cache entries.
// Keys are scoped by userID to prevent cross-user data leakage.
// Key format: "item:{userID}:{itemID}"
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item by user + item ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, userID, itemID uuid.UUID) (*CachedItem, error) {
	key := c.key(userID, itemID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	uid, err := uuid.Parse(vals["user_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse user_id: %w", err)
	}
	quantity, err := strconv.Atoi(vals["quantity"])
	if err != nil {
		return nil, fmt.Errorf("cache parse quantity: %w", err)
	}
	threshold, err := strconv.Atoi(vals["low_stock_threshold"])
	if err != nil {
		return nil, fmt.Errorf("cache parse low_stock_threshold: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	costPrice, err := parsePrice(vals["cost_price"])
	if err != nil {
		return nil, fmt.Errorf("cache parse cost_price: %w", err)
	}
	sellingPrice, err := parsePrice(vals["selling_price"])
	if err != nil {
		return nil, fmt.Errorf("cache parse selling_price: %w", err)
	}

	return &CachedItem{
		ID:                id,
		UserID:            uid,
		Name:              vals["name"],
		Quantity:          quantity,
		CostPrice:         costPrice,
		SellingPrice:      sellingPrice,
		LowStockThreshold: threshold,
		CreatedAt:         createdAt,
	}, nil
}

// Set writes a cached item as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	key := c.key(item.UserID, item.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", item.ID.String(),
		"user_id", item.UserID.String(),
		"name", item.Name,
		"quantity", strconv.Itoa(item.Quantity),
		"cost_price", formatPrice(item.CostPrice),
		"selling_price", formatPrice(item.SellingPrice),
		"low_stock_threshold", strconv.Itoa(item.LowStockThreshold),
		"created_at", item.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ItemCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item. Call after any write that changes the item
// (quantity adjustment, sale, update, delete) so readers never see stale stock.
func (c *ItemCache) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(userID, itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "item:{userID}:{itemID}"
func (c *ItemCache) key(userID, itemID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", itemCacheKeyPrefix, userID, itemID)
}

func parsePrice(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func formatPrice(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
