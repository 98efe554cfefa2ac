package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockledger/services/analytics/domain/metrics"
	"github.com/ghuser/stockledger/services/analytics/domain/repositories"
)

// Summary is the dashboard headline figure set.
type Summary struct {
	TotalRevenue       decimal.Decimal
	TotalItemsSold     int
	InventoryValuation decimal.Decimal
	LowStockCount      int
}

// AnalyticsService loads snapshots through the reader and hands them to the
// pure metrics functions. It holds no state of its own.
type AnalyticsService struct {
	reader repositories.Reader
	now    func() time.Time
}

// NewAnalyticsService returns an AnalyticsService wired with the given reader.
func NewAnalyticsService(reader repositories.Reader) *AnalyticsService {
	return &AnalyticsService{reader: reader, now: time.Now}
}

// Summary computes the headline figures over the user's full history.
func (s *AnalyticsService) Summary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	items, err := s.reader.ItemsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	sales, err := s.reader.SalesForUser(ctx, userID, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}

	return &Summary{
		TotalRevenue:       metrics.TotalRevenue(sales),
		TotalItemsSold:     metrics.TotalItemsSold(sales),
		InventoryValuation: metrics.InventoryValuation(items),
		LowStockCount:      len(metrics.LowStockAlerts(items, 0)),
	}, nil
}

// RevenueSeries computes the daily revenue series over the trailing
// windowDays days, ending today. Zero-sale days carry zero buckets.
func (s *AnalyticsService) RevenueSeries(ctx context.Context, userID uuid.UUID, windowDays int) ([]metrics.DayRevenue, error) {
	now := s.now().UTC()
	since := now.AddDate(0, 0, -(windowDays - 1)).Truncate(24 * time.Hour)
	sales, err := s.reader.SalesForUser(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	return metrics.DailyRevenueSeries(sales, windowDays, now), nil
}

// TopItems ranks the user's best-selling items by units sold.
func (s *AnalyticsService) TopItems(ctx context.Context, userID uuid.UUID, limit int) ([]metrics.ItemSales, error) {
	sales, err := s.reader.SalesForUser(ctx, userID, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	return metrics.TopSellingItems(sales, limit), nil
}

// LowStock returns the user's low-stock items, quantity ascending, capped at limit.
func (s *AnalyticsService) LowStock(ctx context.Context, userID uuid.UUID, limit int) ([]metrics.Item, error) {
	items, err := s.reader.ItemsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	return metrics.LowStockAlerts(items, limit), nil
}
