package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockledger/services/analytics/domain/metrics"
)

type fakeReader struct {
	items []metrics.Item
	sales []metrics.Sale
}

func (r *fakeReader) ItemsForUser(_ context.Context, _ uuid.UUID) ([]metrics.Item, error) {
	return r.items, nil
}

func (r *fakeReader) SalesForUser(_ context.Context, _ uuid.UUID, since time.Time) ([]metrics.Sale, error) {
	var out []metrics.Sale
	for _, sale := range r.sales {
		if !sale.CreatedAt.Before(since) {
			out = append(out, sale)
		}
	}
	return out, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestAnalyticsService_Summary(t *testing.T) {
	ctx := context.Background()
	reader := &fakeReader{
		items: []metrics.Item{
			{Name: "Rice", Quantity: 2, CostPrice: decPtr("350"), LowStockThreshold: 5},
			{Name: "Beans", Quantity: 40, CostPrice: decPtr("10"), LowStockThreshold: 5},
			{Name: "Garri", Quantity: 8, CostPrice: nil, LowStockThreshold: 5},
		},
		sales: []metrics.Sale{
			{ItemName: "Rice", Quantity: 3, TotalPrice: dec("1500"), CreatedAt: time.Now()},
			{ItemName: "Beans", Quantity: 2, TotalPrice: dec("400"), CreatedAt: time.Now()},
		},
	}
	svc := NewAnalyticsService(reader)

	summary, err := svc.Summary(ctx, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !summary.TotalRevenue.Equal(dec("1900")) {
		t.Fatalf("expected revenue 1900, got %s", summary.TotalRevenue)
	}
	if summary.TotalItemsSold != 5 {
		t.Fatalf("expected 5 items sold, got %d", summary.TotalItemsSold)
	}
	// 2×350 + 40×10, nil cost contributes nothing.
	if !summary.InventoryValuation.Equal(dec("1100")) {
		t.Fatalf("expected valuation 1100, got %s", summary.InventoryValuation)
	}
	if summary.LowStockCount != 1 {
		t.Fatalf("expected 1 low-stock item, got %d", summary.LowStockCount)
	}
}

func TestAnalyticsService_RevenueSeries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	reader := &fakeReader{
		sales: []metrics.Sale{
			{TotalPrice: dec("100"), CreatedAt: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)},
			{TotalPrice: dec("999"), CreatedAt: time.Date(2023, 12, 1, 9, 0, 0, 0, time.UTC)},
		},
	}
	svc := NewAnalyticsService(reader)
	svc.now = func() time.Time { return now }

	series, err := svc.RevenueSeries(ctx, uuid.New(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(series))
	}
	if !series[6].Revenue.Equal(dec("100")) {
		t.Fatalf("expected 100 on the last day, got %s", series[6].Revenue)
	}
}

func TestAnalyticsService_TopItems(t *testing.T) {
	ctx := context.Background()
	reader := &fakeReader{
		sales: []metrics.Sale{
			{ItemName: "Rice", Quantity: 2},
			{ItemName: "Beans", Quantity: 9},
			{ItemName: "Rice", Quantity: 4},
		},
	}
	svc := NewAnalyticsService(reader)

	top, err := svc.TopItems(ctx, uuid.New(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 1 || top[0].Name != "Beans" || top[0].Quantity != 9 {
		t.Fatalf("expected Beans 9, got %v", top)
	}
}
