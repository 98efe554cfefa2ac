package metrics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestLowStockAlerts(t *testing.T) {
	t.Run("boundary is inclusive", func(t *testing.T) {
		items := []Item{
			{Name: "at threshold", Quantity: 5, LowStockThreshold: 5},
			{Name: "above threshold", Quantity: 6, LowStockThreshold: 5},
			{Name: "below threshold", Quantity: 1, LowStockThreshold: 5},
		}
		got := LowStockAlerts(items, 0)
		if len(got) != 2 {
			t.Fatalf("expected 2 alerts, got %d", len(got))
		}
		for _, item := range got {
			if item.Name == "above threshold" {
				t.Fatal("item above threshold must not alert")
			}
		}
	})

	t.Run("sorted by quantity ascending", func(t *testing.T) {
		items := []Item{
			{Name: "c", Quantity: 3, LowStockThreshold: 5},
			{Name: "a", Quantity: 0, LowStockThreshold: 5},
			{Name: "b", Quantity: 1, LowStockThreshold: 5},
		}
		got := LowStockAlerts(items, 0)
		if got[0].Name != "a" || got[1].Name != "b" || got[2].Name != "c" {
			t.Fatalf("wrong order: %v", got)
		}
	})

	t.Run("cap keeps the lowest quantities", func(t *testing.T) {
		items := []Item{
			{Name: "a", Quantity: 0, LowStockThreshold: 5},
			{Name: "b", Quantity: 1, LowStockThreshold: 5},
			{Name: "c", Quantity: 2, LowStockThreshold: 5},
		}
		got := LowStockAlerts(items, 2)
		if len(got) != 2 {
			t.Fatalf("expected 2 alerts, got %d", len(got))
		}
		if got[0].Name != "a" || got[1].Name != "b" {
			t.Fatalf("wrong cap result: %v", got)
		}
	})

	t.Run("empty input yields no alerts", func(t *testing.T) {
		if got := LowStockAlerts(nil, 10); len(got) != 0 {
			t.Fatalf("expected no alerts, got %d", len(got))
		}
	})
}

func TestTotalRevenue(t *testing.T) {
	t.Run("sums total prices", func(t *testing.T) {
		sales := []Sale{
			{TotalPrice: dec("1500")},
			{TotalPrice: dec("250.50")},
			{TotalPrice: dec("0.50")},
		}
		if got := TotalRevenue(sales); !got.Equal(dec("1751")) {
			t.Fatalf("expected 1751, got %s", got)
		}
	})

	t.Run("empty input is zero", func(t *testing.T) {
		if got := TotalRevenue(nil); !got.IsZero() {
			t.Fatalf("expected 0, got %s", got)
		}
	})
}

func TestTotalItemsSold(t *testing.T) {
	sales := []Sale{{Quantity: 3}, {Quantity: 5}, {Quantity: 1}}
	if got := TotalItemsSold(sales); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	if got := TotalItemsSold(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestInventoryValuation(t *testing.T) {
	t.Run("sums quantity times cost price", func(t *testing.T) {
		items := []Item{
			{Quantity: 10, CostPrice: decPtr("350")},
			{Quantity: 2, CostPrice: decPtr("0.50")},
		}
		if got := InventoryValuation(items); !got.Equal(dec("3501")) {
			t.Fatalf("expected 3501, got %s", got)
		}
	})

	t.Run("missing cost price counts as zero", func(t *testing.T) {
		items := []Item{
			{Quantity: 10, CostPrice: nil},
			{Quantity: 4, CostPrice: decPtr("25")},
		}
		if got := InventoryValuation(items); !got.Equal(dec("100")) {
			t.Fatalf("expected 100, got %s", got)
		}
	})
}

func TestDailyRevenueSeries(t *testing.T) {
	now := time.Date(2024, 1, 15, 13, 45, 0, 0, time.UTC)

	t.Run("exactly n buckets with zero fill", func(t *testing.T) {
		sales := []Sale{
			{TotalPrice: dec("100"), CreatedAt: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)},
			{TotalPrice: dec("200"), CreatedAt: time.Date(2024, 1, 12, 23, 59, 0, 0, time.UTC)},
		}
		series := DailyRevenueSeries(sales, 7, now)
		if len(series) != 7 {
			t.Fatalf("expected 7 buckets, got %d", len(series))
		}
		if !series[0].Day.Equal(time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("expected window to start Jan 9, got %s", series[0].Day)
		}
		if !series[6].Revenue.Equal(dec("100")) {
			t.Fatalf("expected 100 on the last day, got %s", series[6].Revenue)
		}
		if !series[3].Revenue.Equal(dec("200")) {
			t.Fatalf("expected 200 on Jan 12, got %s", series[3].Revenue)
		}
		zeroDays := 0
		for _, bucket := range series {
			if bucket.Revenue.IsZero() {
				zeroDays++
			}
		}
		if zeroDays != 5 {
			t.Fatalf("expected 5 zero days, got %d", zeroDays)
		}
	})

	t.Run("same-day sales accumulate", func(t *testing.T) {
		sales := []Sale{
			{TotalPrice: dec("100"), CreatedAt: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)},
			{TotalPrice: dec("50"), CreatedAt: time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)},
		}
		series := DailyRevenueSeries(sales, 1, now)
		if len(series) != 1 {
			t.Fatalf("expected 1 bucket, got %d", len(series))
		}
		if !series[0].Revenue.Equal(dec("150")) {
			t.Fatalf("expected 150, got %s", series[0].Revenue)
		}
	})

	t.Run("sales outside the window dropped", func(t *testing.T) {
		sales := []Sale{
			{TotalPrice: dec("999"), CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
			{TotalPrice: dec("999"), CreatedAt: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)},
		}
		for _, bucket := range DailyRevenueSeries(sales, 7, now) {
			if !bucket.Revenue.IsZero() {
				t.Fatalf("expected every bucket zero, got %s on %s", bucket.Revenue, bucket.Day)
			}
		}
	})

	t.Run("no sales still yields full window", func(t *testing.T) {
		series := DailyRevenueSeries(nil, 30, now)
		if len(series) != 30 {
			t.Fatalf("expected 30 buckets, got %d", len(series))
		}
	})

	t.Run("non-positive window yields nil", func(t *testing.T) {
		if got := DailyRevenueSeries(nil, 0, now); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})
}

func TestTopSellingItems(t *testing.T) {
	itemA, itemB, itemC := uuid.New(), uuid.New(), uuid.New()

	t.Run("groups by name and sorts descending", func(t *testing.T) {
		sales := []Sale{
			{ItemID: itemA, ItemName: "Rice", Quantity: 2},
			{ItemID: itemB, ItemName: "Beans", Quantity: 7},
			{ItemID: itemA, ItemName: "Rice", Quantity: 6},
		}
		got := TopSellingItems(sales, 0)
		if len(got) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(got))
		}
		if got[0].Name != "Rice" || got[0].Quantity != 8 {
			t.Fatalf("expected Rice 8 first, got %+v", got[0])
		}
		if got[1].Name != "Beans" || got[1].Quantity != 7 {
			t.Fatalf("expected Beans 7 second, got %+v", got[1])
		}
	})

	t.Run("ties keep first-encountered order", func(t *testing.T) {
		sales := []Sale{
			{ItemID: itemA, ItemName: "Rice", Quantity: 5},
			{ItemID: itemB, ItemName: "Beans", Quantity: 5},
			{ItemID: itemC, ItemName: "Garri", Quantity: 5},
		}
		got := TopSellingItems(sales, 0)
		if got[0].Name != "Rice" || got[1].Name != "Beans" || got[2].Name != "Garri" {
			t.Fatalf("tie order broken: %v", got)
		}
	})

	t.Run("limit caps the ranking", func(t *testing.T) {
		sales := []Sale{
			{ItemName: "Rice", Quantity: 9},
			{ItemName: "Beans", Quantity: 5},
			{ItemName: "Garri", Quantity: 1},
		}
		got := TopSellingItems(sales, 2)
		if len(got) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(got))
		}
		if got[0].Name != "Rice" || got[1].Name != "Beans" {
			t.Fatalf("wrong top 2: %v", got)
		}
	})

	t.Run("empty input yields empty ranking", func(t *testing.T) {
		if got := TopSellingItems(nil, 5); len(got) != 0 {
			t.Fatalf("expected empty, got %v", got)
		}
	})
}

// Order independence: the aggregator must produce the same figures no matter
// how the input is arranged.
func TestAggregatorOrderIndependence(t *testing.T) {
	sales := []Sale{
		{ItemName: "Rice", Quantity: 2, TotalPrice: dec("1000")},
		{ItemName: "Beans", Quantity: 3, TotalPrice: dec("600")},
		{ItemName: "Rice", Quantity: 1, TotalPrice: dec("500")},
	}
	reversed := []Sale{sales[2], sales[1], sales[0]}

	if !TotalRevenue(sales).Equal(TotalRevenue(reversed)) {
		t.Fatal("TotalRevenue depends on input order")
	}
	if TotalItemsSold(sales) != TotalItemsSold(reversed) {
		t.Fatal("TotalItemsSold depends on input order")
	}
}
