// Package metrics computes report figures from in-memory item and sale
// snapshots. Every function is pure: no store access, no clocks (callers pass
// the reference time), identical output for identical input.
package metrics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is the inventory snapshot the aggregator operates on.
type Item struct {
	ID                uuid.UUID
	Name              string
	Quantity          int
	CostPrice         *decimal.Decimal // nil when the vendor never entered one
	LowStockThreshold int
}

// Sale is the sale snapshot the aggregator operates on.
type Sale struct {
	ItemID     uuid.UUID
	ItemName   string
	Quantity   int
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

// DayRevenue is one bucket of a daily revenue series.
type DayRevenue struct {
	Day     time.Time // midnight UTC of the bucket's calendar day
	Revenue decimal.Decimal
}

// ItemSales is one row of a top-selling-items ranking.
type ItemSales struct {
	Name     string
	Quantity int
}

// LowStockAlerts returns the items whose quantity has fallen to or below
// their threshold, sorted by quantity ascending. The boundary is inclusive:
// quantity == threshold qualifies. A positive limit caps the result.
func LowStockAlerts(items []Item, limit int) []Item {
	var low []Item
	for _, item := range items {
		if item.Quantity <= item.LowStockThreshold {
			low = append(low, item)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Quantity < low[j].Quantity
	})
	if limit > 0 && len(low) > limit {
		low = low[:limit]
	}
	return low
}

// TotalRevenue sums total_price over the sales. Empty input yields zero.
func TotalRevenue(sales []Sale) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.TotalPrice)
	}
	return total
}

// TotalItemsSold sums the unit quantities over the sales.
func TotalItemsSold(sales []Sale) int {
	total := 0
	for _, sale := range sales {
		total += sale.Quantity
	}
	return total
}

// InventoryValuation sums quantity × cost_price over the items. Items without
// a cost price contribute zero.
func InventoryValuation(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.CostPrice == nil {
			continue
		}
		total = total.Add(item.CostPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// DailyRevenueSeries buckets sales by UTC calendar day into exactly
// windowDays consecutive buckets ending on now's day, oldest first. Days with
// no sales carry a zero bucket; sales outside the window are dropped.
func DailyRevenueSeries(sales []Sale, windowDays int, now time.Time) []DayRevenue {
	if windowDays <= 0 {
		return nil
	}

	end := dayStart(now.UTC())
	start := end.AddDate(0, 0, -(windowDays - 1))

	series := make([]DayRevenue, windowDays)
	for i := range series {
		series[i] = DayRevenue{Day: start.AddDate(0, 0, i), Revenue: decimal.Zero}
	}

	for _, sale := range sales {
		day := dayStart(sale.CreatedAt.UTC())
		if day.Before(start) || day.After(end) {
			continue
		}
		idx := int(day.Sub(start).Hours() / 24)
		series[idx].Revenue = series[idx].Revenue.Add(sale.TotalPrice)
	}
	return series
}

// TopSellingItems groups sales by item name, sums quantities, and returns the
// top limit names by quantity descending. Ties keep first-encountered order.
func TopSellingItems(sales []Sale, limit int) []ItemSales {
	index := make(map[string]int)
	var ranked []ItemSales
	for _, sale := range sales {
		if i, ok := index[sale.ItemName]; ok {
			ranked[i].Quantity += sale.Quantity
			continue
		}
		index[sale.ItemName] = len(ranked)
		ranked = append(ranked, ItemSales{Name: sale.ItemName, Quantity: sale.Quantity})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
