package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNewItem(t *testing.T) {
	userID := uuid.New()
	name := ItemName("Rice 5kg")

	t.Run("valid item gets id, timestamp and default threshold", func(t *testing.T) {
		item, err := NewItem(userID, name, 12, dec("350"), dec("500"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == uuid.Nil {
			t.Fatal("expected generated id")
		}
		if item.UserID != userID {
			t.Fatalf("expected user id %s, got %s", userID, item.UserID)
		}
		if item.CreatedAt.IsZero() {
			t.Fatal("expected created_at to be set")
		}
		if item.LowStockThreshold != DefaultLowStockThreshold {
			t.Fatalf("expected default threshold %d, got %d", DefaultLowStockThreshold, item.LowStockThreshold)
		}
	})

	t.Run("zero quantity is valid", func(t *testing.T) {
		item, err := NewItem(userID, name, 0, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Quantity != 0 {
			t.Fatalf("expected quantity 0, got %d", item.Quantity)
		}
	})

	t.Run("nil prices are valid", func(t *testing.T) {
		item, err := NewItem(userID, name, 3, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CostPrice != nil || item.SellingPrice != nil {
			t.Fatal("expected prices to stay nil")
		}
	})

	t.Run("negative quantity returns error", func(t *testing.T) {
		_, err := NewItem(userID, name, -1, nil, nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("negative cost price returns error", func(t *testing.T) {
		_, err := NewItem(userID, name, 1, dec("-0.01"), nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("negative selling price returns error", func(t *testing.T) {
		_, err := NewItem(userID, name, 1, nil, dec("-10"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestItem_IsLowStock(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int
		threshold int
		want      bool
	}{
		{"well above threshold", 20, 5, false},
		{"one above threshold", 6, 5, false},
		{"exactly at threshold", 5, 5, true},
		{"below threshold", 2, 5, true},
		{"zero quantity", 0, 5, true},
		{"zero threshold only at zero", 0, 0, true},
		{"zero threshold positive quantity", 1, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := &Item{Quantity: tc.quantity, LowStockThreshold: tc.threshold}
			if got := item.IsLowStock(); got != tc.want {
				t.Fatalf("IsLowStock() = %v, want %v", got, tc.want)
			}
		})
	}
}
