package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewSale(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()

	t.Run("computes total price", func(t *testing.T) {
		sale, err := NewSale(userID, itemID, 3, decimal.RequireFromString("500"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sale.TotalPrice.Equal(decimal.RequireFromString("1500")) {
			t.Fatalf("expected total 1500, got %s", sale.TotalPrice)
		}
		if sale.ID == uuid.Nil {
			t.Fatal("expected generated id")
		}
		if sale.CreatedAt.IsZero() {
			t.Fatal("expected created_at to be set")
		}
	})

	t.Run("fractional unit price keeps cents exact", func(t *testing.T) {
		sale, err := NewSale(userID, itemID, 3, decimal.RequireFromString("0.10"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sale.TotalPrice.Equal(decimal.RequireFromString("0.30")) {
			t.Fatalf("expected total 0.30, got %s", sale.TotalPrice)
		}
	})

	t.Run("zero unit price is valid", func(t *testing.T) {
		sale, err := NewSale(userID, itemID, 2, decimal.Zero)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sale.TotalPrice.IsZero() {
			t.Fatalf("expected zero total, got %s", sale.TotalPrice)
		}
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		if _, err := NewSale(userID, itemID, 0, decimal.Zero); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		if _, err := NewSale(userID, itemID, -2, decimal.Zero); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("negative unit price rejected", func(t *testing.T) {
		if _, err := NewSale(userID, itemID, 1, decimal.RequireFromString("-0.01")); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
