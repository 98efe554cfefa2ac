// Package services contains stateless domain services for the inventory
// bounded context. Domain services enforce business rules that operate purely
// on domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	domain "github.com/ghuser/stockledger/services/inventory/domain"
	"github.com/ghuser/stockledger/services/inventory/domain/models"
)

// ValidateName enforces business rules for ItemName beyond the structural
// constraints enforced by the ItemName constructor (length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
//   - Must not be only whitespace characters
func ValidateName(name models.ItemName) error {
	s := name.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("item name must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("item name must not be only whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("item name must not contain control characters")
		}
	}

	if strings.Contains(s, "  ") {
		return fmt.Errorf("item name must not contain consecutive spaces")
	}

	return nil
}

// ValidateItemForCreation performs cross-field validation on a fully-constructed
// Item aggregate before it is persisted. It assumes the Item was built via
// models.NewItem (so structural constraints are already satisfied) and
// adds business-level checks that span multiple fields.
func ValidateItemForCreation(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if err := ValidateName(item.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if item.UserID == uuid.Nil {
		return fmt.Errorf("user_id must be set")
	}

	if item.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	if item.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}

	if item.LowStockThreshold < 0 {
		return fmt.Errorf("low_stock_threshold must not be negative")
	}

	return nil
}

// CheckQuota decides whether a user on the given plan may add another item
// while already holding itemCount items. Free-plan users are capped at
// models.FreePlanItemLimit; pro users are unlimited.
//
// The repository calls this inside the insert transaction, after the profile
// row is locked, so two concurrent inserts cannot both pass the count check.
func CheckQuota(plan string, itemCount int) error {
	if plan != "free" {
		return nil
	}
	if itemCount >= models.FreePlanItemLimit {
		return fmt.Errorf("%w (%d items); upgrade to pro to add more", domain.ErrQuotaExceeded, models.FreePlanItemLimit)
	}
	return nil
}
