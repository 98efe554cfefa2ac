package models

import (
	"time"

	"github.com/google/uuid"
)

// Plan is the subscription tier gating the item-count quota.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// Valid themes for the display preference.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Profile is the per-user account record. Its ID equals the owning user's
// identifier, so it doubles as the quota anchor: item inserts lock this row.
type Profile struct {
	ID        uuid.UUID
	Email     string
	Plan      Plan
	Theme     string
	CreatedAt time.Time
}

// IsPro reports whether the user is on the unlimited tier.
func (p *Profile) IsPro() bool {
	return p.Plan == PlanPro
}

// ValidTheme reports whether s is a supported display theme.
func ValidTheme(s string) bool {
	switch s {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	}
	return false
}
