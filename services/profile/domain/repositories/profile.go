package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockledger/services/profile/domain/models"
)

// ProfileRepository is the persistence interface for the Profile record.
type ProfileRepository interface {
	// GetByID returns the profile for the user. Returns ErrProfileNotFound
	// when no row exists.
	GetByID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)

	// SetPlan updates the subscription tier. Returns ErrProfileNotFound when
	// no row matches.
	SetPlan(ctx context.Context, userID uuid.UUID, plan models.Plan) error

	// SetTheme updates the display preference. Returns ErrProfileNotFound
	// when no row matches.
	SetTheme(ctx context.Context, userID uuid.UUID, theme string) error
}
