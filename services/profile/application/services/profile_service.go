package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	profiledomain "github.com/ghuser/stockledger/services/profile/domain"
	"github.com/ghuser/stockledger/services/profile/domain/models"
	"github.com/ghuser/stockledger/services/profile/domain/repositories"
)

// ProfileService manages the per-user account record: plan upgrades and
// display preferences. Payment confirmation is the caller's concern; by the
// time UpgradePlan runs, the payment has already been settled externally.
type ProfileService struct {
	repo repositories.ProfileRepository
}

// NewProfileService returns a ProfileService wired with the given repository.
func NewProfileService(repo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the user's profile.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	p, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// UpgradePlan moves the user to the pro tier. Upgrading an already-pro user
// is a no-op success.
func (s *ProfileService) UpgradePlan(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.SetPlan(ctx, userID, models.PlanPro); err != nil {
		return fmt.Errorf("upgrade plan: %w", err)
	}
	return nil
}

// UpdateTheme sets the display preference.
func (s *ProfileService) UpdateTheme(ctx context.Context, userID uuid.UUID, theme string) error {
	if !models.ValidTheme(theme) {
		return fmt.Errorf("%w: %q", profiledomain.ErrInvalidTheme, theme)
	}
	if err := s.repo.SetTheme(ctx, userID, theme); err != nil {
		return fmt.Errorf("update theme: %w", err)
	}
	return nil
}
