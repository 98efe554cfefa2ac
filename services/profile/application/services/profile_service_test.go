package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	profiledomain "github.com/ghuser/stockledger/services/profile/domain"
	"github.com/ghuser/stockledger/services/profile/domain/models"
)

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*models.Profile)}
}

func (r *fakeProfileRepo) add(plan models.Plan) uuid.UUID {
	id := uuid.New()
	r.profiles[id] = &models.Profile{ID: id, Email: "vendor@example.com", Plan: plan, Theme: models.ThemeSystem}
	return id
}

func (r *fakeProfileRepo) GetByID(_ context.Context, userID uuid.UUID) (*models.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, profiledomain.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) SetPlan(_ context.Context, userID uuid.UUID, plan models.Plan) error {
	p, ok := r.profiles[userID]
	if !ok {
		return profiledomain.ErrProfileNotFound
	}
	p.Plan = plan
	return nil
}

func (r *fakeProfileRepo) SetTheme(_ context.Context, userID uuid.UUID, theme string) error {
	p, ok := r.profiles[userID]
	if !ok {
		return profiledomain.ErrProfileNotFound
	}
	p.Theme = theme
	return nil
}

func TestProfileService_UpgradePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("free user becomes pro", func(t *testing.T) {
		repo := newFakeProfileRepo()
		userID := repo.add(models.PlanFree)
		svc := NewProfileService(repo)

		if err := svc.UpgradePlan(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p, err := svc.Get(ctx, userID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !p.IsPro() {
			t.Fatalf("expected pro plan, got %s", p.Plan)
		}
	})

	t.Run("upgrading a pro user is a no-op success", func(t *testing.T) {
		repo := newFakeProfileRepo()
		userID := repo.add(models.PlanPro)
		svc := NewProfileService(repo)

		if err := svc.UpgradePlan(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing profile reported", func(t *testing.T) {
		svc := NewProfileService(newFakeProfileRepo())
		err := svc.UpgradePlan(ctx, uuid.New())
		if !errors.Is(err, profiledomain.ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})
}

func TestProfileService_UpdateTheme(t *testing.T) {
	ctx := context.Background()

	t.Run("valid theme stored", func(t *testing.T) {
		repo := newFakeProfileRepo()
		userID := repo.add(models.PlanFree)
		svc := NewProfileService(repo)

		if err := svc.UpdateTheme(ctx, userID, models.ThemeDark); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p, _ := svc.Get(ctx, userID)
		if p.Theme != models.ThemeDark {
			t.Fatalf("expected dark theme, got %s", p.Theme)
		}
	})

	t.Run("unknown theme rejected", func(t *testing.T) {
		repo := newFakeProfileRepo()
		userID := repo.add(models.PlanFree)
		svc := NewProfileService(repo)

		err := svc.UpdateTheme(ctx, userID, "neon")
		if !errors.Is(err, profiledomain.ErrInvalidTheme) {
			t.Fatalf("expected ErrInvalidTheme, got %v", err)
		}
	})
}
