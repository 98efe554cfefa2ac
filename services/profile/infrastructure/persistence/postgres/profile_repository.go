package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/stockledger/pkg/database"
	profiledomain "github.com/ghuser/stockledger/services/profile/domain"
	"github.com/ghuser/stockledger/services/profile/domain/models"
)

// ProfileRepository implements repositories.ProfileRepository against PostgreSQL.
type ProfileRepository struct {
	db *database.Database
}

// NewProfileRepository returns a ProfileRepository backed by the given connection pool.
func NewProfileRepository(db *database.Database) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByID returns the profile for the user.
func (r *ProfileRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT id, email, plan, theme, created_at
		FROM profiles
		WHERE id = $1`,
		userID,
	).Scan(&p.ID, &p.Email, &p.Plan, &p.Theme, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, profiledomain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &p, nil
}

// SetPlan updates the subscription tier.
func (r *ProfileRepository) SetPlan(ctx context.Context, userID uuid.UUID, plan models.Plan) error {
	res, err := r.db.DB().ExecContext(ctx,
		`UPDATE profiles SET plan = $2 WHERE id = $1`,
		userID, plan,
	)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	return requireRow(res)
}

// SetTheme updates the display preference.
func (r *ProfileRepository) SetTheme(ctx context.Context, userID uuid.UUID, theme string) error {
	res, err := r.db.DB().ExecContext(ctx,
		`UPDATE profiles SET theme = $2 WHERE id = $1`,
		userID, theme,
	)
	if err != nil {
		return fmt.Errorf("update theme: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return profiledomain.ErrProfileNotFound
	}
	return nil
}
