package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	salesdomain "github.com/ghuser/stockledger/services/sales/domain"
	"github.com/ghuser/stockledger/services/sales/domain/models"
	"github.com/ghuser/stockledger/services/sales/domain/repositories"
)

// SalesService records sales against the user's inventory. The stock
// decrement and the sale insert happen atomically in the repository; this
// layer owns input validation and total computation.
type SalesService struct {
	repo repositories.SaleRepository
}

// NewSalesService returns a SalesService wired with the given repository.
func NewSalesService(repo repositories.SaleRepository) *SalesService {
	return &SalesService{repo: repo}
}

// RecordSale validates the request, persists the sale and decrements the
// item's stock. Returns ErrInsufficientStock when the item holds fewer units
// than requested — the stock is left untouched in that case.
func (s *SalesService) RecordSale(ctx context.Context, userID, itemID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*models.Sale, error) {
	sale, err := models.NewSale(userID, itemID, quantity, unitPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", salesdomain.ErrInvalidSale, err)
	}

	if err := s.repo.Record(ctx, sale); err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}
	return sale, nil
}

// GetByID retrieves one sale scoped to the user.
func (s *SalesService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Sale, error) {
	sale, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// List returns a paginated, newest-first slice of the user's sales within the
// window described by opts, plus the total count in the window.
func (s *SalesService) List(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Sale, int, error) {
	sales, total, err := s.repo.FindByUserID(ctx, userID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	return sales, total, nil
}
