package ratemock

import (
	"context"

	domain "mortgage-rates/internal/domain/rate"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, r *domain.Rate) error
	SaveFn         func(ctx context.Context, r *domain.Rate) error
	GetByRateIDFn  func(ctx context.Context, rateID string) (*domain.Rate, error)
	ListByLenderFn func(ctx context.Context, lenderNumericID uint64) ([]domain.Rate, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Rate) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, r *domain.Rate) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRateID(ctx context.Context, rateID string) (*domain.Rate, error) {
	if m.GetByRateIDFn != nil {
		return m.GetByRateIDFn(ctx, rateID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByLender(ctx context.Context, lenderNumericID uint64) ([]domain.Rate, error) {
	if m.ListByLenderFn != nil {
		return m.ListByLenderFn(ctx, lenderNumericID)
	}
	return nil, nil
}
