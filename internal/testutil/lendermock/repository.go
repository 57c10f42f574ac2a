package lendermock

import (
	"context"

	domain "mortgage-rates/internal/domain/lender"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                 func(ctx context.Context, l *domain.Lender) error
	SaveFn                   func(ctx context.Context, l *domain.Lender) error
	GetByLenderIDFn          func(ctx context.Context, lenderID string) (*domain.Lender, error)
	GetByLenderIDForUpdateFn func(ctx context.Context, lenderID string) (*domain.Lender, error)
	ListFn                   func(ctx context.Context, activeOnly bool) ([]domain.Lender, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Lender) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Lender) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLenderID(ctx context.Context, lenderID string) (*domain.Lender, error) {
	if m.GetByLenderIDFn != nil {
		return m.GetByLenderIDFn(ctx, lenderID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLenderIDForUpdate(ctx context.Context, lenderID string) (*domain.Lender, error) {
	if m.GetByLenderIDForUpdateFn != nil {
		return m.GetByLenderIDForUpdateFn(ctx, lenderID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, activeOnly bool) ([]domain.Lender, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, activeOnly)
	}
	return nil, nil
}
