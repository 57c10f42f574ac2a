package uowmock

import (
	"context"
	"errors"

	"mortgage-rates/internal/domain/lender"
	"mortgage-rates/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn       func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLenderTxFn func(ctx context.Context, lenderID string, fn func(r uow.Repos, l *lender.Lender) error) error
}

// Passthrough runs every unit of work directly against repos, without a
// transaction. WithinLenderTx resolves the lender through repos.Lenders.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinLenderTxFn: func(ctx context.Context, lenderID string, fn func(uow.Repos, *lender.Lender) error) error {
			l, err := repos.Lenders.GetByLenderIDForUpdate(ctx, lenderID)
			if err != nil {
				return err
			}
			return fn(repos, l)
		},
	}
}

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLenderTx(ctx context.Context, lenderID string, fn func(r uow.Repos, l *lender.Lender) error) error {
	if m.WithinLenderTxFn != nil {
		return m.WithinLenderTxFn(ctx, lenderID, fn)
	}
	return errUnimplemented
}
