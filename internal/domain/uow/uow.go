package uow

import (
	"context"

	"mortgage-rates/internal/domain/lender"
	"mortgage-rates/internal/domain/rate"
)

type Repos struct {
	Lenders lender.Repository
	Rates   rate.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock lender first, then pass it in
	WithinLenderTx(ctx context.Context, lenderID string, fn func(r Repos, l *lender.Lender) error) error
}
