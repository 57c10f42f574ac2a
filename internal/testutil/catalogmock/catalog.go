package catalogmock

import (
	"context"

	"mortgage-rates/internal/domain/lender"
	"mortgage-rates/internal/domain/rate"
)

// Catalog is a function-backed mock that satisfies quote.Catalog.
// Nil funcs fall back to the Lenders/Rates fixtures, filtered the way the
// real store filters them.
type Catalog struct {
	ListActiveLendersFn func(ctx context.Context) ([]lender.Lender, error)
	ListActiveRatesFn   func(ctx context.Context) ([]rate.Rate, error)

	Lenders []lender.Lender
	Rates   []rate.Rate
}

func (m *Catalog) ListActiveLenders(ctx context.Context) ([]lender.Lender, error) {
	if m.ListActiveLendersFn != nil {
		return m.ListActiveLendersFn(ctx)
	}
	out := make([]lender.Lender, 0, len(m.Lenders))
	for _, l := range m.Lenders {
		if l.Active {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *Catalog) ListActiveRates(ctx context.Context) ([]rate.Rate, error) {
	if m.ListActiveRatesFn != nil {
		return m.ListActiveRatesFn(ctx)
	}
	active := make(map[uint64]bool, len(m.Lenders))
	for _, l := range m.Lenders {
		active[l.ID] = l.Active
	}
	out := make([]rate.Rate, 0, len(m.Rates))
	for _, r := range m.Rates {
		if r.Active && active[r.LenderRefID] {
			out = append(out, r)
		}
	}
	return out, nil
}
