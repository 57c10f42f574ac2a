package quote

import (
	"context"

	"mortgage-rates/internal/domain/lender"
	"mortgage-rates/internal/domain/rate"
)

// Catalog is the read side of the lender rate sheets.
type Catalog interface {
	// All lenders with active=true.
	ListActiveLenders(ctx context.Context) ([]lender.Lender, error)
	// Active rates of active lenders, in stable catalog order.
	ListActiveRates(ctx context.Context) ([]rate.Rate, error)
}
