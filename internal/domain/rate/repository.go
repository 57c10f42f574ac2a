package rate

import "context"

type Repository interface {
	Create(ctx context.Context, r *Rate) error
	Save(ctx context.Context, r *Rate) error
	// Lender is preloaded on the returned rate
	GetByRateID(ctx context.Context, rateID string) (*Rate, error)
	ListByLender(ctx context.Context, lenderNumericID uint64) ([]Rate, error)
}
