package lender

import "context"

type Repository interface {
	Create(ctx context.Context, l *Lender) error
	Save(ctx context.Context, l *Lender) error
	GetByLenderID(ctx context.Context, lenderID string) (*Lender, error)
	// Row-locking read, only meaningful inside a transaction
	GetByLenderIDForUpdate(ctx context.Context, lenderID string) (*Lender, error)
	List(ctx context.Context, activeOnly bool) ([]Lender, error)
}
