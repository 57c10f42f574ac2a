package mysql

import (
	"context"

	lenderDomain "mortgage-rates/internal/domain/lender"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LenderRepository struct{ db *gorm.DB }

func NewLenderRepository(db *gorm.DB) *LenderRepository { return &LenderRepository{db: db} }

func (r *LenderRepository) Create(ctx context.Context, l *lenderDomain.Lender) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LenderRepository) Save(ctx context.Context, l *lenderDomain.Lender) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LenderRepository) GetByLenderID(ctx context.Context, lenderID string) (*lenderDomain.Lender, error) {
	var out lenderDomain.Lender
	res := r.db.WithContext(ctx).Where("lender_id = ?", lenderID).First(&out)
	return &out, res.Error
}

func (r *LenderRepository) GetByLenderIDForUpdate(ctx context.Context, lenderID string) (*lenderDomain.Lender, error) {
	var out lenderDomain.Lender
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("lender_id = ?", lenderID).
		First(&out)
	return &out, res.Error
}

func (r *LenderRepository) List(ctx context.Context, activeOnly bool) ([]lenderDomain.Lender, error) {
	var out []lenderDomain.Lender
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	res := q.Order("name ASC, id ASC").Find(&out)
	return out, res.Error
}
