package mysql

import (
	"context"

	rateDomain "mortgage-rates/internal/domain/rate"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RateRepository struct{ db *gorm.DB }

func NewRateRepository(db *gorm.DB) *RateRepository { return &RateRepository{db: db} }

// Lender is a read-side association; writes never touch the lenders table.
func (r *RateRepository) Create(ctx context.Context, rt *rateDomain.Rate) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(rt).Error
}

func (r *RateRepository) Save(ctx context.Context, rt *rateDomain.Rate) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(rt).Error
}

func (r *RateRepository) GetByRateID(ctx context.Context, rateID string) (*rateDomain.Rate, error) {
	var out rateDomain.Rate
	res := r.db.WithContext(ctx).Preload("Lender").Where("rate_id = ?", rateID).First(&out)
	return &out, res.Error
}

func (r *RateRepository) ListByLender(ctx context.Context, lenderNumericID uint64) ([]rateDomain.Rate, error) {
	var out []rateDomain.Rate
	res := r.db.WithContext(ctx).
		Preload("Lender").
		Where("lender_id = ?", lenderNumericID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
