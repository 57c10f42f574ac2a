package mysql

import (
	"context"

	lenderDomain "mortgage-rates/internal/domain/lender"
	rateDomain "mortgage-rates/internal/domain/rate"

	"gorm.io/gorm"
)

// CatalogRepository is the read-only view the quote engine prices against.
type CatalogRepository struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{db: db} }

func (r *CatalogRepository) ListActiveLenders(ctx context.Context) ([]lenderDomain.Lender, error) {
	var out []lenderDomain.Lender
	res := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// ListActiveRates orders by rates.id so that APR ties resolve the same way on
// every call.
func (r *CatalogRepository) ListActiveRates(ctx context.Context) ([]rateDomain.Rate, error) {
	var out []rateDomain.Rate
	res := r.db.WithContext(ctx).
		Joins("JOIN lenders ON lenders.id = rates.lender_id").
		Where("rates.active = ? AND lenders.active = ?", true, true).
		Order("rates.id ASC").
		Find(&out)
	return out, res.Error
}
