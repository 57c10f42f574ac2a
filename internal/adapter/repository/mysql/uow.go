package mysql

import (
	"context"

	"mortgage-rates/internal/domain/lender"
	"mortgage-rates/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinLenderTx(ctx context.Context, lenderID string, fn func(r uow.Repos, l *lender.Lender) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the lender row up-front to prevent races
		l, err := r.Lenders.GetByLenderIDForUpdate(ctx, lenderID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Lenders: &LenderRepository{db: tx},
		Rates:   &RateRepository{db: tx},
	}
}
