package seed

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"mortgage-rates/internal/domain/uow"
	"mortgage-rates/pkg/id"
)

type Summary struct {
	LendersCreated int
	LendersSkipped int
	RatesCreated   int
}

// Apply writes the fixture in a single transaction. Lenders whose lender_id
// already exists are left untouched, which makes re-running a fixture safe.
func Apply(ctx context.Context, tx uow.UnitOfWork, f *Fixture, log *zap.Logger) (Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var sum Summary
	err := tx.WithinTx(ctx, func(r uow.Repos) error {
		sum = Summary{}
		for _, lf := range f.Lenders {
			if lf.LenderID != "" {
				_, err := r.Lenders.GetByLenderID(ctx, lf.LenderID)
				switch {
				case err == nil:
					sum.LendersSkipped++
					log.Info("seed: lender exists, skipped", zap.String("lender_id", lf.LenderID))
					continue
				case !errors.Is(err, gorm.ErrRecordNotFound):
					return err
				}
			}

			l := lf.toLender()
			if err := r.Lenders.Create(ctx, l); err != nil {
				return err
			}
			sum.LendersCreated++

			for _, rf := range lf.Rates {
				rt := rf.toRate()
				rt.RateID = id.NewID32()
				rt.LenderRefID = l.ID
				if err := r.Rates.Create(ctx, rt); err != nil {
					return err
				}
				sum.RatesCreated++
			}
			log.Info("seed: lender created",
				zap.String("lender_id", l.LenderID),
				zap.String("name", l.Name),
				zap.Int("rates", len(lf.Rates)),
			)
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return sum, nil
}
