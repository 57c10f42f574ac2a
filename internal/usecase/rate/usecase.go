package rate

import (
	"context"
	"errors"

	domainLender "mortgage-rates/internal/domain/lender"
	domainRate "mortgage-rates/internal/domain/rate"
	"mortgage-rates/internal/domain/uow"
	"mortgage-rates/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	rateRepo   domainRate.Repository
	lenderRepo domainLender.Repository
	uow        uow.UnitOfWork
}

// NewUsecase: pass both repos and a UoW for tx flows.
func NewUsecase(rates domainRate.Repository, lenders domainLender.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{rateRepo: rates, lenderRepo: lenders, uow: tx}
}

// Create attaches a new rate sheet entry to lenderID. The lender row is
// locked for the duration so it cannot change underneath the insert.
func (u *Usecase) Create(ctx context.Context, lenderID string, in CreateRateInput) (*RateDTO, error) {
	rt := &domainRate.Rate{
		RateID:                id.NewID32(),
		LoanType:              domainRate.LoanType(in.LoanType),
		LoanTerm:              domainRate.LoanTerm(in.LoanTerm),
		InterestRate:          pct3(in.InterestRate),
		APR:                   pct3(in.APR),
		Points:                money(in.Points),
		MinCreditScore:        in.MinCreditScore,
		MaxLoanAmount:         money(in.MaxLoanAmount),
		MinDownPaymentPercent: money(in.MinDownPaymentPercent),
		ClosingCosts:          nullMoney(in.ClosingCosts),
		Active:                true,
	}
	if in.Active != nil {
		rt.Active = *in.Active
	}
	if err := rt.Validate(); err != nil {
		return nil, err
	}

	err := u.uow.WithinLenderTx(ctx, lenderID, func(r uow.Repos, l *domainLender.Lender) error {
		rt.LenderRefID = l.ID
		if err := r.Rates.Create(ctx, rt); err != nil {
			return err
		}
		rt.Lender = l
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLender.ErrNotFound
		}
		return nil, err
	}
	return toDTO(rt), nil
}

func (u *Usecase) Get(ctx context.Context, rateID string) (*RateDTO, error) {
	rt, err := u.rateRepo.GetByRateID(ctx, rateID)
	if err != nil {
		return nil, rateNotFound(err)
	}
	return toDTO(rt), nil
}

func (u *Usecase) ListByLender(ctx context.Context, lenderID string) ([]RateDTO, error) {
	l, err := u.lenderRepo.GetByLenderID(ctx, lenderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLender.ErrNotFound
		}
		return nil, err
	}
	rates, err := u.rateRepo.ListByLender(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]RateDTO, 0, len(rates))
	for i := range rates {
		if rates[i].Lender == nil {
			rates[i].Lender = l
		}
		out = append(out, *toDTO(&rates[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, rateID string, in UpdateRateInput) (*RateDTO, error) {
	var dto *RateDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rt, err := r.Rates.GetByRateID(ctx, rateID)
		if err != nil {
			return rateNotFound(err)
		}
		if in.InterestRate != nil {
			rt.InterestRate = pct3(*in.InterestRate)
		}
		if in.APR != nil {
			rt.APR = pct3(*in.APR)
		}
		if in.Points != nil {
			rt.Points = money(*in.Points)
		}
		if in.MinCreditScore != nil {
			rt.MinCreditScore = *in.MinCreditScore
		}
		if in.MaxLoanAmount != nil {
			rt.MaxLoanAmount = money(*in.MaxLoanAmount)
		}
		if in.MinDownPaymentPercent != nil {
			rt.MinDownPaymentPercent = money(*in.MinDownPaymentPercent)
		}
		switch {
		case in.ClearClosingCosts:
			rt.ClosingCosts = decimal.NullDecimal{}
		case in.ClosingCosts != nil:
			rt.ClosingCosts = nullMoney(in.ClosingCosts)
		}
		if err := rt.Validate(); err != nil {
			return err
		}
		if err := r.Rates.Save(ctx, rt); err != nil {
			return err
		}
		dto = toDTO(rt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) SetActive(ctx context.Context, rateID string, active bool) (*RateDTO, error) {
	var dto *RateDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rt, err := r.Rates.GetByRateID(ctx, rateID)
		if err != nil {
			return rateNotFound(err)
		}
		if rt.Active != active {
			rt.Active = active
			if err := r.Rates.Save(ctx, rt); err != nil {
				return err
			}
		}
		dto = toDTO(rt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func rateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainRate.ErrNotFound
	}
	return err
}

func pct3(f float64) decimal.Decimal  { return decimal.NewFromFloat(f).Round(3) }
func money(f float64) decimal.Decimal { return decimal.NewFromFloat(f).Round(2) }

func nullMoney(f *float64) decimal.NullDecimal {
	if f == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(money(*f))
}

func toDTO(rt *domainRate.Rate) *RateDTO {
	dto := &RateDTO{
		RateID:                rt.RateID,
		LoanType:              string(rt.LoanType),
		LoanTerm:              int(rt.LoanTerm),
		InterestRate:          rt.InterestRate.InexactFloat64(),
		APR:                   rt.APR.InexactFloat64(),
		Points:                rt.Points.InexactFloat64(),
		MinCreditScore:        rt.MinCreditScore,
		MaxLoanAmount:         rt.MaxLoanAmount.InexactFloat64(),
		MinDownPaymentPercent: rt.MinDownPaymentPercent.InexactFloat64(),
		Active:                rt.Active,
		CreatedAt:             rt.CreatedAt,
		UpdatedAt:             rt.UpdatedAt,
	}
	if rt.Lender != nil {
		dto.LenderID = rt.Lender.LenderID
		dto.LenderName = rt.Lender.Name
	}
	if rt.ClosingCosts.Valid {
		cc := rt.ClosingCosts.Decimal.InexactFloat64()
		dto.ClosingCosts = &cc
	}
	return dto
}
