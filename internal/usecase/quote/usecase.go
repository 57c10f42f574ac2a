package quote

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	domain "mortgage-rates/internal/domain/quote"
	"mortgage-rates/internal/domain/rate"
)

type Usecase struct {
	catalog domain.Catalog
	log     *zap.Logger
}

func NewUsecase(c domain.Catalog, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{catalog: c, log: log}
}

func invalidProfile(msg string) error { return fmt.Errorf("%w: %s", domain.ErrInvalidProfile, msg) }

// ComputeQuotes prices every eligible catalog rate for p and returns the
// quotes ordered by APR, cheapest first. Equal APRs keep catalog order.
// No match is an empty slice, not an error.
func (u *Usecase) ComputeQuotes(ctx context.Context, p domain.BorrowerProfile) ([]domain.Quote, error) {
	rt, err := deriveRatios(p)
	if err != nil {
		return nil, err
	}

	lenders, err := u.catalog.ListActiveLenders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list lenders: %w", domain.ErrCatalogUnavailable, err)
	}
	rates, err := u.catalog.ListActiveRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list rates: %w", domain.ErrCatalogUnavailable, err)
	}

	m := newMatcher(p, rt, lenders)
	out := make([]domain.Quote, 0, len(rates))
	for _, r := range rates {
		l, ok := m.match(r)
		if !ok {
			continue
		}
		payment := AmortizedPayment(p.LoanAmount, r.InterestRate, p.LoanTerm)
		out = append(out, domain.Quote{
			RateID:             r.RateID,
			LenderID:           l.LenderID,
			LenderName:         l.Name,
			LenderLogoURL:      l.LogoURL,
			LoanType:           r.LoanType,
			LoanTerm:           r.LoanTerm,
			InterestRate:       r.InterestRate,
			APR:                r.APR,
			Points:             r.Points,
			MonthlyPayment:     payment,
			TotalInterest:      TotalInterest(payment, p.LoanAmount, r.InterestRate, p.LoanTerm),
			ClosingCosts:       r.ClosingCosts,
			DownPaymentPercent: rt.DownPaymentPercent,
			LoanToValueRatio:   rt.LoanToValueRatio,
		})
	}

	slices.SortStableFunc(out, func(a, b domain.Quote) int { return a.APR.Cmp(b.APR) })

	u.log.Debug("quotes computed",
		zap.String("loan_type", string(p.LoanType)),
		zap.Int("loan_term", int(p.LoanTerm)),
		zap.Int("candidates", len(rates)),
		zap.Int("quotes", len(out)),
	)
	return out, nil
}

// Compute is ComputeQuotes at the JSON boundary: plain numbers in and out.
func (u *Usecase) Compute(ctx context.Context, in ComputeQuotesInput) (*QuotesDTO, error) {
	qs, err := u.ComputeQuotes(ctx, in.profile())
	if err != nil {
		return nil, err
	}
	dto := &QuotesDTO{Quotes: make([]QuoteDTO, 0, len(qs)), Count: len(qs)}
	for _, q := range qs {
		dto.Quotes = append(dto.Quotes, toQuoteDTO(q))
	}
	return dto, nil
}

func (in ComputeQuotesInput) profile() domain.BorrowerProfile {
	p := domain.BorrowerProfile{
		LoanAmount:    decimal2(in.LoanAmount),
		PropertyValue: decimal2(in.PropertyValue),
		DownPayment:   decimal2(in.DownPayment),
		CreditScore:   in.CreditScore,
		LoanType:      rate.LoanType(in.LoanType),
		LoanTerm:      rate.LoanTerm(in.LoanTerm),
		PropertyType:  domain.PropertyType(in.PropertyType),
		OccupancyType: domain.OccupancyType(in.OccupancyType),
		ZipCode:       in.ZipCode,
	}
	if in.DebtToIncomeRatio != nil {
		dti := decimal2(*in.DebtToIncomeRatio)
		p.DebtToIncomeRatio = &dti
	}
	return p
}

func toQuoteDTO(q domain.Quote) QuoteDTO {
	dto := QuoteDTO{
		RateID:             q.RateID,
		LenderID:           q.LenderID,
		LenderName:         q.LenderName,
		LenderLogoURL:      q.LenderLogoURL,
		LoanType:           string(q.LoanType),
		LoanTerm:           int(q.LoanTerm),
		InterestRate:       q.InterestRate.InexactFloat64(),
		APR:                q.APR.InexactFloat64(),
		Points:             q.Points.InexactFloat64(),
		MonthlyPayment:     q.MonthlyPayment.InexactFloat64(),
		TotalInterest:      q.TotalInterest.InexactFloat64(),
		DownPaymentPercent: q.DownPaymentPercent.InexactFloat64(),
		LoanToValueRatio:   q.LoanToValueRatio.InexactFloat64(),
	}
	if q.ClosingCosts.Valid {
		cc := q.ClosingCosts.Decimal.InexactFloat64()
		dto.ClosingCosts = &cc
	}
	return dto
}
