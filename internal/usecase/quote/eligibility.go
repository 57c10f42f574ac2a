package quote

import (
	"github.com/shopspring/decimal"

	"mortgage-rates/internal/domain/lender"
	domain "mortgage-rates/internal/domain/quote"
	"mortgage-rates/internal/domain/rate"
)

// ratios are the request-level derived values shared by every quote.
type ratios struct {
	DownPaymentPercent decimal.Decimal
	LoanToValueRatio   decimal.Decimal
}

func deriveRatios(p domain.BorrowerProfile) (ratios, error) {
	if !p.PropertyValue.IsPositive() {
		return ratios{}, invalidProfile("property value must be positive")
	}
	if p.LoanTerm <= 0 {
		return ratios{}, invalidProfile("loan term must be positive")
	}
	return ratios{
		DownPaymentPercent: percentOf(p.DownPayment, p.PropertyValue),
		LoanToValueRatio:   percentOf(p.LoanAmount, p.PropertyValue),
	}, nil
}

// matcher decides whether a catalog rate is offered to one profile.
type matcher struct {
	profile       domain.BorrowerProfile
	ratios        ratios
	activeLenders map[uint64]lender.Lender
}

func newMatcher(p domain.BorrowerProfile, r ratios, lenders []lender.Lender) *matcher {
	active := make(map[uint64]lender.Lender, len(lenders))
	for _, l := range lenders {
		if l.Active {
			active[l.ID] = l
		}
	}
	return &matcher{profile: p, ratios: r, activeLenders: active}
}

// match returns the owning lender when r is a candidate for the profile.
func (m *matcher) match(r rate.Rate) (lender.Lender, bool) {
	if !r.Active {
		return lender.Lender{}, false
	}
	l, ok := m.activeLenders[r.LenderRefID]
	if !ok {
		return lender.Lender{}, false
	}
	p := m.profile
	switch {
	case r.LoanType != p.LoanType,
		r.LoanTerm != p.LoanTerm,
		r.MinCreditScore > p.CreditScore,
		r.MaxLoanAmount.LessThan(p.LoanAmount),
		r.MinDownPaymentPercent.GreaterThan(m.ratios.DownPaymentPercent):
		return lender.Lender{}, false
	}
	return l, true
}
