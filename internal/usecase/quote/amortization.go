package quote

import (
	"math"

	"github.com/shopspring/decimal"

	"mortgage-rates/internal/domain/rate"
)

var hundred = decimal.NewFromInt(100)

// round2 rounds half away from zero to currency precision.
func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// percentOf returns part/whole*100 rounded to 2 places. whole must be non-zero.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	return round2(part.Mul(hundred).Div(whole))
}

// AmortizedPayment is the level monthly payment retiring principal over
// term at annualRatePct (6.5 means 6.5%). Only the final payment is rounded.
func AmortizedPayment(principal, annualRatePct decimal.Decimal, term rate.LoanTerm) decimal.Decimal {
	n := term.Months()
	if n <= 0 {
		return decimal.Zero
	}
	if annualRatePct.IsZero() {
		return round2(principal.Div(decimal.NewFromInt(int64(n))))
	}

	monthlyRate := annualRatePct.InexactFloat64() / 100 / 12
	growth := math.Pow(1+monthlyRate, float64(n))
	payment := principal.InexactFloat64() * (monthlyRate * growth) / (growth - 1)
	return round2(decimal.NewFromFloat(payment))
}

// TotalInterest is everything paid over the term beyond the principal.
// An interest-free loan accrues none; the cents left over from rounding its
// straight-line payment are not interest.
func TotalInterest(monthlyPayment, principal, annualRatePct decimal.Decimal, term rate.LoanTerm) decimal.Decimal {
	if annualRatePct.IsZero() {
		return decimal.Zero
	}
	paid := monthlyPayment.Mul(decimal.NewFromInt(int64(term.Months())))
	return round2(paid.Sub(principal))
}
