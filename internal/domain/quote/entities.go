package quote

import (
	"errors"

	"github.com/shopspring/decimal"

	"mortgage-rates/internal/domain/rate"
)

var (
	// Derived ratios are undefined for this profile (e.g. property value <= 0).
	ErrInvalidProfile = errors.New("invalid borrower profile")
	// The catalog read failed; the underlying error stays in the chain.
	ErrCatalogUnavailable = errors.New("rate catalog unavailable")
)

type PropertyType string

const (
	PropertySingleFamily PropertyType = "single_family"
	PropertyCondo        PropertyType = "condo"
	PropertyTownhouse    PropertyType = "townhouse"
	PropertyMultiFamily  PropertyType = "multi_family"
)

type OccupancyType string

const (
	OccupancyPrimary    OccupancyType = "primary"
	OccupancySecondary  OccupancyType = "secondary"
	OccupancyInvestment OccupancyType = "investment"
)

// BorrowerProfile is the request-time input of the engine. It is never stored.
// PropertyType and OccupancyType are carried but do not restrict eligibility.
type BorrowerProfile struct {
	LoanAmount        decimal.Decimal
	PropertyValue     decimal.Decimal
	DownPayment       decimal.Decimal
	CreditScore       int
	LoanType          rate.LoanType
	LoanTerm          rate.LoanTerm
	PropertyType      PropertyType
	OccupancyType     OccupancyType
	ZipCode           string
	DebtToIncomeRatio *decimal.Decimal
}

// Quote is one priced offer for a profile. Derived per request, never persisted.
type Quote struct {
	RateID        string
	LenderID      string
	LenderName    string
	LenderLogoURL *string

	LoanType     rate.LoanType
	LoanTerm     rate.LoanTerm
	InterestRate decimal.Decimal
	APR          decimal.Decimal
	Points       decimal.Decimal

	MonthlyPayment decimal.Decimal
	TotalInterest  decimal.Decimal
	ClosingCosts   decimal.NullDecimal

	// Same value on every quote of one response
	DownPaymentPercent decimal.Decimal
	LoanToValueRatio   decimal.Decimal
}
