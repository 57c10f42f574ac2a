package quote

import "github.com/shopspring/decimal"

type ComputeQuotesInput struct {
	LoanAmount        float64  `json:"loan_amount"`
	PropertyValue     float64  `json:"property_value"`
	DownPayment       float64  `json:"down_payment"`
	CreditScore       int      `json:"credit_score"`
	LoanType          string   `json:"loan_type"`
	LoanTerm          int      `json:"loan_term"`
	PropertyType      string   `json:"property_type"`
	OccupancyType     string   `json:"occupancy_type"`
	ZipCode           string   `json:"zip_code"`
	DebtToIncomeRatio *float64 `json:"debt_to_income_ratio,omitempty"`
}

type QuoteDTO struct {
	RateID             string   `json:"rate_id"`
	LenderID           string   `json:"lender_id"`
	LenderName         string   `json:"lender_name"`
	LenderLogoURL      *string  `json:"lender_logo_url"`
	LoanType           string   `json:"loan_type"`
	LoanTerm           int      `json:"loan_term"`
	InterestRate       float64  `json:"interest_rate"`
	APR                float64  `json:"apr"`
	Points             float64  `json:"points"`
	MonthlyPayment     float64  `json:"monthly_payment"`
	TotalInterest      float64  `json:"total_interest"`
	ClosingCosts       *float64 `json:"closing_costs"`
	DownPaymentPercent float64  `json:"down_payment_percent"`
	LoanToValueRatio   float64  `json:"loan_to_value_ratio"`
}

type QuotesDTO struct {
	Quotes []QuoteDTO `json:"quotes"`
	Count  int        `json:"count"`
}

// decimal2 converts a boundary float (already validated to 2 places).
func decimal2(f float64) decimal.Decimal { return decimal.NewFromFloat(f).Round(2) }
