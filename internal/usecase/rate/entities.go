package rate

import (
	"time"
)

type CreateRateInput struct {
	LoanType              string   `json:"loan_type"`
	LoanTerm              int      `json:"loan_term"`
	InterestRate          float64  `json:"interest_rate"`
	APR                   float64  `json:"apr"`
	Points                float64  `json:"points"`
	MinCreditScore        int      `json:"min_credit_score"`
	MaxLoanAmount         float64  `json:"max_loan_amount"`
	MinDownPaymentPercent float64  `json:"min_down_payment_percent"`
	ClosingCosts          *float64 `json:"closing_costs"` // nil = not yet determined
	Active                *bool    `json:"active"`        // defaults to true
}

// UpdateRateInput: nil leaves a field untouched. ClearClosingCosts sets it
// back to "not yet determined".
type UpdateRateInput struct {
	InterestRate          *float64 `json:"interest_rate"`
	APR                   *float64 `json:"apr"`
	Points                *float64 `json:"points"`
	MinCreditScore        *int     `json:"min_credit_score"`
	MaxLoanAmount         *float64 `json:"max_loan_amount"`
	MinDownPaymentPercent *float64 `json:"min_down_payment_percent"`
	ClosingCosts          *float64 `json:"closing_costs"`
	ClearClosingCosts     bool     `json:"clear_closing_costs"`
}

type RateDTO struct {
	RateID                string    `json:"rate_id"`
	LenderID              string    `json:"lender_id"`
	LenderName            string    `json:"lender_name"`
	LoanType              string    `json:"loan_type"`
	LoanTerm              int       `json:"loan_term"`
	InterestRate          float64   `json:"interest_rate"`
	APR                   float64   `json:"apr"`
	Points                float64   `json:"points"`
	MinCreditScore        int       `json:"min_credit_score"`
	MaxLoanAmount         float64   `json:"max_loan_amount"`
	MinDownPaymentPercent float64   `json:"min_down_payment_percent"`
	ClosingCosts          *float64  `json:"closing_costs"`
	Active                bool      `json:"active"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
