package rate

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"mortgage-rates/internal/domain/lender"
)

var (
	ErrNotFound     = errors.New("rate not found")
	ErrInvalidInput = errors.New("invalid rate input")
)

type LoanType string

const (
	LoanTypeConventional LoanType = "conventional"
	LoanTypeFHA          LoanType = "fha"
	LoanTypeVA           LoanType = "va"
	LoanTypeUSDA         LoanType = "usda"
	LoanTypeJumbo        LoanType = "jumbo"
)

func (t LoanType) Valid() bool {
	switch t {
	case LoanTypeConventional, LoanTypeFHA, LoanTypeVA, LoanTypeUSDA, LoanTypeJumbo:
		return true
	}
	return false
}

// LoanTerm is the amortization term in years.
type LoanTerm int

const (
	Term15 LoanTerm = 15
	Term20 LoanTerm = 20
	Term25 LoanTerm = 25
	Term30 LoanTerm = 30
)

func (t LoanTerm) Valid() bool {
	switch t {
	case Term15, Term20, Term25, Term30:
		return true
	}
	return false
}

// Months is the number of monthly payments over the term.
func (t LoanTerm) Months() int { return int(t) * 12 }

const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

// Table: rates
type Rate struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	RateID string `gorm:"column:rate_id;type:char(32);not null;uniqueIndex:ux_rates_rate_id"`
	// FK to lenders.id (numeric). Not named LenderID: lender.Lender already
	// has a LenderID field and gorm would read the link as has-one.
	LenderRefID uint64         `gorm:"column:lender_id;not null;index:idx_rates_lender"`
	Lender      *lender.Lender `gorm:"foreignKey:LenderRefID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	LoanType              LoanType            `gorm:"column:loan_type;size:16;not null;index:idx_rates_match,priority:1"`
	LoanTerm              LoanTerm            `gorm:"column:loan_term;not null;index:idx_rates_match,priority:2"`
	InterestRate          decimal.Decimal     `gorm:"column:interest_rate;type:decimal(6,3);not null"`
	APR                   decimal.Decimal     `gorm:"column:apr;type:decimal(6,3);not null"`
	Points                decimal.Decimal     `gorm:"column:points;type:decimal(5,2);not null"`
	MinCreditScore        int                 `gorm:"column:min_credit_score;not null"`
	MaxLoanAmount         decimal.Decimal     `gorm:"column:max_loan_amount;type:decimal(14,2);not null"`
	MinDownPaymentPercent decimal.Decimal     `gorm:"column:min_down_payment_percent;type:decimal(5,2);not null"`
	ClosingCosts          decimal.NullDecimal `gorm:"column:closing_costs;type:decimal(12,2)"`
	Active                bool                `gorm:"column:active;not null"`
	CreatedAt             time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (Rate) TableName() string { return "rates" }

var maxPercent = decimal.NewFromInt(100)

// Validate enforces the rate sheet bounds. APR >= interest rate is the usual
// convention but lenders do publish otherwise, so it is not checked.
func (r *Rate) Validate() error {
	invalid := func(msg string) error { return fmt.Errorf("%w: %s", ErrInvalidInput, msg) }
	switch {
	case !r.LoanType.Valid():
		return invalid("unknown loan_type " + string(r.LoanType))
	case !r.LoanTerm.Valid():
		return invalid(fmt.Sprintf("unsupported loan_term %d", r.LoanTerm))
	case r.MinCreditScore < MinCreditScore || r.MinCreditScore > MaxCreditScore:
		return invalid("min_credit_score must be within 300-850")
	case r.InterestRate.IsNegative(), r.APR.IsNegative(), r.Points.IsNegative():
		return invalid("pricing must not be negative")
	case !r.MaxLoanAmount.IsPositive():
		return invalid("max_loan_amount must be positive")
	case r.MinDownPaymentPercent.IsNegative() || r.MinDownPaymentPercent.GreaterThan(maxPercent):
		return invalid("min_down_payment_percent must be within 0-100")
	case r.ClosingCosts.Valid && r.ClosingCosts.Decimal.IsNegative():
		return invalid("closing_costs must not be negative")
	}
	return nil
}
