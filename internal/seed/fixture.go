package seed

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"mortgage-rates/internal/domain/lender"
	"mortgage-rates/internal/domain/rate"
	"mortgage-rates/pkg/id"
)

var ErrInvalidFixture = errors.New("invalid seed fixture")

// Fixture is a catalog snapshot: lenders with their rate sheets nested.
type Fixture struct {
	Lenders []LenderFixture `yaml:"lenders"`
}

type LenderFixture struct {
	// Optional. When set and already present, the lender and its rates are skipped.
	LenderID string  `yaml:"lender_id"`
	Name     string  `yaml:"name"`
	LogoURL  *string `yaml:"logo_url"`
	Website  *string `yaml:"website"`
	Phone    *string `yaml:"phone"`
	Email    *string `yaml:"email"`
	// nil means active
	Active *bool         `yaml:"active"`
	Rates  []RateFixture `yaml:"rates"`
}

// Numbers are decoded from their YAML text, so 6.125 stays exactly 6.125.
type RateFixture struct {
	LoanType              string           `yaml:"loan_type"`
	LoanTerm              int              `yaml:"loan_term"`
	InterestRate          decimal.Decimal  `yaml:"interest_rate"`
	APR                   decimal.Decimal  `yaml:"apr"`
	Points                decimal.Decimal  `yaml:"points"`
	MinCreditScore        int              `yaml:"min_credit_score"`
	MaxLoanAmount         decimal.Decimal  `yaml:"max_loan_amount"`
	MinDownPaymentPercent decimal.Decimal  `yaml:"min_down_payment_percent"`
	ClosingCosts          *decimal.Decimal `yaml:"closing_costs"`
	Active                *bool            `yaml:"active"`
}

// Load parses one YAML document and validates every entry. Unknown keys are
// rejected so typos do not silently drop a field.
func Load(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidFixture)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) Validate() error {
	if len(f.Lenders) == 0 {
		return fmt.Errorf("%w: no lenders", ErrInvalidFixture)
	}
	seen := make(map[string]bool, len(f.Lenders))
	for i, lf := range f.Lenders {
		if strings.TrimSpace(lf.Name) == "" {
			return fmt.Errorf("%w: lenders[%d]: name is required", ErrInvalidFixture, i)
		}
		if lf.LenderID != "" {
			if !id.Valid(lf.LenderID) {
				return fmt.Errorf("%w: lenders[%d]: lender_id must be 32-char lowercase hex", ErrInvalidFixture, i)
			}
			if seen[lf.LenderID] {
				return fmt.Errorf("%w: lenders[%d]: duplicate lender_id %s", ErrInvalidFixture, i, lf.LenderID)
			}
			seen[lf.LenderID] = true
		}
		for j, rf := range lf.Rates {
			rt := rf.toRate()
			if err := rt.Validate(); err != nil {
				return fmt.Errorf("%w: lenders[%d].rates[%d]: %w", ErrInvalidFixture, i, j, err)
			}
		}
	}
	return nil
}

func (lf LenderFixture) toLender() *lender.Lender {
	l := &lender.Lender{
		LenderID: lf.LenderID,
		Name:     strings.TrimSpace(lf.Name),
		LogoURL:  lf.LogoURL,
		Website:  lf.Website,
		Phone:    lf.Phone,
		Email:    lf.Email,
		Active:   lf.Active == nil || *lf.Active,
	}
	if l.LenderID == "" {
		l.LenderID = id.NewID32()
	}
	return l
}

func (rf RateFixture) toRate() *rate.Rate {
	rt := &rate.Rate{
		LoanType:              rate.LoanType(rf.LoanType),
		LoanTerm:              rate.LoanTerm(rf.LoanTerm),
		InterestRate:          rf.InterestRate.Round(3),
		APR:                   rf.APR.Round(3),
		Points:                rf.Points.Round(2),
		MinCreditScore:        rf.MinCreditScore,
		MaxLoanAmount:         rf.MaxLoanAmount.Round(2),
		MinDownPaymentPercent: rf.MinDownPaymentPercent.Round(2),
		Active:                rf.Active == nil || *rf.Active,
	}
	if rf.ClosingCosts != nil {
		rt.ClosingCosts = decimal.NewNullDecimal(rf.ClosingCosts.Round(2))
	}
	return rt
}
