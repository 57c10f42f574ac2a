package rate

import (
	"context"
	"errors"
	"testing"

	domainLender "mortgage-rates/internal/domain/lender"
	domainRate "mortgage-rates/internal/domain/rate"
	"mortgage-rates/internal/domain/uow"
	"mortgage-rates/internal/testutil/lendermock"
	"mortgage-rates/internal/testutil/ratemock"
	"mortgage-rates/internal/testutil/uowmock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func f64(v float64) *float64 { return &v }

func validInput() CreateRateInput {
	return CreateRateInput{
		LoanType:              "conventional",
		LoanTerm:              30,
		InterestRate:          6.125,
		APR:                   6.311,
		Points:                0.5,
		MinCreditScore:        700,
		MaxLoanAmount:         766550,
		MinDownPaymentPercent: 5,
	}
}

func bank() *domainLender.Lender {
	return &domainLender.Lender{ID: 42, LenderID: "llllllllllllllllllllllllllllllll", Name: "Acme", Active: true}
}

func newUsecase(lenders *lendermock.Repo, rates *ratemock.Repo) *Usecase {
	return NewUsecase(rates, lenders, uowmock.Passthrough(uow.Repos{Lenders: lenders, Rates: rates}))
}

func TestCreate_Success(t *testing.T) {
	var created *domainRate.Rate
	lenders := &lendermock.Repo{
		GetByLenderIDForUpdateFn: func(ctx context.Context, lenderID string) (*domainLender.Lender, error) {
			return bank(), nil
		},
	}
	rates := &ratemock.Repo{
		CreateFn: func(ctx context.Context, r *domainRate.Rate) error {
			created = r
			return nil
		},
	}

	in := validInput()
	in.ClosingCosts = f64(4100.5)
	dto, err := newUsecase(lenders, rates).Create(context.Background(), bank().LenderID, in)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if created == nil || created.LenderRefID != 42 {
		t.Fatalf("rate not bound to lender numeric id: %+v", created)
	}
	if !created.InterestRate.Equal(decimal.RequireFromString("6.125")) {
		t.Fatalf("interest rate = %s", created.InterestRate)
	}
	if !created.ClosingCosts.Valid || !created.ClosingCosts.Decimal.Equal(decimal.RequireFromString("4100.50")) {
		t.Fatalf("closing costs = %+v", created.ClosingCosts)
	}
	if len(dto.RateID) != 32 || dto.LenderID != bank().LenderID || dto.LenderName != "Acme" || !dto.Active {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if dto.ClosingCosts == nil || *dto.ClosingCosts != 4100.5 {
		t.Fatalf("dto closing costs = %v", dto.ClosingCosts)
	}
}

func TestCreate_LenderNotFound(t *testing.T) {
	lenders := &lendermock.Repo{
		GetByLenderIDForUpdateFn: func(ctx context.Context, lenderID string) (*domainLender.Lender, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	rates := &ratemock.Repo{
		CreateFn: func(ctx context.Context, r *domainRate.Rate) error {
			t.Fatalf("Create must not be called without a lender")
			return nil
		},
	}
	_, err := newUsecase(lenders, rates).Create(context.Background(), "missing", validInput())
	if !errors.Is(err, domainLender.ErrNotFound) {
		t.Fatalf("want lender.ErrNotFound, got %v", err)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	cases := map[string]func(in *CreateRateInput){
		"loan type":     func(in *CreateRateInput) { in.LoanType = "balloon" },
		"loan term":     func(in *CreateRateInput) { in.LoanTerm = 40 },
		"credit low":    func(in *CreateRateInput) { in.MinCreditScore = 299 },
		"credit high":   func(in *CreateRateInput) { in.MinCreditScore = 851 },
		"negative apr":  func(in *CreateRateInput) { in.APR = -0.1 },
		"zero max loan": func(in *CreateRateInput) { in.MaxLoanAmount = 0 },
		"down over 100": func(in *CreateRateInput) { in.MinDownPaymentPercent = 100.01 },
		"neg closing":   func(in *CreateRateInput) { in.ClosingCosts = f64(-1) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			uc := NewUsecase(&ratemock.Repo{}, &lendermock.Repo{}, &uowmock.UoW{}) // uow never reached
			_, err := uc.Create(context.Background(), "L", in)
			if !errors.Is(err, domainRate.ErrInvalidInput) {
				t.Fatalf("want ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreate_APRBelowRateIsAccepted(t *testing.T) {
	lenders := &lendermock.Repo{
		GetByLenderIDForUpdateFn: func(ctx context.Context, lenderID string) (*domainLender.Lender, error) { return bank(), nil },
	}
	in := validInput()
	in.APR = 5.9
	if _, err := newUsecase(lenders, &ratemock.Repo{}).Create(context.Background(), "L", in); err != nil {
		t.Fatalf("Create err: %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	rates := &ratemock.Repo{
		GetByRateIDFn: func(ctx context.Context, rateID string) (*domainRate.Rate, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	_, err := newUsecase(&lendermock.Repo{}, rates).Get(context.Background(), "nope")
	if !errors.Is(err, domainRate.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListByLender(t *testing.T) {
	lenders := &lendermock.Repo{
		GetByLenderIDFn: func(ctx context.Context, lenderID string) (*domainLender.Lender, error) { return bank(), nil },
	}
	rates := &ratemock.Repo{
		ListByLenderFn: func(ctx context.Context, lenderNumericID uint64) ([]domainRate.Rate, error) {
			if lenderNumericID != 42 {
				t.Fatalf("lender numeric id = %d, want 42", lenderNumericID)
			}
			return []domainRate.Rate{
				{RateID: "r1", LoanType: domainRate.LoanTypeFHA, LoanTerm: domainRate.Term15, APR: decimal.RequireFromString("5.5")},
				{RateID: "r2", LoanType: domainRate.LoanTypeVA, LoanTerm: domainRate.Term30, APR: decimal.RequireFromString("6")},
			}, nil
		},
	}
	out, err := newUsecase(lenders, rates).ListByLender(context.Background(), bank().LenderID)
	if err != nil {
		t.Fatalf("ListByLender err: %v", err)
	}
	if len(out) != 2 || out[0].RateID != "r1" || out[1].APR != 6 {
		t.Fatalf("unexpected list: %+v", out)
	}
	if out[0].LenderID != bank().LenderID {
		t.Fatalf("lender id not filled: %+v", out[0])
	}
}

func TestListByLender_LenderNotFound(t *testing.T) {
	lenders := &lendermock.Repo{
		GetByLenderIDFn: func(ctx context.Context, lenderID string) (*domainLender.Lender, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	_, err := newUsecase(lenders, &ratemock.Repo{}).ListByLender(context.Background(), "x")
	if !errors.Is(err, domainLender.ErrNotFound) {
		t.Fatalf("want lender.ErrNotFound, got %v", err)
	}
}

func existingRate() *domainRate.Rate {
	return &domainRate.Rate{
		ID:                    7,
		RateID:                "rrrrrrrrrrrrrrrrrrrrrrrrrrrrrrrr",
		LenderRefID:           42,
		Lender:                bank(),
		LoanType:              domainRate.LoanTypeJumbo,
		LoanTerm:              domainRate.Term30,
		InterestRate:          decimal.RequireFromString("6.5"),
		APR:                   decimal.RequireFromString("6.6"),
		Points:                decimal.Zero,
		MinCreditScore:        720,
		MaxLoanAmount:         decimal.RequireFromString("2000000"),
		MinDownPaymentPercent: decimal.RequireFromString("20"),
		ClosingCosts:          decimal.NewNullDecimal(decimal.RequireFromString("9000")),
		Active:                true,
	}
}

func TestUpdate_PartialPricing(t *testing.T) {
	var saved *domainRate.Rate
	rates := &ratemock.Repo{
		GetByRateIDFn: func(ctx context.Context, rateID string) (*domainRate.Rate, error) { return existingRate(), nil },
		SaveFn: func(ctx context.Context, r *domainRate.Rate) error {
			saved = r
			return nil
		},
	}
	score := 740
	dto, err := newUsecase(&lendermock.Repo{}, rates).Update(context.Background(), "r", UpdateRateInput{
		APR:               f64(6.75),
		MinCreditScore:    &score,
		ClearClosingCosts: true,
	})
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if !saved.APR.Equal(decimal.RequireFromString("6.75")) || saved.MinCreditScore != 740 {
		t.Fatalf("update not applied: %+v", saved)
	}
	if !saved.InterestRate.Equal(decimal.RequireFromString("6.5")) {
		t.Fatalf("untouched field changed: %s", saved.InterestRate)
	}
	if saved.ClosingCosts.Valid || dto.ClosingCosts != nil {
		t.Fatalf("closing costs should be cleared")
	}
}

func TestUpdate_InvalidResultIsNotSaved(t *testing.T) {
	rates := &ratemock.Repo{
		GetByRateIDFn: func(ctx context.Context, rateID string) (*domainRate.Rate, error) { return existingRate(), nil },
		SaveFn: func(ctx context.Context, r *domainRate.Rate) error {
			t.Fatalf("Save must not be called")
			return nil
		},
	}
	score := 900
	_, err := newUsecase(&lendermock.Repo{}, rates).Update(context.Background(), "r", UpdateRateInput{MinCreditScore: &score})
	if !errors.Is(err, domainRate.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	rates := &ratemock.Repo{
		GetByRateIDFn: func(ctx context.Context, rateID string) (*domainRate.Rate, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	_, err := newUsecase(&lendermock.Repo{}, rates).Update(context.Background(), "r", UpdateRateInput{APR: f64(6)})
	if !errors.Is(err, domainRate.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSetActive(t *testing.T) {
	saves := 0
	rates := &ratemock.Repo{
		GetByRateIDFn: func(ctx context.Context, rateID string) (*domainRate.Rate, error) { return existingRate(), nil },
		SaveFn: func(ctx context.Context, r *domainRate.Rate) error {
			saves++
			if r.Active {
				t.Fatalf("saved rate still active")
			}
			return nil
		},
	}
	dto, err := newUsecase(&lendermock.Repo{}, rates).SetActive(context.Background(), "r", false)
	if err != nil {
		t.Fatalf("SetActive err: %v", err)
	}
	if dto.Active || saves != 1 {
		t.Fatalf("active=%v saves=%d", dto.Active, saves)
	}
}
