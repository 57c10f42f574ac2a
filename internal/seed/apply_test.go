package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"

	"mortgage-rates/internal/adapter/repository/mysql"
	"mortgage-rates/internal/domain/lender"
	"mortgage-rates/internal/domain/rate"
	"mortgage-rates/internal/domain/uow"
	"mortgage-rates/internal/infrastructure/db"
	"mortgage-rates/internal/testutil/lendermock"
	"mortgage-rates/internal/testutil/ratemock"
	"mortgage-rates/internal/testutil/uowmock"
)

func loadSample(t *testing.T) *Fixture {
	t.Helper()
	f, err := Load(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return f
}

func TestApply_SQLite(t *testing.T) {
	gdb, err := db.OpenGormWithDialector(sqlite.Open(":memory:"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := gdb.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	tx := mysql.NewGormUoW(gdb)
	sum, err := Apply(ctx, tx, loadSample(t), nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if sum.LendersCreated != 2 || sum.RatesCreated != 3 || sum.LendersSkipped != 0 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	// only the active lender's active rates reach the catalog
	catalog := mysql.NewCatalogRepository(gdb)
	rates, err := catalog.ListActiveRates(ctx)
	if err != nil {
		t.Fatalf("ListActiveRates: %v", err)
	}
	if len(rates) != 2 {
		t.Fatalf("active rates = %d, want 2", len(rates))
	}

	// second run skips the lender with a fixed id, creates the other again
	sum, err = Apply(ctx, tx, loadSample(t), nil)
	if err != nil {
		t.Fatalf("Apply again: %v", err)
	}
	if sum.LendersSkipped != 1 || sum.LendersCreated != 1 || sum.RatesCreated != 1 {
		t.Fatalf("unexpected second summary: %+v", sum)
	}
}

func TestApply_RollsBackOnError(t *testing.T) {
	boom := errors.New("insert failed")
	lenders := &lendermock.Repo{
		GetByLenderIDFn: func(ctx context.Context, lenderID string) (*lender.Lender, error) {
			return nil, context.Canceled
		},
	}
	rates := &ratemock.Repo{
		CreateFn: func(ctx context.Context, r *rate.Rate) error { return boom },
	}
	f := loadSample(t)
	f.Lenders[0].LenderID = ""

	sum, err := Apply(context.Background(), uowmock.Passthrough(uow.Repos{Lenders: lenders, Rates: rates}), f, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("want %v, got %v", boom, err)
	}
	if sum != (Summary{}) {
		t.Fatalf("summary should be empty on failure: %+v", sum)
	}
}

func TestApply_LookupErrorAborts(t *testing.T) {
	lenders := &lendermock.Repo{
		GetByLenderIDFn: func(ctx context.Context, lenderID string) (*lender.Lender, error) {
			return nil, context.DeadlineExceeded
		},
	}
	_, err := Apply(context.Background(), uowmock.Passthrough(uow.Repos{Lenders: lenders, Rates: &ratemock.Repo{}}), loadSample(t), nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want deadline error, got %v", err)
	}
}
