package mysql

import (
	"context"
	"errors"
	"testing"

	lenderDomain "mortgage-rates/internal/domain/lender"
	rateDomain "mortgage-rates/internal/domain/rate"
	"mortgage-rates/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with the catalog schema and
// foreign keys enforced, as MySQL does.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// every pooled connection to :memory: would be a fresh, empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&lenderDomain.Lender{}, &rateDomain.Rate{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLender(name string, active bool) *lenderDomain.Lender {
	return &lenderDomain.Lender{
		LenderID: id.NewID32(),
		Name:     name,
		Active:   active,
	}
}

func TestLenderCreateAndGetByLenderID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLenderRepository(db)
	ctx := context.Background()

	logo := "https://cdn.example.com/acme.png"
	l := makeLender("Acme Mortgage", true)
	l.LogoURL = &logo
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByLenderID(ctx, l.LenderID)
	if err != nil {
		t.Fatalf("GetByLenderID: %v", err)
	}
	if got.Name != "Acme Mortgage" || !got.Active || got.LogoURL == nil || *got.LogoURL != logo {
		t.Errorf("unexpected lender: %+v", got)
	}
}

func TestLenderCreate_InactiveIsKept(t *testing.T) {
	db := openTestDB(t)
	repo := NewLenderRepository(db)
	ctx := context.Background()

	l := makeLender("Dormant Bank", false)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByLenderID(ctx, l.LenderID)
	if err != nil {
		t.Fatalf("GetByLenderID: %v", err)
	}
	if got.Active {
		t.Fatalf("inactive lender came back active")
	}
}

func TestLenderSaveUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewLenderRepository(db)
	ctx := context.Background()

	l := makeLender("Old Name", true)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	l.Name = "New Name"
	l.Active = false
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByLenderID(ctx, l.LenderID)
	if err != nil {
		t.Fatalf("GetByLenderID: %v", err)
	}
	if got.Name != "New Name" || got.Active {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestLenderGetByLenderID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLenderRepository(db)

	_, err := repo.GetByLenderID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLenderList(t *testing.T) {
	db := openTestDB(t)
	repo := NewLenderRepository(db)
	ctx := context.Background()

	for _, l := range []*lenderDomain.Lender{
		makeLender("Zeta Bank", true),
		makeLender("Alpha Credit", true),
		makeLender("Mid Savings", false),
	} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := repo.List(ctx, false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 || all[0].Name != "Alpha Credit" || all[2].Name != "Zeta Bank" {
		t.Fatalf("unexpected list order: %+v", all)
	}

	active, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("List active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("active = %d, want 2", len(active))
	}
}
