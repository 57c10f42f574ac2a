package db

import (
	"fmt"

	"mortgage-rates/internal/domain/lender"
	"mortgage-rates/internal/domain/rate"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the catalog tables. Lenders go first so the
// rates foreign key has a target.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&lender.Lender{}, &rate.Rate{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
