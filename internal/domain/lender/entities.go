package lender

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("lender not found")
	ErrInvalidInput = errors.New("invalid lender input")
)

// Table: lenders
type Lender struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	LenderID  string    `gorm:"column:lender_id;type:char(32);not null;uniqueIndex:ux_lenders_lender_id"`
	Name      string    `gorm:"column:name;size:255;not null"`
	LogoURL   *string   `gorm:"column:logo_url;type:text"`
	Website   *string   `gorm:"column:website;type:text"`
	Phone     *string   `gorm:"column:phone;size:32"`
	Email     *string   `gorm:"column:email;size:255"`
	Active    bool      `gorm:"column:active;not null;index:idx_lenders_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Lender) TableName() string { return "lenders" }
