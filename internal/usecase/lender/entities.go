package lender

import (
	"time"
)

type CreateLenderInput struct {
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url"`
	Website *string `json:"website"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Active  *bool   `json:"active"` // defaults to true
}

// UpdateLenderInput: nil leaves a field untouched, "" clears an optional one.
type UpdateLenderInput struct {
	Name    *string `json:"name"`
	LogoURL *string `json:"logo_url"`
	Website *string `json:"website"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

type LenderDTO struct {
	LenderID  string    `json:"lender_id"`
	Name      string    `json:"name"`
	LogoURL   *string   `json:"logo_url"`
	Website   *string   `json:"website"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
