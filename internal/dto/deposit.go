package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateDepositRequestDTO struct {
	Amount   decimal.Decimal `json:"amount" example:"25"`
	Currency string          `json:"currency" example:"btc"`
	Gateway  string          `json:"gateway" example:"nowpayments"`
}

type DepositResponseDTO struct {
	ID         string          `json:"id" example:"9f3b1c52-7a2e-4f6d-9a4e-2b8f0f9d1c3a"`
	Amount     decimal.Decimal `json:"amount" example:"25"`
	Currency   string          `json:"currency" example:"btc"`
	Gateway    string          `json:"gateway" example:"nowpayments"`
	PaymentID  string          `json:"payment_id" example:"4945313437"`
	Status     string          `json:"status" example:"waiting"`
	PayAddress string          `json:"pay_address,omitempty" example:"3EktnHQD7RiAE6uzMj2ZifT9YgRrkSgzQX"`
	CreatedAt  time.Time       `json:"created_at" example:"2025-12-09T16:09:57+03:00"`
	ExpiresAt  time.Time       `json:"expires_at" example:"2025-12-09T17:09:57+03:00"`
}
