package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseRequestDTO struct {
	ProductID string `json:"product_id" example:"outlook-fresh"`
	Quantity  int    `json:"quantity" example:"3"`
}

type PurchaseResponseDTO struct {
	ID          string          `json:"id" example:"c1a6de0e-5b1f-4f7e-8e46-1d2a3b4c5d6e"`
	ProductID   string          `json:"product_id" example:"outlook-fresh"`
	ProductName string          `json:"product_name" example:"Outlook (fresh)"`
	Quantity    int             `json:"quantity" example:"3"`
	Total       decimal.Decimal `json:"total" example:"4.5"`
	Credentials json.RawMessage `json:"credentials"`
	CreatedAt   time.Time       `json:"created_at" example:"2025-12-09T16:09:57+03:00"`
}

type ProductResponseDTO struct {
	ID        string          `json:"id" example:"outlook-fresh"`
	Name      string          `json:"name" example:"Outlook (fresh)"`
	Price     decimal.Decimal `json:"price" example:"1.5"`
	Available int             `json:"available" example:"120"`
}
