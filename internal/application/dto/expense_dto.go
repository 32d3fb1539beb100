package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRequest alta/edición de gasto.
type ExpenseRequest struct {
	CategoryID string          `json:"category_id"`
	Title      string          `json:"title" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Date       *time.Time      `json:"date"`
	Note       string          `json:"note"`
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id,omitempty"`
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ExpenseListResponse lista paginada de gastos.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
