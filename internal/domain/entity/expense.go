package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory clasifica gastos.
type ExpenseCategory struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expense es un gasto operativo registrado.
type Expense struct {
	ID         string
	CategoryID string
	Title      string
	Amount     decimal.Decimal
	Date       time.Time
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
