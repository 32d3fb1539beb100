package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee es el vendedor referenciado por cada venta.
type Employee struct {
	ID        string
	Name      string
	Role      string
	Phone     string
	Email     string
	Salary    decimal.Decimal
	Status    string // active | inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
