package entity

import "time"

// Vendor es el proveedor de órdenes de compra y recepciones.
type Vendor struct {
	ID          string
	Name        string
	CompanyName string
	Email       string
	Phone       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
