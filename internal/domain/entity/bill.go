package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una factura de proveedor.
const (
	BillStatusUnpaid  = "unpaid"
	BillStatusPartial = "partial"
	BillStatusPaid    = "paid"
)

// Bill es una factura de proveedor (cuentas por pagar), opcionalmente ligada
// a la orden de compra que la originó. Es documental: no mueve stock ni lotes.
type Bill struct {
	ID              string
	VendorID        string
	PurchaseOrderID string
	BillDate        time.Time
	DueDate         *time.Time
	Items           []BillItem
	SubTotal        decimal.Decimal
	Tax             decimal.Decimal
	TotalAmount     decimal.Decimal // subTotal + tax
	PaidAmount      decimal.Decimal
	Status          string // unpaid | partial | paid
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BillItem es una línea de la factura de proveedor.
type BillItem struct {
	ID          string
	BillID      string
	ProductID   string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal // unitPrice × quantity
}

// DeriveStatus recalcula el estado de pago a partir de lo abonado.
func (b *Bill) DeriveStatus() {
	switch {
	case b.TotalAmount.IsPositive() && b.PaidAmount.GreaterThanOrEqual(b.TotalAmount):
		b.Status = BillStatusPaid
	case b.PaidAmount.IsPositive():
		b.Status = BillStatusPartial
	default:
		b.Status = BillStatusUnpaid
	}
}
