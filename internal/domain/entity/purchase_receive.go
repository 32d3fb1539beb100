package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados por línea de una recepción (los asigna el llamador, no el motor).
const (
	ReceiveItemApproved     = "approved"
	ReceiveItemPartial      = "partial"
	ReceiveItemMissing      = "missing"
	ReceiveItemExtra        = "extra"
	ReceiveItemPriceChanged = "priceChanged"
	ReceiveItemWrongItem    = "wrongItem"
)

// PurchaseReceive es un evento de entrega contra una orden de compra,
// numerado PR-<secuencial>. Su Status refleja el estado de la orden tras
// aplicar la recepción.
type PurchaseReceive struct {
	ID              string
	ReceiveNo       string
	PurchaseOrderID string
	VendorID        string
	Items           []PurchaseReceiveItem
	ReceiveDate     time.Time
	Status          string // partially | completed (espejo de la PO)
	Notes           string
	TotalAmount     decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PurchaseReceiveItem es una línea procesada, resuelta a un producto concreto.
// ItemID referencia la línea de la orden de compra para la conciliación.
type PurchaseReceiveItem struct {
	ID            string
	ItemID        string // id de la línea de la PO
	ProductID     string
	Title         string
	ASIN          string
	BrandID       string
	ConditionID   string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	OrderedQty    int64
	ReceivedQty   int64
	Total         decimal.Decimal
	Status        string
}
