package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago y canales de venta aceptados.
const (
	PaymentCash         = "cash"
	PaymentCard         = "card"
	PaymentBankTransfer = "bankTransfer"
	PaymentOther        = "other"

	ChannelShop      = "shop"
	ChannelWebsite   = "website"
	ChannelWarehouse = "warehouse"
	ChannelAmazon    = "amazon"
	ChannelNoon      = "noon"
	ChannelCartlow   = "cartlow"

	SaleStatusPaid   = "paid"
	SaleStatusUnpaid = "unpaid"
)

// CustomerSnapshot son los datos del cliente congelados en la venta (no es FK).
type CustomerSnapshot struct {
	Name  string
	Phone string
}

// Sale es una factura de venta. Una línea solicitada puede expandirse en varios
// SaleItem cuando el consumo FIFO toca más de un lote.
type Sale struct {
	ID            string
	InvoiceNo     string // <prefijo>-<aa><secuencia de 5 dígitos>, único
	Customer      CustomerSnapshot
	Items         []SaleItem
	SubTotal      decimal.Decimal
	Discount      decimal.Decimal
	VAT           decimal.Decimal
	Shipping      decimal.Decimal
	GrandTotal    decimal.Decimal // subTotal + vat + shipping - discount
	COGS          decimal.Decimal
	Profit        decimal.Decimal // grandTotal - COGS
	PaymentMethod string
	SellAt        string
	EmployeeID    string
	SalesNote     string
	Status        string // paid | unpaid
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaleItem es una sublínea persistida de la venta. LotID queda vacío cuando el
// costo salió del promedio ponderado del producto (sin lotes). LineNo fija el
// orden de asignación: las devoluciones direccionan la sublínea por posición,
// así que el orden de recarga debe coincidir con el de creación.
type SaleItem struct {
	ID            string
	SaleID        string
	LineNo        int
	ProductID     string
	LotID         string
	Quantity      int64
	Price         decimal.Decimal // precio de venta unitario
	PurchasePrice decimal.Decimal // base de costo unitaria (COGS)
	Total         decimal.Decimal // price × quantity
	Returnable    bool
	Refunded      bool
	RefundAmount  decimal.Decimal
}
