package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerSnapshotDTO datos del cliente congelados en la venta.
type CustomerSnapshotDTO struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
}

// SaleLineRequest línea solicitada: producto, cantidad y precio de venta.
type SaleLineRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	Customer      CustomerSnapshotDTO `json:"customer"`
	Items         []SaleLineRequest   `json:"items"`
	Discount      decimal.Decimal     `json:"discount"`
	Shipping      decimal.Decimal     `json:"shipping"`
	PaymentMethod string              `json:"payment_method"`
	SellAt        string              `json:"sell_at"`
	EmployeeID    string              `json:"employee_id"`
	SalesNote     string              `json:"sales_note"`
	Status        string              `json:"status"`
}

// UpdateSaleRequest edición de cabecera: recalcula solo el grandTotal,
// nunca COGS ni profit.
type UpdateSaleRequest struct {
	Discount      *decimal.Decimal `json:"discount"`
	Shipping      *decimal.Decimal `json:"shipping"`
	VAT           *decimal.Decimal `json:"vat"`
	PaymentMethod *string          `json:"payment_method"`
	SellAt        *string          `json:"sell_at"`
	SalesNote     *string          `json:"sales_note"`
	Status        *string          `json:"status"`
}

// RefundRequest body para POST /api/sales/:id/refund.
// RefundAmount en nil usa refundQty × precio unitario de la línea.
type RefundRequest struct {
	ItemIndex    int              `json:"item_index"`
	RefundQty    int64            `json:"refund_qty" validate:"required,gt=0"`
	RefundAmount *decimal.Decimal `json:"refund_amount"`
}

// SaleItemResponse sublínea persistida (una por lote tocado). LineNo es la
// posición estable que usa el endpoint de devolución como item_index.
type SaleItemResponse struct {
	ID            string          `json:"id"`
	LineNo        int             `json:"line_no"`
	ProductID     string          `json:"product_id"`
	LotID         string          `json:"lot_id,omitempty"`
	Quantity      int64           `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Total         decimal.Decimal `json:"total"`
	Returnable    bool            `json:"returnable"`
	Refunded      bool            `json:"refunded"`
	RefundAmount  decimal.Decimal `json:"refund_amount"`
}

// SaleResponse venta con detalle.
type SaleResponse struct {
	ID            string              `json:"id"`
	InvoiceNo     string              `json:"invoice_no"`
	Customer      CustomerSnapshotDTO `json:"customer"`
	Items         []SaleItemResponse  `json:"items"`
	SubTotal      decimal.Decimal     `json:"sub_total"`
	Discount      decimal.Decimal     `json:"discount"`
	VAT           decimal.Decimal     `json:"vat"`
	Shipping      decimal.Decimal     `json:"shipping"`
	GrandTotal    decimal.Decimal     `json:"grand_total"`
	COGS          decimal.Decimal     `json:"cogs"`
	Profit        decimal.Decimal     `json:"profit"`
	PaymentMethod string              `json:"payment_method"`
	SellAt        string              `json:"sell_at"`
	EmployeeID    string              `json:"employee_id"`
	SalesNote     string              `json:"sales_note,omitempty"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
