package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillItemRequest línea de factura de proveedor.
type BillItemRequest struct {
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateBillRequest body para POST /api/bills.
type CreateBillRequest struct {
	VendorID        string            `json:"vendor_id" validate:"required"`
	PurchaseOrderID string            `json:"purchase_order_id"`
	BillDate        *time.Time        `json:"bill_date"`
	DueDate         *time.Time        `json:"due_date"`
	Items           []BillItemRequest `json:"items" validate:"required,min=1"`
	Tax             decimal.Decimal   `json:"tax"`
	PaidAmount      decimal.Decimal   `json:"paid_amount"`
	Notes           string            `json:"notes"`
}

// UpdateBillRequest edición documental: vencimiento, abonos y notas.
// El estado se deriva de lo pagado, nunca se fija a mano.
type UpdateBillRequest struct {
	DueDate    *time.Time       `json:"due_date"`
	PaidAmount *decimal.Decimal `json:"paid_amount"`
	Notes      *string          `json:"notes"`
}

// BillItemResponse línea en respuestas.
type BillItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	Description string          `json:"description,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// BillResponse factura de proveedor con detalle.
type BillResponse struct {
	ID              string             `json:"id"`
	VendorID        string             `json:"vendor_id"`
	PurchaseOrderID string             `json:"purchase_order_id,omitempty"`
	BillDate        time.Time          `json:"bill_date"`
	DueDate         *time.Time         `json:"due_date,omitempty"`
	Items           []BillItemResponse `json:"items"`
	SubTotal        decimal.Decimal    `json:"sub_total"`
	Tax             decimal.Decimal    `json:"tax"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	PaidAmount      decimal.Decimal    `json:"paid_amount"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// BillListResponse lista paginada de facturas de proveedor.
type BillListResponse struct {
	Items []BillResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
