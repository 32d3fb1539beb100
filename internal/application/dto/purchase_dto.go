package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest línea de una orden de compra.
type PurchaseOrderItemRequest struct {
	Title         string          `json:"title"`
	ASIN          string          `json:"asin"`
	OrderedQty    int64           `json:"ordered_qty" validate:"required,gt=0"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
type CreatePurchaseOrderRequest struct {
	VendorID         string                     `json:"vendor_id" validate:"required"`
	Items            []PurchaseOrderItemRequest `json:"items" validate:"required,min=1"`
	ExpectedDelivery *time.Time                 `json:"expected_delivery"`
	Notes            string                     `json:"notes"`
}

// PurchaseOrderItemResponse línea con avance de recepción.
type PurchaseOrderItemResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	ASIN          string          `json:"asin"`
	OrderedQty    int64           `json:"ordered_qty"`
	ReceivedQty   int64           `json:"received_qty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
}

// PurchaseOrderResponse orden con sus líneas.
type PurchaseOrderResponse struct {
	ID               string                      `json:"id"`
	OrderNo          string                      `json:"order_no"`
	VendorID         string                      `json:"vendor_id"`
	Items            []PurchaseOrderItemResponse `json:"items"`
	OrderDate        time.Time                   `json:"order_date"`
	ExpectedDelivery *time.Time                  `json:"expected_delivery,omitempty"`
	Status           string                      `json:"status"`
	Notes            string                      `json:"notes,omitempty"`
	TotalAmount      decimal.Decimal             `json:"total_amount"`
}

// PurchaseOrderListResponse lista paginada de órdenes.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// ReceiveItemRequest línea de recepción. ItemID referencia la línea de la PO.
// Brand y Condition aceptan un id o un nombre a resolver.
type ReceiveItemRequest struct {
	ItemID        string          `json:"item_id"`
	Title         string          `json:"title"`
	ASIN          string          `json:"asin"`
	Brand         string          `json:"brand"`
	Condition     string          `json:"condition"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	OrderedQty    int64           `json:"ordered_qty"`
	ReceivedQty   int64           `json:"received_qty"`
	Status        string          `json:"status"`
}

// CreateReceiveRequest body para POST /api/purchase-receives.
type CreateReceiveRequest struct {
	PurchaseOrderID string               `json:"purchase_order_id" validate:"required"`
	VendorID        string               `json:"vendor_id" validate:"required"`
	Items           []ReceiveItemRequest `json:"items" validate:"required,min=1"`
	ReceiveDate     *time.Time           `json:"receive_date"`
	Notes           string               `json:"notes"`
}

// ReceiveItemResponse línea procesada, resuelta a un producto.
type ReceiveItemResponse struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"item_id,omitempty"`
	ProductID     string          `json:"product_id"`
	Title         string          `json:"title"`
	ASIN          string          `json:"asin"`
	BrandID       string          `json:"brand_id,omitempty"`
	ConditionID   string          `json:"condition_id,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	OrderedQty    int64           `json:"ordered_qty"`
	ReceivedQty   int64           `json:"received_qty"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
}

// PurchaseReceiveResponse recepción con sus líneas y la orden actualizada.
type PurchaseReceiveResponse struct {
	ID              string                `json:"id"`
	ReceiveNo       string                `json:"receive_no"`
	PurchaseOrderID string                `json:"purchase_order_id"`
	VendorID        string                `json:"vendor_id"`
	Items           []ReceiveItemResponse `json:"items"`
	ReceiveDate     time.Time             `json:"receive_date"`
	Status          string                `json:"status"`
	Notes           string                `json:"notes,omitempty"`
	TotalAmount     decimal.Decimal       `json:"total_amount"`
}

// PurchaseReceiveListResponse lista paginada de recepciones.
type PurchaseReceiveListResponse struct {
	Items []PurchaseReceiveResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}
