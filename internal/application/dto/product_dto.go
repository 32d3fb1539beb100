package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para alta manual de producto (SKU provisto).
type CreateProductRequest struct {
	Title         string          `json:"title" validate:"required,min=1,max=200"`
	SKU           string          `json:"sku" validate:"required,min=1,max=100"`
	ASIN          string          `json:"asin"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Quantity      int64           `json:"quantity"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Description   string          `json:"description"`
	ModelNo       string          `json:"model_no"`
	CategoryID    string          `json:"category_id"`
	SubcategoryID string          `json:"subcategory_id"`
	BrandID       string          `json:"brand_id"`
	ConditionID   string          `json:"condition_id"`
	VendorID      string          `json:"vendor_id"`
	Returnable    *bool           `json:"returnable"`
	Image         string          `json:"image"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Quantity y TotalCost no se tocan aquí: los maneja el motor de ventas/recepciones.
type UpdateProductRequest struct {
	Title         *string          `json:"title"`
	ASIN          *string          `json:"asin"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	Description   *string          `json:"description"`
	ModelNo       *string          `json:"model_no"`
	CategoryID    *string          `json:"category_id"`
	SubcategoryID *string          `json:"subcategory_id"`
	BrandID       *string          `json:"brand_id"`
	ConditionID   *string          `json:"condition_id"`
	Returnable    *bool            `json:"returnable"`
	Image         *string          `json:"image"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	SKU           string          `json:"sku"`
	ASIN          string          `json:"asin"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Quantity      int64           `json:"quantity"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Description   string          `json:"description,omitempty"`
	ModelNo       string          `json:"model_no,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	SubcategoryID string          `json:"subcategory_id,omitempty"`
	BrandID       string          `json:"brand_id,omitempty"`
	ConditionID   string          `json:"condition_id,omitempty"`
	VendorID      string          `json:"vendor_id,omitempty"`
	Returnable    bool            `json:"returnable"`
	QRCode        string          `json:"qr_code,omitempty"`
	Image         string          `json:"image,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// LotResponse lote de un producto (libro de lotes).
type LotResponse struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	PurchaseReceiveID string          `json:"purchase_receive_id"`
	PurchaseOrderID   string          `json:"purchase_order_id,omitempty"`
	VendorID          string          `json:"vendor_id,omitempty"`
	QtyReceived       int64           `json:"qty_received"`
	QtyRemaining      int64           `json:"qty_remaining"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	ReceivedAt        time.Time       `json:"received_at"`
	Status            string          `json:"status"`
}
