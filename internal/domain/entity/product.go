package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo vendible identificado por SKU único.
// Quantity es el stock agregado; TotalCost es el valor de los lotes restantes
// y se usa para costo promedio ponderado cuando el producto no tiene lotes.
type Product struct {
	ID            string
	Title         string
	SKU           string // único; manual o sintetizado <prefijo>-<asin>-<condición>
	ASIN          string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Quantity      int64           // invariante: >= 0
	TotalCost     decimal.Decimal // Σ qty_remaining × unit_cost de sus lotes
	Description   string
	ModelNo       string
	CategoryID    string
	SubcategoryID string
	BrandID       string
	ConditionID   string
	VendorID      string
	Returnable    bool
	QRCode        string // data URL PNG del SKU
	Image         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
