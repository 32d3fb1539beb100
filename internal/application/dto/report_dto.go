package dto

import "github.com/shopspring/decimal"

// EntityCountsResponse totales por colección.
type EntityCountsResponse struct {
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
	Brands     int64 `json:"brands"`
	Conditions int64 `json:"conditions"`
	Sales      int64 `json:"sales"`
}

// StockCountsResponse productos con y sin existencias.
type StockCountsResponse struct {
	InStock    int64 `json:"in_stock"`
	OutOfStock int64 `json:"out_of_stock"`
}

// SalesSummaryResponse resumen de ventas en un período.
type SalesSummaryResponse struct {
	From         string          `json:"from"`
	To           string          `json:"to"`
	InvoiceCount int64           `json:"invoice_count"`
	Revenue      decimal.Decimal `json:"revenue"`
	COGS         decimal.Decimal `json:"cogs"`
	Profit       decimal.Decimal `json:"profit"`
	VAT          decimal.Decimal `json:"vat"`
}

// TopProductResponse producto por unidades vendidas.
type TopProductResponse struct {
	ProductID string          `json:"product_id"`
	Title     string          `json:"title"`
	SKU       string          `json:"sku"`
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}
