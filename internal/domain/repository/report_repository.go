package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EntityCounts totales por colección para el dashboard.
type EntityCounts struct {
	Products   int64
	Categories int64
	Brands     int64
	Conditions int64
	Sales      int64
}

// StockCounts productos con y sin existencias.
type StockCounts struct {
	InStock    int64
	OutOfStock int64
}

// SalesSummaryResult resultado crudo del resumen de ventas en un período.
// Lo produce la DB; el use case lo convierte en DTO.
type SalesSummaryResult struct {
	InvoiceCount int64
	Revenue      decimal.Decimal // Σ grand_total
	TotalCOGS    decimal.Decimal
	Profit       decimal.Decimal // Revenue - TotalCOGS
	VAT          decimal.Decimal
}

// TopProductResult producto ordenado por unidades vendidas en el período.
type TopProductResult struct {
	ProductID string
	Title     string
	SKU       string
	UnitsSold int64
	Revenue   decimal.Decimal
}

// ReportRepository define las consultas de lectura para reportes.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	GetEntityCounts(ctx context.Context) (*EntityCounts, error)
	GetStockCounts(ctx context.Context) (*StockCounts, error)
	GetSalesSummary(ctx context.Context, startDate, endDate time.Time) (*SalesSummaryResult, error)
	GetTopProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]TopProductResult, error)
}
