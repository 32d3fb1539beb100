package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// ReportUseCase consultas de lectura para el dashboard: conteos, resumen de
// ventas y productos más vendidos. Toda la agregación la hace la base.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// EntityCounts totales por colección.
func (uc *ReportUseCase) EntityCounts(ctx context.Context) (*dto.EntityCountsResponse, error) {
	counts, err := uc.reportRepo.GetEntityCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EntityCountsResponse{
		Products:   counts.Products,
		Categories: counts.Categories,
		Brands:     counts.Brands,
		Conditions: counts.Conditions,
		Sales:      counts.Sales,
	}, nil
}

// StockCounts productos con y sin existencias.
func (uc *ReportUseCase) StockCounts(ctx context.Context) (*dto.StockCountsResponse, error) {
	counts, err := uc.reportRepo.GetStockCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StockCountsResponse{InStock: counts.InStock, OutOfStock: counts.OutOfStock}, nil
}

// SalesSummary resumen de facturación en [from, to].
func (uc *ReportUseCase) SalesSummary(ctx context.Context, from, to time.Time) (*dto.SalesSummaryResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	summary, err := uc.reportRepo.GetSalesSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.SalesSummaryResponse{
		From:         from.Format("2006-01-02"),
		To:           to.Format("2006-01-02"),
		InvoiceCount: summary.InvoiceCount,
		Revenue:      summary.Revenue,
		COGS:         summary.TotalCOGS,
		Profit:       summary.Profit,
		VAT:          summary.VAT,
	}, nil
}

// TopProducts productos por unidades vendidas en [from, to].
func (uc *ReportUseCase) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]dto.TopProductResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	results, err := uc.reportRepo.GetTopProducts(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TopProductResponse, 0, len(results))
	for _, r := range results {
		resp = append(resp, dto.TopProductResponse{
			ProductID: r.ProductID,
			Title:     r.Title,
			SKU:       r.SKU,
			UnitsSold: r.UnitsSold,
			Revenue:   r.Revenue,
		})
	}
	return resp, nil
}
