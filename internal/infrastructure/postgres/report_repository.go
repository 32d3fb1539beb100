package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de lectura para el dashboard. Toda la agregación corre
// en la base; aquí solo se escanean los resultados.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetEntityCounts totales por colección en una sola consulta.
func (r *ReportRepo) GetEntityCounts(ctx context.Context) (*repository.EntityCounts, error) {
	var c repository.EntityCounts
	err := r.q.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM products),
			(SELECT count(*) FROM categories),
			(SELECT count(*) FROM brands),
			(SELECT count(*) FROM conditions),
			(SELECT count(*) FROM sales)`,
	).Scan(&c.Products, &c.Categories, &c.Brands, &c.Conditions, &c.Sales)
	if err != nil {
		return nil, fmt.Errorf("entity counts: %w", err)
	}
	return &c, nil
}

// GetStockCounts productos con y sin existencias.
func (r *ReportRepo) GetStockCounts(ctx context.Context) (*repository.StockCounts, error) {
	var c repository.StockCounts
	err := r.q.QueryRow(ctx, `
		SELECT
			count(*) FILTER (WHERE quantity > 0),
			count(*) FILTER (WHERE quantity <= 0)
		FROM products`,
	).Scan(&c.InStock, &c.OutOfStock)
	if err != nil {
		return nil, fmt.Errorf("stock counts: %w", err)
	}
	return &c, nil
}

// GetSalesSummary facturación, COGS, utilidad e IVA acumulados en el período.
func (r *ReportRepo) GetSalesSummary(ctx context.Context, startDate, endDate time.Time) (*repository.SalesSummaryResult, error) {
	var s repository.SalesSummaryResult
	err := r.q.QueryRow(ctx, `
		SELECT
			count(*),
			COALESCE(sum(grand_total), 0),
			COALESCE(sum(cogs), 0),
			COALESCE(sum(profit), 0),
			COALESCE(sum(vat), 0)
		FROM sales
		WHERE created_at >= $1 AND created_at <= $2`,
		startDate, endDate,
	).Scan(&s.InvoiceCount, &s.Revenue, &s.TotalCOGS, &s.Profit, &s.VAT)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	return &s, nil
}

// GetTopProducts productos por unidades vendidas en el período.
func (r *ReportRepo) GetTopProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]repository.TopProductResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.title, p.sku, sum(si.quantity) AS units, COALESCE(sum(si.total), 0) AS revenue
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id
		WHERE s.created_at >= $1 AND s.created_at <= $2
		GROUP BY p.id, p.title, p.sku
		ORDER BY units DESC
		LIMIT $3`,
		startDate, endDate, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var results []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.Title, &t.SKU, &t.UnitsSold, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		results = append(results, t)
	}
	return results, rows.Err()
}
