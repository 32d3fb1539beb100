package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/retail-pos-api/internal/application/procurement"
	"github.com/tu-usuario/retail-pos-api/internal/application/sales"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner and procurement.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ procurement.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSale inicia una transacción con los repos que necesita una venta
// (productos, lotes, contador de facturas) y hace Commit o Rollback.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	counterRepo repository.CounterRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewSaleRepository(tx),
		NewProductRepository(tx),
		NewLotRepository(tx),
		NewCounterRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRefund inicia una transacción para devoluciones y borrado de ventas.
func (r *TxRunner) RunRefund(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSaleRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReceive inicia una transacción para la conciliación de una recepción.
func (r *TxRunner) RunReceive(ctx context.Context, fn func(
	receiveRepo repository.PurchaseReceiveRepository,
	orderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	counterRepo repository.CounterRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewPurchaseReceiveRepository(tx),
		NewPurchaseOrderRepository(tx),
		NewProductRepository(tx),
		NewLotRepository(tx),
		NewCounterRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
