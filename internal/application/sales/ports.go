package sales

import (
	"context"

	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que una venta (asignación FIFO,
// decremento de lotes y de stock, numeración y persistencia) se confirma o
// revierte completa: todo-o-nada.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		counterRepo repository.CounterRepository,
	) error) error

	RunRefund(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}
