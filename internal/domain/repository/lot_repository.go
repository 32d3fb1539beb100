package repository

import "github.com/tu-usuario/retail-pos-api/internal/domain/entity"

// LotRepository define el puerto de persistencia del libro de lotes.
// Los lotes se crean solo en recepciones y solo las ventas decrementan
// QtyRemaining.
type LotRepository interface {
	Create(lot *entity.Lot) error
	// ListAvailableByProduct devuelve los lotes con qty_remaining > 0 ordenados
	// por received_at ascendente (orden FIFO).
	ListAvailableByProduct(productID string) ([]*entity.Lot, error)
	// ListAvailableByProductForUpdate es la variante con bloqueo de filas
	// (SELECT FOR UPDATE) para usar dentro de la transacción de una venta.
	ListAvailableByProductForUpdate(productID string) ([]*entity.Lot, error)
	ListByProduct(productID string) ([]*entity.Lot, error)
	// UpdateRemaining persiste el decremento de un lote tras asignación FIFO.
	UpdateRemaining(lotID string, qtyRemaining int64, status string) error
}
