package procurement

import (
	"context"

	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// TxRunner ejecuta la conciliación de una recepción dentro de una transacción:
// upsert de productos, alta de lotes, actualización de la orden y alta de la
// recepción se confirman o revierten juntas. Las líneas inválidas se saltan
// dentro de la transacción (política best-effort por línea, commit estricto).
type TxRunner interface {
	RunReceive(ctx context.Context, fn func(
		receiveRepo repository.PurchaseReceiveRepository,
		orderRepo repository.PurchaseOrderRepository,
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		counterRepo repository.CounterRepository,
	) error) error
}
