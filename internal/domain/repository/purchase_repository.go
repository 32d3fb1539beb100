package repository

import "github.com/tu-usuario/retail-pos-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia de órdenes de compra.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	// GetByIDForUpdate bloquea la orden y sus líneas durante la conciliación
	// de una recepción.
	GetByIDForUpdate(id string) (*entity.PurchaseOrder, error)
	// UpdateReconciliation persiste receivedQty por línea y el estado global.
	UpdateReconciliation(po *entity.PurchaseOrder) error
	Update(po *entity.PurchaseOrder) error
	List(limit, offset int) ([]*entity.PurchaseOrder, int, error)
	Delete(id string) error
}

// PurchaseReceiveRepository define el puerto de persistencia de recepciones.
type PurchaseReceiveRepository interface {
	Create(pr *entity.PurchaseReceive) error
	GetByID(id string) (*entity.PurchaseReceive, error)
	List(limit, offset int) ([]*entity.PurchaseReceive, int, error)
	ListByVendor(vendorID string, limit, offset int) ([]*entity.PurchaseReceive, int, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}
