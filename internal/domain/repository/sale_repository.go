package repository

import "github.com/tu-usuario/retail-pos-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia de ventas (cabecera + ítems).
type SaleRepository interface {
	// Create persiste la venta y todos sus ítems.
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// GetByIDForUpdate bloquea la venta durante un refund o borrado.
	GetByIDForUpdate(id string) (*entity.Sale, error)
	List(limit, offset int, search string) ([]*entity.Sale, int, error)
	// UpdateHeader actualiza campos editables de la cabecera (descuento,
	// envío, estado...) sin tocar ítems ni COGS.
	UpdateHeader(sale *entity.Sale) error
	// UpdateItem persiste cantidad/refund de una sublínea.
	UpdateItem(item *entity.SaleItem) error
	Delete(id string) error
}
