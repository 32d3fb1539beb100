package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar ventas/recepciones concurrentes sobre el mismo producto.
	GetByIDForUpdate(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock actualiza solo cantidad y costo total (motor de ventas/recepciones).
	UpdateStock(productID string, quantity int64, totalCost decimal.Decimal) error
	List(limit, offset int, search string) ([]*entity.Product, int, error)
	Delete(id string) error
	// ReferencedBySales indica si alguna venta referencia al producto
	// (bloquea el borrado físico).
	ReferencedBySales(productID string) (bool, error)
}
