package repository

import "github.com/tu-usuario/retail-pos-api/internal/domain/entity"

// BillRepository persiste facturas de proveedor (cuentas por pagar).
type BillRepository interface {
	Create(bill *entity.Bill) error
	GetByID(id string) (*entity.Bill, error)
	List(limit, offset int) ([]*entity.Bill, int, error)
	ListByVendor(vendorID string, limit, offset int) ([]*entity.Bill, int, error)
	Update(bill *entity.Bill) error
	Delete(id string) error
}
