package repository

import "github.com/tu-usuario/retail-pos-api/internal/domain/entity"

// VendorRepository define el puerto de persistencia de proveedores.
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id string) (*entity.Vendor, error)
	List(limit, offset int) ([]*entity.Vendor, int, error)
	Update(vendor *entity.Vendor) error
	Delete(id string) error
}
