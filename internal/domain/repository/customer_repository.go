package repository

import "github.com/tu-usuario/retail-pos-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia del directorio de clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int, search string) ([]*entity.Customer, int, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
