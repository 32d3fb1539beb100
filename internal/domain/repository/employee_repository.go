package repository

import "github.com/tu-usuario/retail-pos-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia de empleados.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, int, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
}
