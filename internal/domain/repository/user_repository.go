package repository

import "github.com/tu-usuario/retail-pos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia de cuentas de acceso.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
