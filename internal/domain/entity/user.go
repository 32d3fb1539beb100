package entity

import "time"

// Roles de usuario para el RBAC básico.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleSeller  = "seller"
)

// User es una cuenta de acceso a la API (login), distinta de Employee.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Status       string // active | inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
