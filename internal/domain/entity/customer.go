package entity

import "time"

// Customer es el directorio de clientes. Las ventas guardan un snapshot
// (nombre/teléfono), no una FK a esta tabla.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
