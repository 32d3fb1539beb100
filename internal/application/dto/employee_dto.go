package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRequest alta/edición de empleado.
type EmployeeRequest struct {
	Name   string          `json:"name" validate:"required"`
	Role   string          `json:"role"`
	Phone  string          `json:"phone"`
	Email  string          `json:"email"`
	Salary decimal.Decimal `json:"salary"`
	Status string          `json:"status"`
}

// EmployeeResponse empleado en respuestas.
type EmployeeResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Role      string          `json:"role,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Email     string          `json:"email,omitempty"`
	Salary    decimal.Decimal `json:"salary"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
