package dto

import "time"

// VendorRequest alta/edición de proveedor.
type VendorRequest struct {
	Name        string `json:"name" validate:"required"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// VendorResponse proveedor en respuestas.
type VendorResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"company_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// VendorListResponse lista paginada de proveedores.
type VendorListResponse struct {
	Items []VendorResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
