package dto

import "time"

// NamedEntityRequest alta/edición de entidades de catálogo (nombre único).
type NamedEntityRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Image string `json:"image"`
}

// SubcategoryRequest alta/edición de subcategoría.
type SubcategoryRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	CategoryID string `json:"category_id" validate:"required"`
}

// NamedEntityResponse entidad de catálogo en respuestas.
type NamedEntityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SubcategoryResponse subcategoría en respuestas.
type SubcategoryResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}
