package entity

import "time"

// Entidades de catálogo: se consultan por id o por nombre durante la
// conciliación de recepciones. Nombre único por tipo.

// Category agrupa productos.
type Category struct {
	ID        string
	Name      string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subcategory pertenece a una categoría.
type Subcategory struct {
	ID         string
	Name       string
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Brand es la marca del producto.
type Brand struct {
	ID        string
	Name      string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Condition es el estado físico (New, Used...); su nombre participa en el SKU.
type Condition struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
