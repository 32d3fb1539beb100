package repository

import "github.com/tu-usuario/retail-pos-api/internal/domain/entity"

// Puertos de catálogo. Brand y Condition se resuelven por nombre durante la
// conciliación de recepciones; el resto es CRUD de soporte.

// CategoryRepository persiste categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}

// SubcategoryRepository persiste subcategorías.
type SubcategoryRepository interface {
	Create(subcategory *entity.Subcategory) error
	GetByID(id string) (*entity.Subcategory, error)
	List() ([]*entity.Subcategory, error)
	Update(subcategory *entity.Subcategory) error
	Delete(id string) error
}

// BrandRepository persiste marcas.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	GetByName(name string) (*entity.Brand, error)
	List() ([]*entity.Brand, error)
	Update(brand *entity.Brand) error
	Delete(id string) error
}

// ConditionRepository persiste condiciones (su nombre entra en el SKU).
type ConditionRepository interface {
	Create(condition *entity.Condition) error
	GetByID(id string) (*entity.Condition, error)
	GetByName(name string) (*entity.Condition, error)
	List() ([]*entity.Condition, error)
	Update(condition *entity.Condition) error
	Delete(id string) error
}
