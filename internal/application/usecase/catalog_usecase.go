package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// CatalogUseCase CRUD de catálogo: categorías, subcategorías, marcas y
// condiciones. Los nombres de marca y condición alimentan la resolución
// id-o-nombre de las recepciones.
type CatalogUseCase struct {
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubcategoryRepository
	brandRepo       repository.BrandRepository
	conditionRepo   repository.ConditionRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	categoryRepo repository.CategoryRepository,
	subcategoryRepo repository.SubcategoryRepository,
	brandRepo repository.BrandRepository,
	conditionRepo repository.ConditionRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		brandRepo:       brandRepo,
		conditionRepo:   conditionRepo,
	}
}

// --- Categorías ---

func (uc *CatalogUseCase) CreateCategory(ctx context.Context, in dto.NamedEntityRequest) (*dto.NamedEntityResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{ID: uuid.New().String(), Name: in.Name, Image: in.Image, CreatedAt: now, UpdatedAt: now}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.NamedEntityResponse{ID: category.ID, Name: category.Name, Image: category.Image, CreatedAt: category.CreatedAt}, nil
}

func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]dto.NamedEntityResponse, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.NamedEntityResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, dto.NamedEntityResponse{ID: c.ID, Name: c.Name, Image: c.Image, CreatedAt: c.CreatedAt})
	}
	return resp, nil
}

func (uc *CatalogUseCase) UpdateCategory(ctx context.Context, id string, in dto.NamedEntityRequest) (*dto.NamedEntityResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		category.Name = in.Name
	}
	if in.Image != "" {
		category.Image = in.Image
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return &dto.NamedEntityResponse{ID: category.ID, Name: category.Name, Image: category.Image, CreatedAt: category.CreatedAt}, nil
}

func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categoryRepo.Delete(id)
}

// --- Subcategorías ---

func (uc *CatalogUseCase) CreateSubcategory(ctx context.Context, in dto.SubcategoryRequest) (*dto.SubcategoryResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	sub := &entity.Subcategory{ID: uuid.New().String(), Name: in.Name, CategoryID: in.CategoryID, CreatedAt: now, UpdatedAt: now}
	if err := uc.subcategoryRepo.Create(sub); err != nil {
		return nil, err
	}
	return &dto.SubcategoryResponse{ID: sub.ID, Name: sub.Name, CategoryID: sub.CategoryID, CreatedAt: sub.CreatedAt}, nil
}

func (uc *CatalogUseCase) ListSubcategories(ctx context.Context) ([]dto.SubcategoryResponse, error) {
	subs, err := uc.subcategoryRepo.List()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SubcategoryResponse, 0, len(subs))
	for _, s := range subs {
		resp = append(resp, dto.SubcategoryResponse{ID: s.ID, Name: s.Name, CategoryID: s.CategoryID, CreatedAt: s.CreatedAt})
	}
	return resp, nil
}

func (uc *CatalogUseCase) DeleteSubcategory(ctx context.Context, id string) error {
	sub, err := uc.subcategoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrNotFound
	}
	return uc.subcategoryRepo.Delete(id)
}

// --- Marcas ---

func (uc *CatalogUseCase) CreateBrand(ctx context.Context, in dto.NamedEntityRequest) (*dto.NamedEntityResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.brandRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	brand := &entity.Brand{ID: uuid.New().String(), Name: in.Name, Image: in.Image, CreatedAt: now, UpdatedAt: now}
	if err := uc.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return &dto.NamedEntityResponse{ID: brand.ID, Name: brand.Name, Image: brand.Image, CreatedAt: brand.CreatedAt}, nil
}

func (uc *CatalogUseCase) ListBrands(ctx context.Context) ([]dto.NamedEntityResponse, error) {
	brands, err := uc.brandRepo.List()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.NamedEntityResponse, 0, len(brands))
	for _, b := range brands {
		resp = append(resp, dto.NamedEntityResponse{ID: b.ID, Name: b.Name, Image: b.Image, CreatedAt: b.CreatedAt})
	}
	return resp, nil
}

func (uc *CatalogUseCase) UpdateBrand(ctx context.Context, id string, in dto.NamedEntityRequest) (*dto.NamedEntityResponse, error) {
	brand, err := uc.brandRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		brand.Name = in.Name
	}
	if in.Image != "" {
		brand.Image = in.Image
	}
	brand.UpdatedAt = time.Now()
	if err := uc.brandRepo.Update(brand); err != nil {
		return nil, err
	}
	return &dto.NamedEntityResponse{ID: brand.ID, Name: brand.Name, Image: brand.Image, CreatedAt: brand.CreatedAt}, nil
}

func (uc *CatalogUseCase) DeleteBrand(ctx context.Context, id string) error {
	brand, err := uc.brandRepo.GetByID(id)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrNotFound
	}
	return uc.brandRepo.Delete(id)
}

// --- Condiciones ---

func (uc *CatalogUseCase) CreateCondition(ctx context.Context, in dto.NamedEntityRequest) (*dto.NamedEntityResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.conditionRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	condition := &entity.Condition{ID: uuid.New().String(), Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.conditionRepo.Create(condition); err != nil {
		return nil, err
	}
	return &dto.NamedEntityResponse{ID: condition.ID, Name: condition.Name, CreatedAt: condition.CreatedAt}, nil
}

func (uc *CatalogUseCase) ListConditions(ctx context.Context) ([]dto.NamedEntityResponse, error) {
	conditions, err := uc.conditionRepo.List()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.NamedEntityResponse, 0, len(conditions))
	for _, c := range conditions {
		resp = append(resp, dto.NamedEntityResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	return resp, nil
}

func (uc *CatalogUseCase) DeleteCondition(ctx context.Context, id string) error {
	condition, err := uc.conditionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if condition == nil {
		return domain.ErrNotFound
	}
	return uc.conditionRepo.Delete(id)
}
