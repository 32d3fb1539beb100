package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// Adaptadores de catálogo. Brand y Condition exponen GetByName porque la
// conciliación de recepciones acepta nombres además de ids.

var _ repository.CategoryRepository = (*CategoryRepo)(nil)
var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)
var _ repository.BrandRepository = (*BrandRepo)(nil)
var _ repository.ConditionRepository = (*ConditionRepo)(nil)

// CategoryRepo persiste categorías.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO categories (id, name, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.Name, category.Image, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, image, created_at, updated_at FROM categories WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &c.Image, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, image, created_at, updated_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Image, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) Update(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET name = $2, image = $3, updated_at = $4 WHERE id = $1`,
		category.ID, category.Name, category.Image, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// SubcategoryRepo persiste subcategorías.
type SubcategoryRepo struct {
	q Querier
}

// NewSubcategoryRepository construye el adaptador de subcategorías.
func NewSubcategoryRepository(q Querier) *SubcategoryRepo {
	return &SubcategoryRepo{q: q}
}

func (r *SubcategoryRepo) Create(subcategory *entity.Subcategory) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO subcategories (id, name, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		subcategory.ID, subcategory.Name, subcategory.CategoryID, subcategory.CreatedAt, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

func (r *SubcategoryRepo) GetByID(id string) (*entity.Subcategory, error) {
	var s entity.Subcategory
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, category_id, created_at, updated_at FROM subcategories WHERE id = $1`, id).Scan(
		&s.ID, &s.Name, &s.CategoryID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return &s, nil
}

func (r *SubcategoryRepo) List() ([]*entity.Subcategory, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, category_id, created_at, updated_at FROM subcategories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subcategory
	for rows.Next() {
		var s entity.Subcategory
		if err := rows.Scan(&s.ID, &s.Name, &s.CategoryID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SubcategoryRepo) Update(subcategory *entity.Subcategory) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE subcategories SET name = $2, category_id = $3, updated_at = $4 WHERE id = $1`,
		subcategory.ID, subcategory.Name, subcategory.CategoryID, subcategory.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

func (r *SubcategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}

// BrandRepo persiste marcas.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador de marcas.
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

func (r *BrandRepo) Create(brand *entity.Brand) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO brands (id, name, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		brand.ID, brand.Name, brand.Image, brand.CreatedAt, brand.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

func (r *BrandRepo) GetByID(id string) (*entity.Brand, error) {
	return r.getOne(`SELECT id, name, image, created_at, updated_at FROM brands WHERE id = $1`, id)
}

func (r *BrandRepo) GetByName(name string) (*entity.Brand, error) {
	return r.getOne(`SELECT id, name, image, created_at, updated_at FROM brands WHERE name = $1`, name)
}

func (r *BrandRepo) getOne(query, arg string) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&b.ID, &b.Name, &b.Image, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

func (r *BrandRepo) List() ([]*entity.Brand, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, image, created_at, updated_at FROM brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Image, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func (r *BrandRepo) Update(brand *entity.Brand) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE brands SET name = $2, image = $3, updated_at = $4 WHERE id = $1`,
		brand.ID, brand.Name, brand.Image, brand.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update brand: %w", err)
	}
	return nil
}

func (r *BrandRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}

// ConditionRepo persiste condiciones.
type ConditionRepo struct {
	q Querier
}

// NewConditionRepository construye el adaptador de condiciones.
func NewConditionRepository(q Querier) *ConditionRepo {
	return &ConditionRepo{q: q}
}

func (r *ConditionRepo) Create(condition *entity.Condition) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO conditions (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`,
		condition.ID, condition.Name, condition.CreatedAt, condition.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert condition: %w", err)
	}
	return nil
}

func (r *ConditionRepo) GetByID(id string) (*entity.Condition, error) {
	return r.getOne(`SELECT id, name, created_at, updated_at FROM conditions WHERE id = $1`, id)
}

func (r *ConditionRepo) GetByName(name string) (*entity.Condition, error) {
	return r.getOne(`SELECT id, name, created_at, updated_at FROM conditions WHERE name = $1`, name)
}

func (r *ConditionRepo) getOne(query, arg string) (*entity.Condition, error) {
	var c entity.Condition
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get condition: %w", err)
	}
	return &c, nil
}

func (r *ConditionRepo) List() ([]*entity.Condition, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM conditions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list conditions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Condition
	for rows.Next() {
		var c entity.Condition
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan condition: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *ConditionRepo) Update(condition *entity.Condition) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE conditions SET name = $2, updated_at = $3 WHERE id = $1`,
		condition.ID, condition.Name, condition.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update condition: %w", err)
	}
	return nil
}

func (r *ConditionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM conditions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete condition: %w", err)
	}
	return nil
}
