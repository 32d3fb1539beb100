package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, title, sku, asin, purchase_price, sale_price, quantity, total_cost,
	description, model_no, category_id, subcategory_id, brand_id, condition_id, vendor_id,
	returnable, qr_code, image, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. El SKU es único.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Title, product.SKU, product.ASIN, product.PurchasePrice, product.SalePrice,
		product.Quantity, product.TotalCost, product.Description, product.ModelNo,
		nullable(product.CategoryID), nullable(product.SubcategoryID), nullable(product.BrandID),
		nullable(product.ConditionID), nullable(product.VendorID),
		product.Returnable, product.QRCode, product.Image, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
// serializar ventas y recepciones concurrentes sobre el mismo producto.
func (r *ProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE sku = $1`, sku)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Title, &p.SKU, &p.ASIN, &p.PurchasePrice, &p.SalePrice, &p.Quantity, &p.TotalCost,
		&p.Description, &p.ModelNo, scanNullable(&p.CategoryID), scanNullable(&p.SubcategoryID),
		scanNullable(&p.BrandID), scanNullable(&p.ConditionID), scanNullable(&p.VendorID),
		&p.Returnable, &p.QRCode, &p.Image, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza los campos descriptivos y precios de un producto, además
// de quantity/total_cost (el motor de recepciones los toca vía Update).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET title = $2, asin = $3, purchase_price = $4, sale_price = $5,
			quantity = $6, total_cost = $7, description = $8, model_no = $9,
			category_id = $10, subcategory_id = $11, brand_id = $12, condition_id = $13,
			returnable = $14, image = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Title, product.ASIN, product.PurchasePrice, product.SalePrice,
		product.Quantity, product.TotalCost, product.Description, product.ModelNo,
		nullable(product.CategoryID), nullable(product.SubcategoryID), nullable(product.BrandID),
		nullable(product.ConditionID), product.Returnable, product.Image, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo cantidad y costo total (motor de ventas/devoluciones).
func (r *ProductRepo) UpdateStock(productID string, quantity int64, totalCost decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, total_cost = $3, updated_at = now() WHERE id = $1`,
		productID, quantity, totalCost,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// List lista productos con paginación; search filtra por título, SKU o ASIN.
func (r *ProductRepo) List(limit, offset int, search string) ([]*entity.Product, int, error) {
	where := ""
	args := []any{limit, offset}
	if search != "" {
		where = `WHERE title ILIKE $3 OR sku ILIKE $3 OR asin ILIKE $3`
		args = append(args, "%"+search+"%")
	}
	query := `SELECT ` + productColumns + ` FROM products ` + where + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Title, &p.SKU, &p.ASIN, &p.PurchasePrice, &p.SalePrice, &p.Quantity, &p.TotalCost,
			&p.Description, &p.ModelNo, scanNullable(&p.CategoryID), scanNullable(&p.SubcategoryID),
			scanNullable(&p.BrandID), scanNullable(&p.ConditionID), scanNullable(&p.VendorID),
			&p.Returnable, &p.QRCode, &p.Image, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT count(*) FROM products`
	countArgs := []any{}
	if search != "" {
		countQuery += ` WHERE title ILIKE $1 OR sku ILIKE $1 OR asin ILIKE $1`
		countArgs = append(countArgs, "%"+search+"%")
	}
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	return list, total, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// ReferencedBySales indica si alguna línea de venta referencia al producto.
func (r *ProductRepo) ReferencedBySales(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM sale_items WHERE product_id = $1)`, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product sales: %w", err)
	}
	return exists, nil
}
