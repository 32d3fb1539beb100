package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

const vendorColumns = `id, name, company_name, email, phone, address, created_at, updated_at`

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de persistencia para proveedores.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO vendors (`+vendorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		vendor.ID, vendor.Name, vendor.CompanyName, vendor.Email, vendor.Phone,
		vendor.Address, vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.q.QueryRow(context.Background(),
		`SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id).Scan(
		&v.ID, &v.Name, &v.CompanyName, &v.Email, &v.Phone, &v.Address, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

func (r *VendorRepo) List(limit, offset int) ([]*entity.Vendor, int, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+vendorColumns+` FROM vendors ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.CompanyName, &v.Email, &v.Phone, &v.Address, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM vendors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vendors: %w", err)
	}
	return list, total, nil
}

func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE vendors SET name = $2, company_name = $3, email = $4, phone = $5,
			address = $6, updated_at = $7
		WHERE id = $1`,
		vendor.ID, vendor.Name, vendor.CompanyName, vendor.Email, vendor.Phone,
		vendor.Address, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

func (r *VendorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}
