package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, phone, email, address, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador del directorio de clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func (r *CustomerRepo) Create(customer *entity.Customer) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO customers (`+customerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		customer.ID, customer.Name, customer.Phone, customer.Email, customer.Address,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) List(limit, offset int, search string) ([]*entity.Customer, int, error) {
	where := ""
	args := []any{limit, offset}
	if search != "" {
		where = `WHERE name ILIKE $3 OR phone ILIKE $3 OR email ILIKE $3`
		args = append(args, "%"+search+"%")
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customers `+where+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT count(*) FROM customers`
	countArgs := []any{}
	if search != "" {
		countQuery += ` WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1`
		countArgs = append(countArgs, "%"+search+"%")
	}
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}
	return list, total, nil
}

func (r *CustomerRepo) Update(customer *entity.Customer) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE customers SET name = $2, phone = $3, email = $4, address = $5, updated_at = $6
		WHERE id = $1`,
		customer.ID, customer.Name, customer.Phone, customer.Email, customer.Address, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
