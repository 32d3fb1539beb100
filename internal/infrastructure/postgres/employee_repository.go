package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, name, role, phone, email, salary, status, created_at, updated_at`

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO employees (`+employeeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		employee.ID, employee.Name, employee.Role, employee.Phone, employee.Email,
		employee.Salary, employee.Status, employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	var e entity.Employee
	err := r.q.QueryRow(context.Background(),
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id).Scan(
		&e.ID, &e.Name, &e.Role, &e.Phone, &e.Email, &e.Salary, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, int, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+employeeColumns+` FROM employees ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Phone, &e.Email, &e.Salary, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM employees`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}
	return list, total, nil
}

func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE employees SET name = $2, role = $3, phone = $4, email = $5, salary = $6,
			status = $7, updated_at = $8
		WHERE id = $1`,
		employee.ID, employee.Name, employee.Role, employee.Phone, employee.Email,
		employee.Salary, employee.Status, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
