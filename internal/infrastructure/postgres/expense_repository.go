package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)
var _ repository.ExpenseCategoryRepository = (*ExpenseCategoryRepo)(nil)

const expenseColumns = `id, category_id, title, amount, date, note, created_at, updated_at`

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		expense.ID, nullable(expense.CategoryID), expense.Title, expense.Amount,
		expense.Date, expense.Note, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	var e entity.Expense
	err := r.q.QueryRow(context.Background(),
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id).Scan(
		&e.ID, scanNullable(&e.CategoryID), &e.Title, &e.Amount, &e.Date, &e.Note, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// List devuelve gastos paginados con filtro opcional por rango de fechas.
func (r *ExpenseRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Expense, int, error) {
	where := ""
	args := []any{limit, offset}
	switch {
	case from != nil && to != nil:
		where = `WHERE date >= $3 AND date <= $4`
		args = append(args, *from, *to)
	case from != nil:
		where = `WHERE date >= $3`
		args = append(args, *from)
	case to != nil:
		where = `WHERE date <= $3`
		args = append(args, *to)
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT `+expenseColumns+` FROM expenses `+where+` ORDER BY date DESC LIMIT $1 OFFSET $2`,
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, scanNullable(&e.CategoryID), &e.Title, &e.Amount, &e.Date, &e.Note, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT count(*) FROM expenses`
	countArgs := []any{}
	switch {
	case from != nil && to != nil:
		countQuery += ` WHERE date >= $1 AND date <= $2`
		countArgs = append(countArgs, *from, *to)
	case from != nil:
		countQuery += ` WHERE date >= $1`
		countArgs = append(countArgs, *from)
	case to != nil:
		countQuery += ` WHERE date <= $1`
		countArgs = append(countArgs, *to)
	}
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count expenses: %w", err)
	}
	return list, total, nil
}

func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE expenses SET category_id = $2, title = $3, amount = $4, date = $5,
			note = $6, updated_at = $7
		WHERE id = $1`,
		expense.ID, nullable(expense.CategoryID), expense.Title, expense.Amount,
		expense.Date, expense.Note, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// ExpenseCategoryRepo persiste categorías de gasto.
type ExpenseCategoryRepo struct {
	q Querier
}

// NewExpenseCategoryRepository construye el adaptador de categorías de gasto.
func NewExpenseCategoryRepository(q Querier) *ExpenseCategoryRepo {
	return &ExpenseCategoryRepo{q: q}
}

func (r *ExpenseCategoryRepo) Create(category *entity.ExpenseCategory) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO expense_categories (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`,
		category.ID, category.Name, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense category: %w", err)
	}
	return nil
}

func (r *ExpenseCategoryRepo) GetByID(id string) (*entity.ExpenseCategory, error) {
	var c entity.ExpenseCategory
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at, updated_at FROM expense_categories WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense category: %w", err)
	}
	return &c, nil
}

func (r *ExpenseCategoryRepo) List() ([]*entity.ExpenseCategory, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM expense_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list expense categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseCategory
	for rows.Next() {
		var c entity.ExpenseCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expense category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *ExpenseCategoryRepo) Update(category *entity.ExpenseCategory) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE expense_categories SET name = $2, updated_at = $3 WHERE id = $1`,
		category.ID, category.Name, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense category: %w", err)
	}
	return nil
}

func (r *ExpenseCategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expense_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense category: %w", err)
	}
	return nil
}
