package repository

import (
	"time"

	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
)

// ExpenseCategoryRepository persiste categorías de gasto.
type ExpenseCategoryRepository interface {
	Create(category *entity.ExpenseCategory) error
	GetByID(id string) (*entity.ExpenseCategory, error)
	List() ([]*entity.ExpenseCategory, error)
	Update(category *entity.ExpenseCategory) error
	Delete(id string) error
}

// ExpenseRepository persiste gastos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.Expense, int, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
}
