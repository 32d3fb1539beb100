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

// ExpenseUseCase gastos operativos y sus categorías.
type ExpenseUseCase struct {
	expenseRepo  repository.ExpenseRepository
	categoryRepo repository.ExpenseCategoryRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(
	expenseRepo repository.ExpenseRepository,
	categoryRepo repository.ExpenseCategoryRepository,
) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo, categoryRepo: categoryRepo}
}

func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Title == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	expense := &entity.Expense{
		ID:         uuid.New().String(),
		CategoryID: in.CategoryID,
		Title:      in.Title,
		Amount:     in.Amount,
		Date:       date,
		Note:       in.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List devuelve gastos paginados con filtro opcional por rango de fechas.
func (uc *ExpenseUseCase) List(ctx context.Context, page dto.PageRequest, from, to *time.Time) (*dto.ExpenseListResponse, error) {
	page.DefaultPage()
	expenses, total, err := uc.expenseRepo.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.ExpenseListResponse{
		Items: make([]dto.ExpenseResponse, 0, len(expenses)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, e := range expenses {
		resp.Items = append(resp.Items, *toExpenseResponse(e))
	}
	return resp, nil
}

func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != "" {
		expense.Title = in.Title
	}
	if in.Amount.IsPositive() {
		expense.Amount = in.Amount
	}
	if in.CategoryID != "" {
		expense.CategoryID = in.CategoryID
	}
	if in.Date != nil {
		expense.Date = *in.Date
	}
	if in.Note != "" {
		expense.Note = in.Note
	}
	expense.UpdatedAt = time.Now()
	if err := uc.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.expenseRepo.Delete(id)
}

// --- Categorías de gasto ---

func (uc *ExpenseUseCase) CreateCategory(ctx context.Context, in dto.NamedEntityRequest) (*dto.NamedEntityResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.ExpenseCategory{ID: uuid.New().String(), Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.NamedEntityResponse{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt}, nil
}

func (uc *ExpenseUseCase) ListCategories(ctx context.Context) ([]dto.NamedEntityResponse, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.NamedEntityResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, dto.NamedEntityResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	return resp, nil
}

func (uc *ExpenseUseCase) DeleteCategory(ctx context.Context, id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categoryRepo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:         e.ID,
		CategoryID: e.CategoryID,
		Title:      e.Title,
		Amount:     e.Amount,
		Date:       e.Date,
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
	}
}
