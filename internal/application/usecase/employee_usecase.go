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

// EmployeeUseCase CRUD de empleados (los vendedores de cada venta).
type EmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employeeRepo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employeeRepo: employeeRepo}
}

func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Role:      in.Role,
		Phone:     in.Phone,
		Email:     in.Email,
		Salary:    in.Salary,
		Status:    defaultStr(in.Status, "active"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return toEmployeeResponse(employee), nil
}

func (uc *EmployeeUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	employees, total, err := uc.employeeRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.EmployeeListResponse{
		Items: make([]dto.EmployeeResponse, 0, len(employees)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, e := range employees {
		resp.Items = append(resp.Items, *toEmployeeResponse(e))
	}
	return resp, nil
}

func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if in.Name != "" {
		employee.Name = in.Name
	}
	if in.Role != "" {
		employee.Role = in.Role
	}
	if in.Phone != "" {
		employee.Phone = in.Phone
	}
	if in.Email != "" {
		employee.Email = in.Email
	}
	if in.Salary.IsPositive() {
		employee.Salary = in.Salary
	}
	if in.Status != "" {
		employee.Status = in.Status
	}
	employee.UpdatedAt = time.Now()
	if err := uc.employeeRepo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	employee, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrEmployeeNotFound
	}
	return uc.employeeRepo.Delete(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Role:      e.Role,
		Phone:     e.Phone,
		Email:     e.Email,
		Salary:    e.Salary,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
