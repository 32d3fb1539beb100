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

// VendorUseCase CRUD de proveedores.
type VendorUseCase struct {
	vendorRepo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(vendorRepo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{vendorRepo: vendorRepo}
}

func (uc *VendorUseCase) Create(ctx context.Context, in dto.VendorRequest) (*dto.VendorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	vendor := &entity.Vendor{
		ID:          uuid.New().String(),
		Name:        in.Name,
		CompanyName: in.CompanyName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.vendorRepo.Create(vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

func (uc *VendorUseCase) GetByID(ctx context.Context, id string) (*dto.VendorResponse, error) {
	vendor, err := uc.vendorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	return toVendorResponse(vendor), nil
}

func (uc *VendorUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.VendorListResponse, error) {
	page.DefaultPage()
	vendors, total, err := uc.vendorRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.VendorListResponse{
		Items: make([]dto.VendorResponse, 0, len(vendors)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, v := range vendors {
		resp.Items = append(resp.Items, *toVendorResponse(v))
	}
	return resp, nil
}

func (uc *VendorUseCase) Update(ctx context.Context, id string, in dto.VendorRequest) (*dto.VendorResponse, error) {
	vendor, err := uc.vendorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		vendor.Name = in.Name
	}
	if in.CompanyName != "" {
		vendor.CompanyName = in.CompanyName
	}
	if in.Email != "" {
		vendor.Email = in.Email
	}
	if in.Phone != "" {
		vendor.Phone = in.Phone
	}
	if in.Address != "" {
		vendor.Address = in.Address
	}
	vendor.UpdatedAt = time.Now()
	if err := uc.vendorRepo.Update(vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

func (uc *VendorUseCase) Delete(ctx context.Context, id string) error {
	vendor, err := uc.vendorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return domain.ErrNotFound
	}
	return uc.vendorRepo.Delete(id)
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:          v.ID,
		Name:        v.Name,
		CompanyName: v.CompanyName,
		Email:       v.Email,
		Phone:       v.Phone,
		Address:     v.Address,
		CreatedAt:   v.CreatedAt,
	}
}
