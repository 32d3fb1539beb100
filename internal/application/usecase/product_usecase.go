package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/application/ports"
	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos de alta manual. El stock y el costo total
// los gobiernan los motores de ventas y recepciones; aquí solo se siembran
// valores iniciales.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	lotRepo     repository.LotRepository
	qrGen       ports.QRGenerator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	qrGen ports.QRGenerator,
) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, lotRepo: lotRepo, qrGen: qrGen}
}

// Create da de alta un producto con SKU manual. El SKU debe ser único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Title == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	qrCode, err := uc.qrGen.DataURL(in.SKU)
	if err != nil {
		return nil, err
	}

	returnable := true
	if in.Returnable != nil {
		returnable = *in.Returnable
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Title:         in.Title,
		SKU:           in.SKU,
		ASIN:          in.ASIN,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Quantity:      in.Quantity,
		TotalCost:     in.TotalCost,
		Description:   in.Description,
		ModelNo:       in.ModelNo,
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		BrandID:       in.BrandID,
		ConditionID:   in.ConditionID,
		VendorID:      in.VendorID,
		Returnable:    returnable,
		QRCode:        qrCode,
		Image:         in.Image,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve un producto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve productos paginados; search filtra por título, SKU o ASIN.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest, search string) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, total, err := uc.productRepo.List(page.Limit, page.Offset, search)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(products)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, p := range products {
		resp.Items = append(resp.Items, *toProductResponse(p))
	}
	return resp, nil
}

// Update edita campos descriptivos. Quantity/TotalCost quedan fuera: son del
// motor de ventas/recepciones.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		product.Title = *in.Title
	}
	if in.ASIN != nil {
		product.ASIN = *in.ASIN
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.ModelNo != nil {
		product.ModelNo = *in.ModelNo
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.SubcategoryID != nil {
		product.SubcategoryID = *in.SubcategoryID
	}
	if in.BrandID != nil {
		product.BrandID = *in.BrandID
	}
	if in.ConditionID != nil {
		product.ConditionID = *in.ConditionID
	}
	if in.Returnable != nil {
		product.Returnable = *in.Returnable
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto si ninguna venta lo referencia; de lo contrario
// el borrado rompería el historial de facturación.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	referenced, err := uc.productRepo.ReferencedBySales(id)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrConflict
	}
	return uc.productRepo.Delete(id)
}

// ListLots devuelve el libro de lotes de un producto (histórico completo).
func (uc *ProductUseCase) ListLots(ctx context.Context, productID string) ([]dto.LotResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	lots, err := uc.lotRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LotResponse, 0, len(lots))
	for _, lot := range lots {
		resp = append(resp, dto.LotResponse{
			ID:                lot.ID,
			ProductID:         lot.ProductID,
			PurchaseReceiveID: lot.PurchaseReceiveID,
			PurchaseOrderID:   lot.PurchaseOrderID,
			VendorID:          lot.VendorID,
			QtyReceived:       lot.QtyReceived,
			QtyRemaining:      lot.QtyRemaining,
			UnitCost:          lot.UnitCost,
			ReceivedAt:        lot.ReceivedAt,
			Status:            lot.Status,
		})
	}
	return resp, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Title:         p.Title,
		SKU:           p.SKU,
		ASIN:          p.ASIN,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Quantity:      p.Quantity,
		TotalCost:     p.TotalCost,
		Description:   p.Description,
		ModelNo:       p.ModelNo,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		BrandID:       p.BrandID,
		ConditionID:   p.ConditionID,
		VendorID:      p.VendorID,
		Returnable:    p.Returnable,
		QRCode:        p.QRCode,
		Image:         p.Image,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
