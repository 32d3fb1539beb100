package sales

import (
	"context"
	"time"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// QueryUseCase lecturas y edición de cabecera de ventas.
type QueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(saleRepo repository.SaleRepository) *QueryUseCase {
	return &QueryUseCase{saleRepo: saleRepo}
}

// List devuelve ventas paginadas; search filtra por número de factura o
// nombre/teléfono del cliente.
func (uc *QueryUseCase) List(ctx context.Context, page dto.PageRequest, search string) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	sales, total, err := uc.saleRepo.List(page.Limit, page.Offset, search)
	if err != nil {
		return nil, err
	}
	resp := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(sales)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, s := range sales {
		resp.Items = append(resp.Items, *toSaleResponse(s))
	}
	return resp, nil
}

// GetByID devuelve una venta con su detalle.
func (uc *QueryUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// UpdateHeader edita campos de cabecera y recalcula solo el grandTotal.
// COGS y profit no se recalculan: reflejan el costo al momento de la venta.
func (uc *QueryUseCase) UpdateHeader(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if in.Discount != nil {
		sale.Discount = *in.Discount
	}
	if in.Shipping != nil {
		sale.Shipping = *in.Shipping
	}
	if in.VAT != nil {
		sale.VAT = *in.VAT
	}
	if in.PaymentMethod != nil {
		sale.PaymentMethod = *in.PaymentMethod
	}
	if in.SellAt != nil {
		sale.SellAt = *in.SellAt
	}
	if in.SalesNote != nil {
		sale.SalesNote = *in.SalesNote
	}
	if in.Status != nil {
		sale.Status = *in.Status
	}
	sale.GrandTotal = sale.SubTotal.Add(sale.VAT).Add(sale.Shipping).Sub(sale.Discount)
	sale.UpdatedAt = time.Now()

	if err := uc.saleRepo.UpdateHeader(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}
