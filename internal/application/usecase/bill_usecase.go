package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// BillUseCase facturas de proveedor (cuentas por pagar). Registro documental:
// el stock entra por recepciones, aquí solo se lleva lo que se debe y se abona.
type BillUseCase struct {
	billRepo   repository.BillRepository
	vendorRepo repository.VendorRepository
	orderRepo  repository.PurchaseOrderRepository
}

// NewBillUseCase construye el caso de uso.
func NewBillUseCase(
	billRepo repository.BillRepository,
	vendorRepo repository.VendorRepository,
	orderRepo repository.PurchaseOrderRepository,
) *BillUseCase {
	return &BillUseCase{billRepo: billRepo, vendorRepo: vendorRepo, orderRepo: orderRepo}
}

// Create registra una factura. El total es subTotal + tax y el estado de pago
// se deriva de lo abonado.
func (uc *BillUseCase) Create(ctx context.Context, in dto.CreateBillRequest) (*dto.BillResponse, error) {
	if in.VendorID == "" || len(in.Items) == 0 || in.Tax.IsNegative() || in.PaidAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	vendor, err := uc.vendorRepo.GetByID(in.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	if in.PurchaseOrderID != "" {
		po, err := uc.orderRepo.GetByID(in.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		if po == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	billDate := now
	if in.BillDate != nil {
		billDate = *in.BillDate
	}
	bill := &entity.Bill{
		ID:              uuid.New().String(),
		VendorID:        in.VendorID,
		PurchaseOrderID: in.PurchaseOrderID,
		BillDate:        billDate,
		DueDate:         in.DueDate,
		SubTotal:        decimal.Zero,
		Tax:             in.Tax,
		PaidAmount:      in.PaidAmount,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		total := item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
		bill.Items = append(bill.Items, entity.BillItem{
			ID:          uuid.New().String(),
			BillID:      bill.ID,
			ProductID:   item.ProductID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       total,
		})
		bill.SubTotal = bill.SubTotal.Add(total)
	}
	bill.TotalAmount = bill.SubTotal.Add(bill.Tax)
	bill.DeriveStatus()

	if err := uc.billRepo.Create(bill); err != nil {
		return nil, err
	}
	return toBillResponse(bill), nil
}

// GetByID devuelve una factura con sus líneas.
func (uc *BillUseCase) GetByID(ctx context.Context, id string) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	return toBillResponse(bill), nil
}

// List devuelve facturas paginadas, opcionalmente por proveedor.
func (uc *BillUseCase) List(ctx context.Context, page dto.PageRequest, vendorID string) (*dto.BillListResponse, error) {
	page.DefaultPage()
	var (
		bills []*entity.Bill
		total int
		err   error
	)
	if vendorID != "" {
		bills, total, err = uc.billRepo.ListByVendor(vendorID, page.Limit, page.Offset)
	} else {
		bills, total, err = uc.billRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	resp := &dto.BillListResponse{
		Items: make([]dto.BillResponse, 0, len(bills)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, b := range bills {
		resp.Items = append(resp.Items, *toBillResponse(b))
	}
	return resp, nil
}

// Update edita vencimiento, abonos y notas, y rederiva el estado de pago.
func (uc *BillUseCase) Update(ctx context.Context, id string, in dto.UpdateBillRequest) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	if in.DueDate != nil {
		bill.DueDate = in.DueDate
	}
	if in.PaidAmount != nil {
		if in.PaidAmount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		bill.PaidAmount = *in.PaidAmount
	}
	if in.Notes != nil {
		bill.Notes = *in.Notes
	}
	bill.DeriveStatus()
	bill.UpdatedAt = time.Now()

	if err := uc.billRepo.Update(bill); err != nil {
		return nil, err
	}
	return toBillResponse(bill), nil
}

// Delete elimina la factura.
func (uc *BillUseCase) Delete(ctx context.Context, id string) error {
	bill, err := uc.billRepo.GetByID(id)
	if err != nil {
		return err
	}
	if bill == nil {
		return domain.ErrNotFound
	}
	return uc.billRepo.Delete(id)
}

func toBillResponse(b *entity.Bill) *dto.BillResponse {
	resp := &dto.BillResponse{
		ID:              b.ID,
		VendorID:        b.VendorID,
		PurchaseOrderID: b.PurchaseOrderID,
		BillDate:        b.BillDate,
		DueDate:         b.DueDate,
		Items:           make([]dto.BillItemResponse, 0, len(b.Items)),
		SubTotal:        b.SubTotal,
		Tax:             b.Tax,
		TotalAmount:     b.TotalAmount,
		PaidAmount:      b.PaidAmount,
		Status:          b.Status,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
	}
	for _, it := range b.Items {
		resp.Items = append(resp.Items, dto.BillItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return resp
}
