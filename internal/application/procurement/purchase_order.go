package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// Base de numeración de órdenes y recepciones: la primera es PO-1001 / PR-1001.
const orderNoBase = 1000

// PurchaseOrderUseCase alta y lecturas de órdenes de compra.
type PurchaseOrderUseCase struct {
	orderRepo   repository.PurchaseOrderRepository
	vendorRepo  repository.VendorRepository
	counterRepo repository.CounterRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	orderRepo repository.PurchaseOrderRepository,
	vendorRepo repository.VendorRepository,
	counterRepo repository.CounterRepository,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{orderRepo: orderRepo, vendorRepo: vendorRepo, counterRepo: counterRepo}
}

// Create registra una orden con numeración PO-<secuencial> tomada del contador
// durable (atómico bajo concurrencia, a diferencia del patrón buscar-máximo).
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.VendorID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	vendor, err := uc.vendorRepo.GetByID(in.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}

	seq, err := uc.counterRepo.Next("purchase-order")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	po := &entity.PurchaseOrder{
		ID:               uuid.New().String(),
		OrderNo:          fmt.Sprintf("PO-%d", orderNoBase+seq),
		VendorID:         in.VendorID,
		OrderDate:        now,
		ExpectedDelivery: in.ExpectedDelivery,
		Status:           entity.POStatusProcessing,
		Notes:            in.Notes,
		TotalAmount:      decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, item := range in.Items {
		if item.OrderedQty <= 0 || item.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		total := item.PurchasePrice.Mul(decimal.NewFromInt(item.OrderedQty))
		po.Items = append(po.Items, entity.PurchaseOrderItem{
			ID:            uuid.New().String(),
			Title:         item.Title,
			ASIN:          item.ASIN,
			OrderedQty:    item.OrderedQty,
			PurchasePrice: item.PurchasePrice,
			Total:         total,
			Status:        entity.POStatusPending,
		})
		po.TotalAmount = po.TotalAmount.Add(total)
	}

	if err := uc.orderRepo.Create(po); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(po), nil
}

// GetByID devuelve una orden con sus líneas.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	return toPurchaseOrderResponse(po), nil
}

// List devuelve órdenes paginadas.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.PurchaseOrderListResponse, error) {
	page.DefaultPage()
	orders, total, err := uc.orderRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.PurchaseOrderListResponse{
		Items: make([]dto.PurchaseOrderResponse, 0, len(orders)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, po := range orders {
		resp.Items = append(resp.Items, *toPurchaseOrderResponse(po))
	}
	return resp, nil
}

// Delete elimina una orden.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, id string) error {
	po, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if po == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(id)
}

func toPurchaseOrderResponse(po *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	resp := &dto.PurchaseOrderResponse{
		ID:               po.ID,
		OrderNo:          po.OrderNo,
		VendorID:         po.VendorID,
		Items:            make([]dto.PurchaseOrderItemResponse, 0, len(po.Items)),
		OrderDate:        po.OrderDate,
		ExpectedDelivery: po.ExpectedDelivery,
		Status:           po.Status,
		Notes:            po.Notes,
		TotalAmount:      po.TotalAmount,
	}
	for _, item := range po.Items {
		resp.Items = append(resp.Items, dto.PurchaseOrderItemResponse{
			ID:            item.ID,
			Title:         item.Title,
			ASIN:          item.ASIN,
			OrderedQty:    item.OrderedQty,
			ReceivedQty:   item.ReceivedQty,
			PurchasePrice: item.PurchasePrice,
			Total:         item.Total,
			Status:        item.Status,
		})
	}
	return resp
}
