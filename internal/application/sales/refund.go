package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// RefundUseCase revierte ventas: devolución parcial por línea o borrado de la
// venta completa. La cantidad devuelta vuelve al agregado del producto, no al
// lote de origen (simplificación deliberada: la base de costo de la unidad
// devuelta se pierde al reingresar como stock genérico).
type RefundUseCase struct {
	txRunner TxRunner
}

// NewRefundUseCase construye el caso de uso.
func NewRefundUseCase(txRunner TxRunner) *RefundUseCase {
	return &RefundUseCase{txRunner: txRunner}
}

// ProcessRefund devuelve refundQty unidades de la línea itemIndex.
// Precondiciones: la venta y la línea existen, la línea es returnable y
// refundQty no excede la cantidad vendida restante. Transaccional.
func (uc *RefundUseCase) ProcessRefund(ctx context.Context, saleID string, in dto.RefundRequest) (*dto.SaleResponse, error) {
	if saleID == "" || in.RefundQty <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.SaleResponse
	err := uc.txRunner.RunRefund(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		sale, err := saleRepo.GetByIDForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if in.ItemIndex < 0 || in.ItemIndex >= len(sale.Items) {
			return domain.ErrNotFound
		}
		item := &sale.Items[in.ItemIndex]
		if !item.Returnable {
			return domain.ErrNonReturnable
		}
		if in.RefundQty > item.Quantity {
			return domain.ErrOverRefund
		}

		product, err := productRepo.GetByIDForUpdate(item.ProductID)
		if err != nil {
			return err
		}
		if product != nil {
			product.Quantity += in.RefundQty
			if err := productRepo.UpdateStock(product.ID, product.Quantity, product.TotalCost); err != nil {
				return err
			}
		}

		amount := decimal.Decimal{}
		if in.RefundAmount != nil {
			amount = *in.RefundAmount
		} else {
			amount = item.Price.Mul(decimal.NewFromInt(in.RefundQty))
		}

		item.Quantity -= in.RefundQty
		item.RefundAmount = item.RefundAmount.Add(amount)
		item.Refunded = item.Quantity <= 0
		if err := saleRepo.UpdateItem(item); err != nil {
			return err
		}

		sale.UpdatedAt = time.Now()
		if err := saleRepo.UpdateHeader(sale); err != nil {
			return err
		}
		resp = toSaleResponse(sale)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteSale restaura al agregado de cada producto la cantidad de todas las
// líneas y elimina la venta. Misma simplificación que ProcessRefund: no
// restaura lotes.
func (uc *RefundUseCase) DeleteSale(ctx context.Context, saleID string) error {
	if saleID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunRefund(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		sale, err := saleRepo.GetByIDForUpdate(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		for i := range sale.Items {
			item := &sale.Items[i]
			product, err := productRepo.GetByIDForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				continue // producto borrado: nada que restaurar
			}
			product.Quantity += item.Quantity
			if err := productRepo.UpdateStock(product.ID, product.Quantity, product.TotalCost); err != nil {
				return err
			}
		}
		return saleRepo.Delete(sale.ID)
	})
}
