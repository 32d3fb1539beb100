package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/costing"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// Config parámetros de facturación del punto de venta.
type Config struct {
	InvoicePrefix string          // prefijo del número de factura (ej. "AL")
	VATRate       decimal.Decimal // ej. 0.05
}

// CreateSaleUseCase crea una venta: asigna stock por FIFO sobre los lotes del
// producto (o promedio ponderado si no hay lotes), calcula COGS/totales y
// persiste la factura, todo dentro de una sola transacción con bloqueo de
// filas (SELECT FOR UPDATE) sobre productos y lotes.
type CreateSaleUseCase struct {
	txRunner     TxRunner
	employeeRepo repository.EmployeeRepository
	productRepo  repository.ProductRepository
	cfg          Config
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	employeeRepo repository.EmployeeRepository,
	productRepo repository.ProductRepository,
	cfg Config,
) *CreateSaleUseCase {
	if cfg.VATRate.IsZero() {
		cfg.VATRate = decimal.NewFromFloat(0.05)
	}
	if cfg.InvoicePrefix == "" {
		cfg.InvoicePrefix = "AL"
	}
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		employeeRepo: employeeRepo,
		productRepo:  productRepo,
		cfg:          cfg,
	}
}

// CreateSale valida precondiciones, ejecuta la asignación dentro de la
// transacción y devuelve la venta persistida. Cualquier fallo (empleado o
// producto inexistente, stock insuficiente) aborta sin mutaciones parciales.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 || in.Customer.Name == "" || in.EmployeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	for i := range in.Items {
		if in.Items[i].ProductID == "" || in.Items[i].Quantity <= 0 || in.Items[i].Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	// Validar vendedor
	emp, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}

	// Validar productos y completar precios (fuera de la tx, solo lectura)
	for i := range in.Items {
		product, err := uc.productRepo.GetByID(in.Items[i].ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if in.Items[i].Price.IsZero() {
			in.Items[i].Price = product.SalePrice
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		Customer:      entity.CustomerSnapshot{Name: in.Customer.Name, Phone: in.Customer.Phone},
		Discount:      in.Discount,
		Shipping:      in.Shipping,
		PaymentMethod: defaultString(in.PaymentMethod, entity.PaymentCash),
		SellAt:        defaultString(in.SellAt, entity.ChannelShop),
		EmployeeID:    emp.ID,
		SalesNote:     in.SalesNote,
		Status:        defaultString(in.Status, entity.SaleStatusUnpaid),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		counterRepo repository.CounterRepository,
	) error {
		// Bloquear los productos en orden estable para evitar deadlocks entre
		// ventas concurrentes que comparten productos.
		products, err := lockProducts(productRepo, in.Items)
		if err != nil {
			return err
		}

		subTotal := decimal.Zero
		totalCOGS := decimal.Zero

		for _, line := range in.Items {
			product := products[line.ProductID]

			lots, err := lotRepo.ListAvailableByProductForUpdate(product.ID)
			if err != nil {
				return err
			}

			if len(lots) == 0 {
				// Sin lotes: costeo por promedio ponderado sobre el agregado.
				if product.Quantity < line.Quantity {
					return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, product.Title)
				}
				avgCost := costing.WeightedAverageCost(product.TotalCost, product.Quantity, line.Price)
				cost := avgCost.Mul(decimal.NewFromInt(line.Quantity))
				total := line.Price.Mul(decimal.NewFromInt(line.Quantity))

				sale.Items = append(sale.Items, entity.SaleItem{
					ID:            uuid.New().String(),
					SaleID:        sale.ID,
					LineNo:        len(sale.Items),
					ProductID:     product.ID,
					Quantity:      line.Quantity,
					Price:         line.Price,
					PurchasePrice: avgCost,
					Total:         total,
					Returnable:    product.Returnable,
					RefundAmount:  decimal.Zero,
				})
				subTotal = subTotal.Add(total)
				totalCOGS = totalCOGS.Add(cost)

				product.Quantity -= line.Quantity
				product.TotalCost = product.TotalCost.Sub(cost)
				if err := productRepo.UpdateStock(product.ID, product.Quantity, product.TotalCost); err != nil {
					return err
				}
				continue
			}

			// Con lotes: asignación FIFO estricta, sin consumo parcial por línea.
			plan := costing.PlanFIFO(lots, line.Quantity)
			if plan.Shortfall > 0 {
				return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, product.Title)
			}
			for _, alloc := range plan.Allocations {
				alloc.Lot.QtyRemaining -= alloc.Qty
				status := entity.LotStatusAvailable
				if alloc.Lot.QtyRemaining == 0 {
					status = entity.LotStatusConsumed
				}
				if err := lotRepo.UpdateRemaining(alloc.Lot.ID, alloc.Lot.QtyRemaining, status); err != nil {
					return err
				}

				total := line.Price.Mul(decimal.NewFromInt(alloc.Qty))
				sale.Items = append(sale.Items, entity.SaleItem{
					ID:            uuid.New().String(),
					SaleID:        sale.ID,
					LineNo:        len(sale.Items),
					ProductID:     product.ID,
					LotID:         alloc.Lot.ID,
					Quantity:      alloc.Qty,
					Price:         line.Price,
					PurchasePrice: alloc.UnitCost,
					Total:         total,
					Returnable:    product.Returnable,
					RefundAmount:  decimal.Zero,
				})
				subTotal = subTotal.Add(total)
				totalCOGS = totalCOGS.Add(decimal.NewFromInt(alloc.Qty).Mul(alloc.UnitCost))
			}

			// Resincronizar el agregado con el valor restante de los lotes.
			product.Quantity -= line.Quantity
			product.TotalCost = costing.RemainingValue(lots)
			if err := productRepo.UpdateStock(product.ID, product.Quantity, product.TotalCost); err != nil {
				return err
			}
		}

		sale.SubTotal = subTotal
		sale.VAT = subTotal.Mul(uc.cfg.VATRate)
		sale.GrandTotal = subTotal.Add(sale.VAT).Add(sale.Shipping).Sub(sale.Discount)
		sale.COGS = totalCOGS
		sale.Profit = sale.GrandTotal.Sub(totalCOGS)

		invoiceNo, err := nextInvoiceNo(counterRepo, uc.cfg.InvoicePrefix, now)
		if err != nil {
			return err
		}
		sale.InvoiceNo = invoiceNo

		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale), nil
}

// lockProducts bloquea (FOR UPDATE) los productos de la venta en orden de ID.
func lockProducts(productRepo repository.ProductRepository, items []dto.SaleLineRequest) (map[string]*entity.Product, error) {
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}
	sort.Strings(ids)

	products := make(map[string]*entity.Product, len(ids))
	for _, id := range ids {
		p, err := productRepo.GetByIDForUpdate(id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		products[id] = p
	}
	return products, nil
}

// nextInvoiceNo obtiene el siguiente número de factura del contador anual:
// <prefijo>-<aa><secuencia de 5 dígitos>, ej. AL-2500042.
func nextInvoiceNo(counterRepo repository.CounterRepository, prefix string, now time.Time) (string, error) {
	year := now.Year()
	seq, err := counterRepo.Next(fmt.Sprintf("invoice-%d", year))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%02d%05d", prefix, year%100, seq), nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func toSaleResponse(sale *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		InvoiceNo:     sale.InvoiceNo,
		Customer:      dto.CustomerSnapshotDTO{Name: sale.Customer.Name, Phone: sale.Customer.Phone},
		Items:         make([]dto.SaleItemResponse, 0, len(sale.Items)),
		SubTotal:      sale.SubTotal,
		Discount:      sale.Discount,
		VAT:           sale.VAT,
		Shipping:      sale.Shipping,
		GrandTotal:    sale.GrandTotal,
		COGS:          sale.COGS,
		Profit:        sale.Profit,
		PaymentMethod: sale.PaymentMethod,
		SellAt:        sale.SellAt,
		EmployeeID:    sale.EmployeeID,
		SalesNote:     sale.SalesNote,
		Status:        sale.Status,
		CreatedAt:     sale.CreatedAt,
	}
	for _, it := range sale.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:            it.ID,
			LineNo:        it.LineNo,
			ProductID:     it.ProductID,
			LotID:         it.LotID,
			Quantity:      it.Quantity,
			Price:         it.Price,
			PurchasePrice: it.PurchasePrice,
			Total:         it.Total,
			Returnable:    it.Returnable,
			Refunded:      it.Refunded,
			RefundAmount:  it.RefundAmount,
		})
	}
	return resp
}
