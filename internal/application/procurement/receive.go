package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/application/ports"
	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
	"github.com/tu-usuario/retail-pos-api/pkg/logger"
)

// Config parámetros de la conciliación de recepciones.
type Config struct {
	SKUPrefix string // prefijo del SKU sintetizado (ej. "AL")
}

// ReceiveUseCase concilia una entrega contra su orden de compra: crea o
// actualiza productos, registra un lote de costo por línea, avanza el
// receivedQty de la orden (con tope en orderedQty) y deriva su estado.
// Todo dentro de una sola transacción.
type ReceiveUseCase struct {
	txRunner      TxRunner
	receiveRepo   repository.PurchaseReceiveRepository
	orderRepo     repository.PurchaseOrderRepository
	brandRepo     repository.BrandRepository
	conditionRepo repository.ConditionRepository
	qrGen         ports.QRGenerator
	log           *logger.Logger
	cfg           Config
}

// NewReceiveUseCase construye el caso de uso.
func NewReceiveUseCase(
	txRunner TxRunner,
	receiveRepo repository.PurchaseReceiveRepository,
	orderRepo repository.PurchaseOrderRepository,
	brandRepo repository.BrandRepository,
	conditionRepo repository.ConditionRepository,
	qrGen ports.QRGenerator,
	log *logger.Logger,
	cfg Config,
) *ReceiveUseCase {
	if cfg.SKUPrefix == "" {
		cfg.SKUPrefix = "AL"
	}
	return &ReceiveUseCase{
		txRunner:      txRunner,
		receiveRepo:   receiveRepo,
		orderRepo:     orderRepo,
		brandRepo:     brandRepo,
		conditionRepo: conditionRepo,
		qrGen:         qrGen,
		log:           log,
		cfg:           cfg,
	}
}

// resolvedItem línea ya validada y resuelta contra el catálogo, lista para
// aplicarse dentro de la transacción.
type resolvedItem struct {
	in            dto.ReceiveItemRequest
	sku           string
	brandID       string
	conditionID   string
	conditionName string
}

// CreateReceive procesa las líneas de una entrega. Las líneas incompletas o
// con condición/marca no resolubles se saltan; el resto se aplica de forma
// atómica. Devuelve la recepción persistida.
func (uc *ReceiveUseCase) CreateReceive(ctx context.Context, in dto.CreateReceiveRequest) (*dto.PurchaseReceiveResponse, error) {
	if in.PurchaseOrderID == "" || in.VendorID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Resolver catálogo fuera de la transacción: son lecturas puras y así la
	// sección crítica queda lo más corta posible.
	resolved := uc.resolveItems(in.Items)

	now := time.Now()
	receiveDate := now
	if in.ReceiveDate != nil {
		receiveDate = *in.ReceiveDate
	}

	receive := &entity.PurchaseReceive{
		ID:              uuid.New().String(),
		PurchaseOrderID: in.PurchaseOrderID,
		VendorID:        in.VendorID,
		ReceiveDate:     receiveDate,
		Notes:           in.Notes,
		TotalAmount:     decimal.Zero,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := uc.txRunner.RunReceive(ctx, func(
		receiveRepo repository.PurchaseReceiveRepository,
		orderRepo repository.PurchaseOrderRepository,
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		counterRepo repository.CounterRepository,
	) error {
		po, err := orderRepo.GetByIDForUpdate(in.PurchaseOrderID)
		if err != nil {
			return err
		}
		if po == nil {
			return domain.ErrNotFound
		}

		for _, item := range resolved {
			product, err := uc.upsertProduct(productRepo, item, in.VendorID, now)
			if err != nil {
				return err
			}

			lot := &entity.Lot{
				ID:                uuid.New().String(),
				ProductID:         product.ID,
				PurchaseReceiveID: receive.ID,
				PurchaseOrderID:   in.PurchaseOrderID,
				VendorID:          in.VendorID,
				QtyReceived:       item.in.ReceivedQty,
				QtyRemaining:      item.in.ReceivedQty,
				UnitCost:          item.in.PurchasePrice,
				Status:            entity.LotStatusAvailable,
				ReceivedAt:        receiveDate,
			}
			if err := lotRepo.Create(lot); err != nil {
				return err
			}

			applyToOrderLine(po, item.in)

			lineTotal := item.in.PurchasePrice.Mul(decimal.NewFromInt(item.in.ReceivedQty))
			receive.Items = append(receive.Items, entity.PurchaseReceiveItem{
				ID:            uuid.New().String(),
				ItemID:        item.in.ItemID,
				ProductID:     product.ID,
				Title:         item.in.Title,
				ASIN:          item.in.ASIN,
				BrandID:       item.brandID,
				ConditionID:   item.conditionID,
				PurchasePrice: item.in.PurchasePrice,
				SalePrice:     item.in.SalePrice,
				OrderedQty:    item.in.OrderedQty,
				ReceivedQty:   item.in.ReceivedQty,
				Total:         lineTotal,
				Status:        defaultStatus(item.in.Status),
			})
			receive.TotalAmount = receive.TotalAmount.Add(lineTotal)
		}

		// Derivar el estado de la orden de sus líneas y reflejarlo en la
		// recepción.
		if po.AllReceived() {
			po.Status = entity.POStatusCompleted
		} else {
			po.Status = entity.POStatusPartially
		}
		po.UpdatedAt = now
		if err := orderRepo.UpdateReconciliation(po); err != nil {
			return err
		}
		receive.Status = po.Status

		seq, err := counterRepo.Next("purchase-receive")
		if err != nil {
			return err
		}
		receive.ReceiveNo = fmt.Sprintf("PR-%d", orderNoBase+seq)

		return receiveRepo.Create(receive)
	})
	if err != nil {
		return nil, err
	}

	return toReceiveResponse(receive), nil
}

// resolveItems filtra líneas incompletas y resuelve marca y condición, que
// aceptan id o nombre. Una condición no resoluble descarta la línea porque su
// nombre forma parte del SKU sintetizado.
func (uc *ReceiveUseCase) resolveItems(items []dto.ReceiveItemRequest) []resolvedItem {
	resolved := make([]resolvedItem, 0, len(items))
	for _, item := range items {
		if item.ASIN == "" || item.Title == "" || item.ReceivedQty <= 0 || !item.PurchasePrice.IsPositive() {
			uc.log.Warn().Str("asin", item.ASIN).Str("title", item.Title).
				Msg("línea de recepción incompleta, se salta")
			continue
		}
		condition := uc.resolveCondition(item.Condition)
		if condition == nil {
			uc.log.Warn().Str("asin", item.ASIN).Str("condition", item.Condition).
				Msg("condición no resoluble, se salta la línea")
			continue
		}
		brandID := uc.resolveBrand(item.Brand)
		if brandID == "" {
			uc.log.Warn().Str("asin", item.ASIN).Str("brand", item.Brand).
				Msg("marca no resoluble, se salta la línea")
			continue
		}
		resolved = append(resolved, resolvedItem{
			in:            item,
			sku:           fmt.Sprintf("%s-%s-%s", uc.cfg.SKUPrefix, item.ASIN, condition.Name),
			brandID:       brandID,
			conditionID:   condition.ID,
			conditionName: condition.Name,
		})
	}
	return resolved
}

// resolveCondition acepta un id existente o un nombre de condición.
func (uc *ReceiveUseCase) resolveCondition(value string) *entity.Condition {
	if value == "" {
		return nil
	}
	if _, err := uuid.Parse(value); err == nil {
		cond, err := uc.conditionRepo.GetByID(value)
		if err == nil && cond != nil {
			return cond
		}
	}
	cond, err := uc.conditionRepo.GetByName(value)
	if err != nil || cond == nil {
		return nil
	}
	return cond
}

// resolveBrand acepta un id existente o un nombre de marca.
func (uc *ReceiveUseCase) resolveBrand(value string) string {
	if value == "" {
		return ""
	}
	if _, err := uuid.Parse(value); err == nil {
		brand, err := uc.brandRepo.GetByID(value)
		if err == nil && brand != nil {
			return brand.ID
		}
	}
	brand, err := uc.brandRepo.GetByName(value)
	if err != nil || brand == nil {
		return ""
	}
	return brand.ID
}

// upsertProduct busca el producto por SKU sintetizado. Si existe, suma la
// cantidad recibida, refresca el precio de compra y actualiza el precio de
// venta solo si viene uno positivo; si no existe, lo crea con su código QR.
// En ambos casos TotalCost sube por el valor del lote recibido.
func (uc *ReceiveUseCase) upsertProduct(
	productRepo repository.ProductRepository,
	item resolvedItem,
	vendorID string,
	now time.Time,
) (*entity.Product, error) {
	lotValue := item.in.PurchasePrice.Mul(decimal.NewFromInt(item.in.ReceivedQty))

	product, err := productRepo.GetBySKU(item.sku)
	if err != nil {
		return nil, err
	}
	if product != nil {
		product, err = productRepo.GetByIDForUpdate(product.ID)
		if err != nil {
			return nil, err
		}
		product.Quantity += item.in.ReceivedQty
		product.TotalCost = product.TotalCost.Add(lotValue)
		product.PurchasePrice = item.in.PurchasePrice
		if item.in.SalePrice.IsPositive() {
			product.SalePrice = item.in.SalePrice
		}
		product.UpdatedAt = now
		if err := productRepo.Update(product); err != nil {
			return nil, err
		}
		return product, nil
	}

	qrCode, err := uc.qrGen.DataURL(item.sku)
	if err != nil {
		return nil, err
	}
	product = &entity.Product{
		ID:            uuid.New().String(),
		Title:         item.in.Title,
		SKU:           item.sku,
		ASIN:          item.in.ASIN,
		PurchasePrice: item.in.PurchasePrice,
		SalePrice:     item.in.SalePrice,
		Quantity:      item.in.ReceivedQty,
		TotalCost:     lotValue,
		BrandID:       item.brandID,
		ConditionID:   item.conditionID,
		VendorID:      vendorID,
		Returnable:    true,
		QRCode:        qrCode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// applyToOrderLine suma lo recibido a la línea de la orden referenciada por
// ItemID, con tope en orderedQty: recibir de más nunca infla el avance.
func applyToOrderLine(po *entity.PurchaseOrder, item dto.ReceiveItemRequest) {
	if item.ItemID == "" {
		return
	}
	for i := range po.Items {
		line := &po.Items[i]
		if line.ID != item.ItemID {
			continue
		}
		line.ReceivedQty += item.ReceivedQty
		if line.ReceivedQty > line.OrderedQty {
			line.ReceivedQty = line.OrderedQty
		}
		if line.ReceivedQty >= line.OrderedQty {
			line.Status = entity.POStatusApproved
		}
		return
	}
}

func defaultStatus(s string) string {
	if s == "" {
		return entity.ReceiveItemApproved
	}
	return s
}

// GetByID devuelve una recepción con sus líneas.
func (uc *ReceiveUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseReceiveResponse, error) {
	receive, err := uc.receiveRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receive == nil {
		return nil, domain.ErrNotFound
	}
	return toReceiveResponse(receive), nil
}

// List devuelve recepciones paginadas, opcionalmente por proveedor.
func (uc *ReceiveUseCase) List(ctx context.Context, page dto.PageRequest, vendorID string) (*dto.PurchaseReceiveListResponse, error) {
	page.DefaultPage()
	var (
		receives []*entity.PurchaseReceive
		total    int
		err      error
	)
	if vendorID != "" {
		receives, total, err = uc.receiveRepo.ListByVendor(vendorID, page.Limit, page.Offset)
	} else {
		receives, total, err = uc.receiveRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	resp := &dto.PurchaseReceiveListResponse{
		Items: make([]dto.PurchaseReceiveResponse, 0, len(receives)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, r := range receives {
		resp.Items = append(resp.Items, *toReceiveResponse(r))
	}
	return resp, nil
}

// Delete elimina el registro de una recepción. No revierte lotes ni el avance
// de la orden: es una corrección documental, no contable.
func (uc *ReceiveUseCase) Delete(ctx context.Context, id string) error {
	receive, err := uc.receiveRepo.GetByID(id)
	if err != nil {
		return err
	}
	if receive == nil {
		return domain.ErrNotFound
	}
	return uc.receiveRepo.Delete(id)
}

func toReceiveResponse(r *entity.PurchaseReceive) *dto.PurchaseReceiveResponse {
	resp := &dto.PurchaseReceiveResponse{
		ID:              r.ID,
		ReceiveNo:       r.ReceiveNo,
		PurchaseOrderID: r.PurchaseOrderID,
		VendorID:        r.VendorID,
		Items:           make([]dto.ReceiveItemResponse, 0, len(r.Items)),
		ReceiveDate:     r.ReceiveDate,
		Status:          r.Status,
		Notes:           r.Notes,
		TotalAmount:     r.TotalAmount,
	}
	for _, it := range r.Items {
		resp.Items = append(resp.Items, dto.ReceiveItemResponse{
			ID:            it.ID,
			ItemID:        it.ItemID,
			ProductID:     it.ProductID,
			Title:         it.Title,
			ASIN:          it.ASIN,
			BrandID:       it.BrandID,
			ConditionID:   it.ConditionID,
			PurchasePrice: it.PurchasePrice,
			SalePrice:     it.SalePrice,
			OrderedQty:    it.OrderedQty,
			ReceivedQty:   it.ReceivedQty,
			Total:         it.Total,
			Status:        it.Status,
		})
	}
	return resp
}
