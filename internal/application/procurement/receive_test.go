package procurement_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/application/procurement"
	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
	"github.com/tu-usuario/retail-pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products   map[string]*entity.Product
	lots       []*entity.Lot
	orders     map[string]*entity.PurchaseOrder
	receives   map[string]*entity.PurchaseReceive
	vendors    map[string]*entity.Vendor
	brands     map[string]*entity.Brand
	conditions map[string]*entity.Condition
	counters   map[string]int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:   map[string]*entity.Product{},
		orders:     map[string]*entity.PurchaseOrder{},
		receives:   map[string]*entity.PurchaseReceive{},
		vendors:    map[string]*entity.Vendor{},
		brands:     map[string]*entity.Brand{},
		conditions: map[string]*entity.Condition{},
		counters:   map[string]int64{},
	}
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(id string, quantity int64, totalCost decimal.Decimal) error {
	p := r.s.products[id]
	p.Quantity = quantity
	p.TotalCost = totalCost
	return nil
}
func (r *fakeProductRepo) List(limit, offset int, search string) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.s.products, id); return nil }
func (r *fakeProductRepo) ReferencedBySales(string) (bool, error) { return false, nil }

type fakeLotRepo struct{ s *fakeStore }

func (r *fakeLotRepo) Create(lot *entity.Lot) error { r.s.lots = append(r.s.lots, lot); return nil }
func (r *fakeLotRepo) ListAvailableByProduct(productID string) ([]*entity.Lot, error) {
	return r.ListByProduct(productID)
}
func (r *fakeLotRepo) ListAvailableByProductForUpdate(productID string) ([]*entity.Lot, error) {
	return r.ListByProduct(productID)
}
func (r *fakeLotRepo) ListByProduct(productID string) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, lot := range r.s.lots {
		if lot.ProductID == productID {
			out = append(out, lot)
		}
	}
	return out, nil
}
func (r *fakeLotRepo) UpdateRemaining(lotID string, qtyRemaining int64, status string) error {
	for _, lot := range r.s.lots {
		if lot.ID == lotID {
			lot.QtyRemaining = qtyRemaining
			lot.Status = status
		}
	}
	return nil
}

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(po *entity.PurchaseOrder) error { r.s.orders[po.ID] = po; return nil }
func (r *fakeOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	po, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return po, nil
}
func (r *fakeOrderRepo) GetByIDForUpdate(id string) (*entity.PurchaseOrder, error) {
	return r.GetByID(id)
}
func (r *fakeOrderRepo) UpdateReconciliation(po *entity.PurchaseOrder) error {
	r.s.orders[po.ID] = po
	return nil
}
func (r *fakeOrderRepo) Update(po *entity.PurchaseOrder) error { r.s.orders[po.ID] = po; return nil }
func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, int, error) {
	return nil, 0, nil
}
func (r *fakeOrderRepo) Delete(id string) error { delete(r.s.orders, id); return nil }

type fakeReceiveRepo struct{ s *fakeStore }

func (r *fakeReceiveRepo) Create(pr *entity.PurchaseReceive) error {
	r.s.receives[pr.ID] = pr
	return nil
}
func (r *fakeReceiveRepo) GetByID(id string) (*entity.PurchaseReceive, error) {
	pr, ok := r.s.receives[id]
	if !ok {
		return nil, nil
	}
	return pr, nil
}
func (r *fakeReceiveRepo) List(limit, offset int) ([]*entity.PurchaseReceive, int, error) {
	return nil, 0, nil
}
func (r *fakeReceiveRepo) ListByVendor(vendorID string, limit, offset int) ([]*entity.PurchaseReceive, int, error) {
	return nil, 0, nil
}
func (r *fakeReceiveRepo) UpdateStatus(id, status string) error { return nil }
func (r *fakeReceiveRepo) Delete(id string) error               { delete(r.s.receives, id); return nil }

type fakeVendorRepo struct{ s *fakeStore }

func (r *fakeVendorRepo) Create(v *entity.Vendor) error { r.s.vendors[v.ID] = v; return nil }
func (r *fakeVendorRepo) GetByID(id string) (*entity.Vendor, error) {
	v, ok := r.s.vendors[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}
func (r *fakeVendorRepo) List(limit, offset int) ([]*entity.Vendor, int, error) { return nil, 0, nil }
func (r *fakeVendorRepo) Update(v *entity.Vendor) error                         { r.s.vendors[v.ID] = v; return nil }
func (r *fakeVendorRepo) Delete(id string) error                                { delete(r.s.vendors, id); return nil }

type fakeBrandRepo struct{ s *fakeStore }

func (r *fakeBrandRepo) Create(b *entity.Brand) error { r.s.brands[b.ID] = b; return nil }
func (r *fakeBrandRepo) GetByID(id string) (*entity.Brand, error) {
	b, ok := r.s.brands[id]
	if !ok {
		return nil, nil
	}
	return b, nil
}
func (r *fakeBrandRepo) GetByName(name string) (*entity.Brand, error) {
	for _, b := range r.s.brands {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, nil
}
func (r *fakeBrandRepo) List() ([]*entity.Brand, error) { return nil, nil }
func (r *fakeBrandRepo) Update(b *entity.Brand) error   { r.s.brands[b.ID] = b; return nil }
func (r *fakeBrandRepo) Delete(id string) error         { delete(r.s.brands, id); return nil }

type fakeConditionRepo struct{ s *fakeStore }

func (r *fakeConditionRepo) Create(c *entity.Condition) error { r.s.conditions[c.ID] = c; return nil }
func (r *fakeConditionRepo) GetByID(id string) (*entity.Condition, error) {
	c, ok := r.s.conditions[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeConditionRepo) GetByName(name string) (*entity.Condition, error) {
	for _, c := range r.s.conditions {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeConditionRepo) List() ([]*entity.Condition, error) { return nil, nil }
func (r *fakeConditionRepo) Update(c *entity.Condition) error   { r.s.conditions[c.ID] = c; return nil }
func (r *fakeConditionRepo) Delete(id string) error             { delete(r.s.conditions, id); return nil }

type fakeCounterRepo struct{ s *fakeStore }

func (r *fakeCounterRepo) Next(key string) (int64, error) {
	r.s.counters[key]++
	return r.s.counters[key], nil
}

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) RunReceive(_ context.Context, fn func(
	repository.PurchaseReceiveRepository,
	repository.PurchaseOrderRepository,
	repository.ProductRepository,
	repository.LotRepository,
	repository.CounterRepository,
) error) error {
	return fn(
		&fakeReceiveRepo{t.s}, &fakeOrderRepo{t.s}, &fakeProductRepo{t.s},
		&fakeLotRepo{t.s}, &fakeCounterRepo{t.s},
	)
}

type fakeQRGen struct{}

func (fakeQRGen) DataURL(content string) (string, error) {
	return "data:image/png;base64,qr-" + content, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func seedCatalog(s *fakeStore) {
	s.brands["11111111-1111-1111-1111-111111111111"] = &entity.Brand{
		ID: "11111111-1111-1111-1111-111111111111", Name: "Samsonite",
	}
	s.conditions["22222222-2222-2222-2222-222222222222"] = &entity.Condition{
		ID: "22222222-2222-2222-2222-222222222222", Name: "LikeNew",
	}
}

func seedOrder(s *fakeStore, lines ...entity.PurchaseOrderItem) *entity.PurchaseOrder {
	po := &entity.PurchaseOrder{
		ID:        "po-1",
		OrderNo:   "PO-1001",
		VendorID:  "vendor-1",
		Items:     lines,
		OrderDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:    entity.POStatusProcessing,
	}
	s.orders[po.ID] = po
	return po
}

func newReceiveUC(s *fakeStore) *procurement.ReceiveUseCase {
	return procurement.NewReceiveUseCase(
		&fakeTxRunner{s}, &fakeReceiveRepo{s}, &fakeOrderRepo{s},
		&fakeBrandRepo{s}, &fakeConditionRepo{s}, fakeQRGen{}, testLogger(),
		procurement.Config{SKUPrefix: "AL"},
	)
}

func receiveLine(itemID string, qty int64) dto.ReceiveItemRequest {
	return dto.ReceiveItemRequest{
		ItemID:        itemID,
		Title:         "Maleta rígida",
		ASIN:          "B0TEST01",
		Brand:         "Samsonite",
		Condition:     "LikeNew",
		PurchasePrice: dec("40"),
		SalePrice:     dec("90"),
		OrderedQty:    10,
		ReceivedQty:   qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateReceive
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateReceive_SintetizaSKUYCreaProductoConLote(t *testing.T) {
	s := newFakeStore()
	seedCatalog(s)
	seedOrder(s, entity.PurchaseOrderItem{ID: "line-1", OrderedQty: 10, Status: entity.POStatusPending})

	uc := newReceiveUC(s)
	resp, err := uc.CreateReceive(context.Background(), dto.CreateReceiveRequest{
		PurchaseOrderID: "po-1",
		VendorID:        "vendor-1",
		Items:           []dto.ReceiveItemRequest{receiveLine("line-1", 6)},
	})
	require.NoError(t, err)

	// SKU = <prefijo>-<asin>-<nombre de condición>
	product, err := (&fakeProductRepo{s}).GetBySKU("AL-B0TEST01-LikeNew")
	require.NoError(t, err)
	require.NotNil(t, product, "debe crearse el producto con SKU sintetizado")
	assert.Equal(t, int64(6), product.Quantity)
	assert.True(t, product.TotalCost.Equal(dec("240")), "totalCost = 6 × 40")
	assert.True(t, product.Returnable)
	assert.NotEmpty(t, product.QRCode)

	// Un lote por línea, disponible e íntegro.
	require.Len(t, s.lots, 1)
	assert.Equal(t, product.ID, s.lots[0].ProductID)
	assert.Equal(t, int64(6), s.lots[0].QtyRemaining)
	assert.True(t, s.lots[0].UnitCost.Equal(dec("40")))
	assert.Equal(t, entity.LotStatusAvailable, s.lots[0].Status)

	// Numeración secuencial de recepciones.
	assert.Equal(t, "PR-1001", resp.ReceiveNo)
	assert.True(t, resp.TotalAmount.Equal(dec("240")))
}

func TestCreateReceive_ParcialYCompletado(t *testing.T) {
	s := newFakeStore()
	seedCatalog(s)
	seedOrder(s, entity.PurchaseOrderItem{ID: "line-1", OrderedQty: 10, Status: entity.POStatusPending})

	uc := newReceiveUC(s)
	first, err := uc.CreateReceive(context.Background(), dto.CreateReceiveRequest{
		PurchaseOrderID: "po-1",
		VendorID:        "vendor-1",
		Items:           []dto.ReceiveItemRequest{receiveLine("line-1", 6)},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusPartially, first.Status)
	assert.Equal(t, entity.POStatusPartially, s.orders["po-1"].Status)
	assert.Equal(t, int64(6), s.orders["po-1"].Items[0].ReceivedQty)

	second, err := uc.CreateReceive(context.Background(), dto.CreateReceiveRequest{
		PurchaseOrderID: "po-1",
		VendorID:        "vendor-1",
		Items:           []dto.ReceiveItemRequest{receiveLine("line-1", 4)},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusCompleted, second.Status)
	assert.Equal(t, entity.POStatusCompleted, s.orders["po-1"].Status)
	assert.Equal(t, entity.POStatusApproved, s.orders["po-1"].Items[0].Status)
	assert.Equal(t, "PR-1002", second.ReceiveNo)

	// El producto acumuló ambos lotes.
	product, _ := (&fakeProductRepo{s}).GetBySKU("AL-B0TEST01-LikeNew")
	assert.Equal(t, int64(10), product.Quantity)
	assert.True(t, product.TotalCost.Equal(dec("400")))
	assert.Len(t, s.lots, 2)
}

func TestCreateReceive_ExcesoSeRecortaAlOrdenado(t *testing.T) {
	s := newFakeStore()
	seedCatalog(s)
	seedOrder(s, entity.PurchaseOrderItem{ID: "line-1", OrderedQty: 10, Status: entity.POStatusPending})

	uc := newReceiveUC(s)
	resp, err := uc.CreateReceive(context.Background(), dto.CreateReceiveRequest{
		PurchaseOrderID: "po-1",
		VendorID:        "vendor-1",
		Items:           []dto.ReceiveItemRequest{receiveLine("line-1", 15)},
	})
	require.NoError(t, err)

	// El avance de la orden se recorta a lo ordenado, pero el stock y el lote
	// reflejan lo realmente recibido.
	assert.Equal(t, int64(10), s.orders["po-1"].Items[0].ReceivedQty)
	assert.Equal(t, entity.POStatusCompleted, resp.Status)

	product, _ := (&fakeProductRepo{s}).GetBySKU("AL-B0TEST01-LikeNew")
	assert.Equal(t, int64(15), product.Quantity)
	require.Len(t, s.lots, 1)
	assert.Equal(t, int64(15), s.lots[0].QtyReceived)
}

func TestCreateReceive_LineasInvalidasSeSaltan(t *testing.T) {
	s := newFakeStore()
	seedCatalog(s)
	seedOrder(s,
		entity.PurchaseOrderItem{ID: "line-1", OrderedQty: 10, Status: entity.POStatusPending},
		entity.PurchaseOrderItem{ID: "line-2", OrderedQty: 5, Status: entity.POStatusPending},
	)

	sinASIN := receiveLine("line-2", 3)
	sinASIN.ASIN = ""
	condicionDesconocida := receiveLine("line-2", 3)
	condicionDesconocida.Condition = "Inexistente"
	marcaDesconocida := receiveLine("line-2", 3)
	marcaDesconocida.Brand = "NoExiste"

	uc := newReceiveUC(s)
	resp, err := uc.CreateReceive(context.Background(), dto.CreateReceiveRequest{
		PurchaseOrderID: "po-1",
		VendorID:        "vendor-1",
		Items: []dto.ReceiveItemRequest{
			receiveLine("line-1", 10),
			sinASIN,
			condicionDesconocida,
			marcaDesconocida,
		},
	})
	require.NoError(t, err)

	// Solo la línea válida se aplicó.
	require.Len(t, resp.Items, 1)
	assert.Len(t, s.lots, 1)
	assert.Equal(t, int64(0), s.orders["po-1"].Items[1].ReceivedQty)
	// line-1 completa pero line-2 sin avance → parcial.
	assert.Equal(t, entity.POStatusPartially, s.orders["po-1"].Status)
}

func TestCreateReceive_ResuelveCatalogoPorID(t *testing.T) {
	s := newFakeStore()
	seedCatalog(s)
	seedOrder(s, entity.PurchaseOrderItem{ID: "line-1", OrderedQty: 5, Status: entity.POStatusPending})

	line := receiveLine("line-1", 5)
	line.Brand = "11111111-1111-1111-1111-111111111111"
	line.Condition = "22222222-2222-2222-2222-222222222222"

	uc := newReceiveUC(s)
	_, err := uc.CreateReceive(context.Background(), dto.CreateReceiveRequest{
		PurchaseOrderID: "po-1",
		VendorID:        "vendor-1",
		Items:           []dto.ReceiveItemRequest{line},
	})
	require.NoError(t, err)

	// El nombre de la condición (no el id) entra en el SKU.
	product, _ := (&fakeProductRepo{s}).GetBySKU("AL-B0TEST01-LikeNew")
	require.NotNil(t, product)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", product.BrandID)
}

func TestCreateReceive_ActualizaProductoExistente(t *testing.T) {
	s := newFakeStore()
	seedCatalog(s)
	seedOrder(s, entity.PurchaseOrderItem{ID: "line-1", OrderedQty: 10, Status: entity.POStatusPending})
	s.products["p-ex"] = &entity.Product{
		ID: "p-ex", Title: "Maleta rígida", SKU: "AL-B0TEST01-LikeNew",
		Quantity: 4, TotalCost: dec("100"),
		PurchasePrice: dec("25"), SalePrice: dec("80"),
	}

	uc := newReceiveUC(s)
	_, err := uc.CreateReceive(context.Background(), dto.CreateReceiveRequest{
		PurchaseOrderID: "po-1",
		VendorID:        "vendor-1",
		Items:           []dto.ReceiveItemRequest{receiveLine("line-1", 6)},
	})
	require.NoError(t, err)

	p := s.products["p-ex"]
	assert.Equal(t, int64(10), p.Quantity, "4 existentes + 6 recibidas")
	assert.True(t, p.TotalCost.Equal(dec("340")), "100 + 6×40")
	assert.True(t, p.PurchasePrice.Equal(dec("40")), "precio de compra refrescado")
	assert.True(t, p.SalePrice.Equal(dec("90")), "precio de venta positivo sobrescribe")
}

func TestCreateReceive_SalePriceCeroNoSobrescribe(t *testing.T) {
	s := newFakeStore()
	seedCatalog(s)
	seedOrder(s, entity.PurchaseOrderItem{ID: "line-1", OrderedQty: 10, Status: entity.POStatusPending})
	s.products["p-ex"] = &entity.Product{
		ID: "p-ex", SKU: "AL-B0TEST01-LikeNew", SalePrice: dec("80"),
	}

	line := receiveLine("line-1", 2)
	line.SalePrice = decimal.Zero

	uc := newReceiveUC(s)
	_, err := uc.CreateReceive(context.Background(), dto.CreateReceiveRequest{
		PurchaseOrderID: "po-1",
		VendorID:        "vendor-1",
		Items:           []dto.ReceiveItemRequest{line},
	})
	require.NoError(t, err)
	assert.True(t, s.products["p-ex"].SalePrice.Equal(dec("80")))
}

func TestCreateReceive_OrdenInexistente(t *testing.T) {
	s := newFakeStore()
	seedCatalog(s)

	uc := newReceiveUC(s)
	_, err := uc.CreateReceive(context.Background(), dto.CreateReceiveRequest{
		PurchaseOrderID: "po-fantasma",
		VendorID:        "vendor-1",
		Items:           []dto.ReceiveItemRequest{receiveLine("line-1", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateReceive_Validaciones(t *testing.T) {
	s := newFakeStore()
	uc := newReceiveUC(s)

	_, err := uc.CreateReceive(context.Background(), dto.CreateReceiveRequest{
		VendorID: "vendor-1",
		Items:    []dto.ReceiveItemRequest{receiveLine("line-1", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateReceive(context.Background(), dto.CreateReceiveRequest{
		PurchaseOrderID: "po-1",
		VendorID:        "vendor-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// PurchaseOrderUseCase
// ──────────────────────────────────────────────────────────────────────────────

func newOrderUC(s *fakeStore) *procurement.PurchaseOrderUseCase {
	return procurement.NewPurchaseOrderUseCase(
		&fakeOrderRepo{s}, &fakeVendorRepo{s}, &fakeCounterRepo{s},
	)
}

func TestCreatePurchaseOrder_NumeracionYTotales(t *testing.T) {
	s := newFakeStore()
	s.vendors["vendor-1"] = &entity.Vendor{ID: "vendor-1", Name: "Proveedor Uno"}

	uc := newOrderUC(s)
	resp, err := uc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		VendorID: "vendor-1",
		Items: []dto.PurchaseOrderItemRequest{
			{Title: "Maleta", ASIN: "B0TEST01", OrderedQty: 10, PurchasePrice: dec("40")},
			{Title: "Mochila", ASIN: "B0TEST02", OrderedQty: 5, PurchasePrice: dec("20")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "PO-1001", resp.OrderNo)
	assert.Equal(t, entity.POStatusProcessing, resp.Status)
	assert.True(t, resp.TotalAmount.Equal(dec("500")), "10×40 + 5×20")
	require.Len(t, resp.Items, 2)
	assert.Equal(t, entity.POStatusPending, resp.Items[0].Status)
	assert.Equal(t, int64(0), resp.Items[0].ReceivedQty)

	second, err := uc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		VendorID: "vendor-1",
		Items: []dto.PurchaseOrderItemRequest{
			{Title: "Maleta", OrderedQty: 1, PurchasePrice: dec("40")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "PO-1002", second.OrderNo)
}

func TestCreatePurchaseOrder_ProveedorInexistente(t *testing.T) {
	s := newFakeStore()
	uc := newOrderUC(s)
	_, err := uc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		VendorID: "vendor-fantasma",
		Items: []dto.PurchaseOrderItemRequest{
			{Title: "Maleta", OrderedQty: 1, PurchasePrice: dec("40")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePurchaseOrder_LineasInvalidas(t *testing.T) {
	s := newFakeStore()
	s.vendors["vendor-1"] = &entity.Vendor{ID: "vendor-1", Name: "Proveedor Uno"}
	uc := newOrderUC(s)

	_, err := uc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		VendorID: "vendor-1",
		Items: []dto.PurchaseOrderItemRequest{
			{Title: "Maleta", OrderedQty: 0, PurchasePrice: dec("40")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreatePurchaseOrderRequest{
		VendorID: "vendor-1",
		Items: []dto.PurchaseOrderItemRequest{
			{Title: "Maleta", OrderedQty: 1, PurchasePrice: dec("-5")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
