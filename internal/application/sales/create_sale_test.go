package sales_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/application/sales"
	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products  map[string]*entity.Product
	lots      map[string][]*entity.Lot // por producto, en orden FIFO
	sales     map[string]*entity.Sale
	employees map[string]*entity.Employee
	counters  map[string]int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  map[string]*entity.Product{},
		lots:      map[string][]*entity.Lot{},
		sales:     map[string]*entity.Sale{},
		employees: map[string]*entity.Employee{},
		counters:  map[string]int64{},
	}
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}
func (r *fakeProductRepo) UpdateStock(id string, quantity int64, totalCost decimal.Decimal) error {
	p, ok := r.s.products[id]
	if !ok {
		return fmt.Errorf("producto %s no existe", id)
	}
	p.Quantity = quantity
	p.TotalCost = totalCost
	return nil
}
func (r *fakeProductRepo) List(limit, offset int, search string) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.s.products, id); return nil }
func (r *fakeProductRepo) ReferencedBySales(productID string) (bool, error) {
	for _, sale := range r.s.sales {
		for _, it := range sale.Items {
			if it.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

type fakeLotRepo struct{ s *fakeStore }

func (r *fakeLotRepo) Create(lot *entity.Lot) error {
	r.s.lots[lot.ProductID] = append(r.s.lots[lot.ProductID], lot)
	return nil
}
func (r *fakeLotRepo) ListAvailableByProduct(productID string) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, lot := range r.s.lots[productID] {
		if lot.QtyRemaining > 0 {
			out = append(out, lot)
		}
	}
	return out, nil
}
func (r *fakeLotRepo) ListAvailableByProductForUpdate(productID string) ([]*entity.Lot, error) {
	return r.ListAvailableByProduct(productID)
}
func (r *fakeLotRepo) ListByProduct(productID string) ([]*entity.Lot, error) {
	return r.s.lots[productID], nil
}
func (r *fakeLotRepo) UpdateRemaining(lotID string, qtyRemaining int64, status string) error {
	for _, lots := range r.s.lots {
		for _, lot := range lots {
			if lot.ID == lotID {
				lot.QtyRemaining = qtyRemaining
				lot.Status = status
				return nil
			}
		}
	}
	return fmt.Errorf("lote %s no existe", lotID)
}

type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error { r.s.sales[sale.ID] = sale; return nil }
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	// Copia profunda: las mutaciones solo llegan al store vía Update*.
	cp := *sale
	cp.Items = append([]entity.SaleItem(nil), sale.Items...)
	return &cp, nil
}
func (r *fakeSaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) { return r.GetByID(id) }
func (r *fakeSaleRepo) List(limit, offset int, search string) ([]*entity.Sale, int, error) {
	return nil, 0, nil
}
func (r *fakeSaleRepo) UpdateHeader(sale *entity.Sale) error { r.s.sales[sale.ID] = sale; return nil }
func (r *fakeSaleRepo) UpdateItem(item *entity.SaleItem) error {
	sale, ok := r.s.sales[item.SaleID]
	if !ok {
		return fmt.Errorf("venta %s no existe", item.SaleID)
	}
	for i := range sale.Items {
		if sale.Items[i].ID == item.ID {
			sale.Items[i] = *item
			return nil
		}
	}
	return fmt.Errorf("línea %s no existe", item.ID)
}
func (r *fakeSaleRepo) Delete(id string) error { delete(r.s.sales, id); return nil }

type fakeEmployeeRepo struct{ s *fakeStore }

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error { r.s.employees[e.ID] = e; return nil }
func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.s.employees[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}
func (r *fakeEmployeeRepo) List(limit, offset int) ([]*entity.Employee, int, error) {
	return nil, 0, nil
}
func (r *fakeEmployeeRepo) Update(e *entity.Employee) error { r.s.employees[e.ID] = e; return nil }
func (r *fakeEmployeeRepo) Delete(id string) error          { delete(r.s.employees, id); return nil }

type fakeCounterRepo struct{ s *fakeStore }

func (r *fakeCounterRepo) Next(key string) (int64, error) {
	r.s.counters[key]++
	return r.s.counters[key], nil
}

// fakeTxRunner ejecuta la función directamente sobre los fakes. snapshot/restore
// emulan el rollback: si fn falla, el estado vuelve al punto de partida.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) snapshot() *fakeStore {
	cp := newFakeStore()
	for id, p := range t.s.products {
		pc := *p
		cp.products[id] = &pc
	}
	for pid, lots := range t.s.lots {
		for _, lot := range lots {
			lc := *lot
			cp.lots[pid] = append(cp.lots[pid], &lc)
		}
	}
	for id, sale := range t.s.sales {
		sc := *sale
		sc.Items = append([]entity.SaleItem(nil), sale.Items...)
		cp.sales[id] = &sc
	}
	for id, e := range t.s.employees {
		ec := *e
		cp.employees[id] = &ec
	}
	for k, v := range t.s.counters {
		cp.counters[k] = v
	}
	return cp
}

func (t *fakeTxRunner) restore(snap *fakeStore) {
	t.s.products = snap.products
	t.s.lots = snap.lots
	t.s.sales = snap.sales
	t.s.employees = snap.employees
	t.s.counters = snap.counters
}

func (t *fakeTxRunner) RunSale(_ context.Context, fn func(
	repository.SaleRepository,
	repository.ProductRepository,
	repository.LotRepository,
	repository.CounterRepository,
) error) error {
	snap := t.snapshot()
	err := fn(&fakeSaleRepo{t.s}, &fakeProductRepo{t.s}, &fakeLotRepo{t.s}, &fakeCounterRepo{t.s})
	if err != nil {
		t.restore(snap)
	}
	return err
}

func (t *fakeTxRunner) RunRefund(_ context.Context, fn func(
	repository.SaleRepository,
	repository.ProductRepository,
) error) error {
	snap := t.snapshot()
	err := fn(&fakeSaleRepo{t.s}, &fakeProductRepo{t.s})
	if err != nil {
		t.restore(snap)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedStore() *fakeStore {
	s := newFakeStore()
	s.employees["emp-1"] = &entity.Employee{ID: "emp-1", Name: "Laura"}
	return s
}

func seedProduct(s *fakeStore, id string, qty int64, totalCost, salePrice decimal.Decimal) {
	s.products[id] = &entity.Product{
		ID: id, Title: "Producto " + id, SKU: "SKU-" + id,
		Quantity: qty, TotalCost: totalCost, SalePrice: salePrice,
		Returnable: true,
	}
}

func seedLot(s *fakeStore, id, productID string, qty int64, unitCost decimal.Decimal, receivedAt time.Time) {
	s.lots[productID] = append(s.lots[productID], &entity.Lot{
		ID: id, ProductID: productID,
		QtyReceived: qty, QtyRemaining: qty,
		UnitCost: unitCost, Status: entity.LotStatusAvailable,
		ReceivedAt: receivedAt,
	})
}

func newSaleUC(s *fakeStore) *sales.CreateSaleUseCase {
	return sales.NewCreateSaleUseCase(
		&fakeTxRunner{s}, &fakeEmployeeRepo{s}, &fakeProductRepo{s},
		sales.Config{InvoicePrefix: "AL", VATRate: dec("0.05")},
	)
}

func saleRequest(items ...dto.SaleLineRequest) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		Customer:   dto.CustomerSnapshotDTO{Name: "Cliente Uno", Phone: "555-0001"},
		Items:      items,
		EmployeeID: "emp-1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale — asignación FIFO
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_FIFOConsumeDosLotes(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 7, dec("80"), dec("20"))
	base := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	seedLot(s, "lote-viejo", "p1", 2, dec("10"), base)
	seedLot(s, "lote-nuevo", "p1", 5, dec("12"), base.AddDate(0, 0, 5))

	uc := newSaleUC(s)
	resp, err := uc.CreateSale(context.Background(), saleRequest(
		dto.SaleLineRequest{ProductID: "p1", Quantity: 4, Price: dec("20")},
	))
	require.NoError(t, err)

	// 2 unidades del lote viejo a 10 + 2 del nuevo a 12 → COGS 44
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "lote-viejo", resp.Items[0].LotID)
	assert.Equal(t, int64(2), resp.Items[0].Quantity)
	assert.True(t, resp.Items[0].PurchasePrice.Equal(dec("10")))
	assert.Equal(t, "lote-nuevo", resp.Items[1].LotID)
	assert.Equal(t, int64(2), resp.Items[1].Quantity)
	assert.True(t, resp.Items[1].PurchasePrice.Equal(dec("12")))

	assert.True(t, resp.COGS.Equal(dec("44")), "COGS = 2×10 + 2×12, got %s", resp.COGS)
	assert.True(t, resp.SubTotal.Equal(dec("80")))
	assert.True(t, resp.VAT.Equal(dec("4")), "IVA 5%% del subtotal")
	assert.True(t, resp.GrandTotal.Equal(dec("84")))
	assert.True(t, resp.Profit.Equal(dec("40")), "profit = grandTotal - COGS")

	// El lote viejo quedó consumido, el nuevo con 3 restantes.
	assert.Equal(t, int64(0), s.lots["p1"][0].QtyRemaining)
	assert.Equal(t, entity.LotStatusConsumed, s.lots["p1"][0].Status)
	assert.Equal(t, int64(3), s.lots["p1"][1].QtyRemaining)
	assert.Equal(t, entity.LotStatusAvailable, s.lots["p1"][1].Status)

	// Agregado resincronizado: 3 restantes × 12 = 36
	assert.Equal(t, int64(3), s.products["p1"].Quantity)
	assert.True(t, s.products["p1"].TotalCost.Equal(dec("36")))
}

func TestCreateSale_StockInsuficiente_TodoONada(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 2, dec("20"), dec("15"))
	seedProduct(s, "p2", 1, dec("30"), dec("50"))
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	seedLot(s, "l1", "p1", 2, dec("10"), base)
	seedLot(s, "l2", "p2", 1, dec("30"), base)

	uc := newSaleUC(s)
	// La primera línea cabe; la segunda pide 3 con 1 disponible.
	_, err := uc.CreateSale(context.Background(), saleRequest(
		dto.SaleLineRequest{ProductID: "p1", Quantity: 2, Price: dec("15")},
		dto.SaleLineRequest{ProductID: "p2", Quantity: 3, Price: dec("50")},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada quedó a medias: ni lotes decrementados ni venta persistida.
	assert.Equal(t, int64(2), s.lots["p1"][0].QtyRemaining)
	assert.Equal(t, int64(1), s.lots["p2"][0].QtyRemaining)
	assert.Equal(t, int64(2), s.products["p1"].Quantity)
	assert.Empty(t, s.sales)
}

func TestCreateSale_SinLotes_PromedioPonderado(t *testing.T) {
	s := seedStore()
	// 10 unidades con costo total 100 → costo medio 10
	seedProduct(s, "p1", 10, dec("100"), dec("25"))

	uc := newSaleUC(s)
	resp, err := uc.CreateSale(context.Background(), saleRequest(
		dto.SaleLineRequest{ProductID: "p1", Quantity: 3, Price: dec("25")},
	))
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Empty(t, resp.Items[0].LotID, "sin lote de origen")
	assert.True(t, resp.Items[0].PurchasePrice.Equal(dec("10")))
	assert.True(t, resp.COGS.Equal(dec("30")))

	assert.Equal(t, int64(7), s.products["p1"].Quantity)
	assert.True(t, s.products["p1"].TotalCost.Equal(dec("70")))
}

func TestCreateSale_SinLotes_StockInsuficiente(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 2, dec("20"), dec("25"))

	uc := newSaleUC(s)
	_, err := uc.CreateSale(context.Background(), saleRequest(
		dto.SaleLineRequest{ProductID: "p1", Quantity: 5, Price: dec("25")},
	))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), s.products["p1"].Quantity)
}

func TestCreateSale_NumeroDeFactura(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 10, dec("100"), dec("25"))

	uc := newSaleUC(s)
	first, err := uc.CreateSale(context.Background(), saleRequest(
		dto.SaleLineRequest{ProductID: "p1", Quantity: 1, Price: dec("25")},
	))
	require.NoError(t, err)
	second, err := uc.CreateSale(context.Background(), saleRequest(
		dto.SaleLineRequest{ProductID: "p1", Quantity: 1, Price: dec("25")},
	))
	require.NoError(t, err)

	yy := time.Now().Year() % 100
	assert.Equal(t, fmt.Sprintf("AL-%02d%05d", yy, 1), first.InvoiceNo)
	assert.Equal(t, fmt.Sprintf("AL-%02d%05d", yy, 2), second.InvoiceNo)
}

func TestCreateSale_PrecioCeroUsaPrecioDelProducto(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 5, dec("50"), dec("30"))

	uc := newSaleUC(s)
	resp, err := uc.CreateSale(context.Background(), saleRequest(
		dto.SaleLineRequest{ProductID: "p1", Quantity: 1},
	))
	require.NoError(t, err)
	assert.True(t, resp.Items[0].Price.Equal(dec("30")))
}

func TestCreateSale_SublineasConPosicionEstable(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 7, dec("80"), dec("20"))
	seedProduct(s, "p2", 5, dec("50"), dec("30"))
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	seedLot(s, "l1", "p1", 2, dec("10"), base)
	seedLot(s, "l2", "p1", 5, dec("12"), base.AddDate(0, 0, 3))

	uc := newSaleUC(s)
	resp, err := uc.CreateSale(context.Background(), saleRequest(
		dto.SaleLineRequest{ProductID: "p1", Quantity: 3, Price: dec("20")},
		dto.SaleLineRequest{ProductID: "p2", Quantity: 1, Price: dec("30")},
	))
	require.NoError(t, err)

	// La primera línea se expande en dos sublíneas (dos lotes); la numeración
	// sigue el orden de asignación y es la que direcciona las devoluciones.
	require.Len(t, resp.Items, 3)
	for i, it := range resp.Items {
		assert.Equal(t, i, it.LineNo)
	}
	assert.Equal(t, "l1", resp.Items[0].LotID)
	assert.Equal(t, "l2", resp.Items[1].LotID)
	assert.Empty(t, resp.Items[2].LotID)

	// La venta persistida conserva la misma numeración.
	for i, it := range s.sales[resp.ID].Items {
		assert.Equal(t, i, it.LineNo)
	}
}

func TestCreateSale_CanalPorDefecto(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 10, dec("100"), dec("25"))
	uc := newSaleUC(s)

	// Sin canal: queda "shop".
	resp, err := uc.CreateSale(context.Background(), saleRequest(
		dto.SaleLineRequest{ProductID: "p1", Quantity: 1, Price: dec("25")},
	))
	require.NoError(t, err)
	assert.Equal(t, entity.ChannelShop, resp.SellAt)
	assert.Equal(t, entity.ChannelShop, s.sales[resp.ID].SellAt)

	// Canal explícito: se persiste tal cual.
	req := saleRequest(dto.SaleLineRequest{ProductID: "p1", Quantity: 1, Price: dec("25")})
	req.SellAt = entity.ChannelAmazon
	resp, err = uc.CreateSale(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, entity.ChannelAmazon, s.sales[resp.ID].SellAt)
}

func TestCreateSale_Validaciones(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 5, dec("50"), dec("30"))
	uc := newSaleUC(s)

	// Sin líneas
	_, err := uc.CreateSale(context.Background(), saleRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Cantidad inválida
	_, err = uc.CreateSale(context.Background(), saleRequest(
		dto.SaleLineRequest{ProductID: "p1", Quantity: 0},
	))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Empleado inexistente
	req := saleRequest(dto.SaleLineRequest{ProductID: "p1", Quantity: 1})
	req.EmployeeID = "emp-fantasma"
	_, err = uc.CreateSale(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	// Producto inexistente
	_, err = uc.CreateSale(context.Background(), saleRequest(
		dto.SaleLineRequest{ProductID: "p-fantasma", Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Refund
// ──────────────────────────────────────────────────────────────────────────────

func createPaidSale(t *testing.T, s *fakeStore, uc *sales.CreateSaleUseCase) *dto.SaleResponse {
	t.Helper()
	resp, err := uc.CreateSale(context.Background(), saleRequest(
		dto.SaleLineRequest{ProductID: "p1", Quantity: 3, Price: dec("20")},
	))
	require.NoError(t, err)
	return resp
}

func TestRefund_RestauraAgregadoNoLotes(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 5, dec("50"), dec("20"))
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	seedLot(s, "l1", "p1", 5, dec("10"), base)

	saleUC := newSaleUC(s)
	created := createPaidSale(t, s, saleUC)
	require.Equal(t, int64(2), s.products["p1"].Quantity)
	require.Equal(t, int64(2), s.lots["p1"][0].QtyRemaining)

	refundUC := sales.NewRefundUseCase(&fakeTxRunner{s})
	resp, err := refundUC.ProcessRefund(context.Background(), created.ID, dto.RefundRequest{
		ItemIndex: 0, RefundQty: 2,
	})
	require.NoError(t, err)

	// La cantidad vuelve al agregado pero el lote no se toca.
	assert.Equal(t, int64(4), s.products["p1"].Quantity)
	assert.Equal(t, int64(2), s.lots["p1"][0].QtyRemaining)

	// La línea queda con 1 unidad y el importe devuelto acumulado (2 × 20).
	assert.Equal(t, int64(1), resp.Items[0].Quantity)
	assert.True(t, resp.Items[0].RefundAmount.Equal(dec("40")))
	assert.False(t, resp.Items[0].Refunded, "aún quedan unidades vendidas")
}

func TestRefund_DevolucionTotalMarcaRefunded(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 5, dec("50"), dec("20"))
	saleUC := newSaleUC(s)
	created := createPaidSale(t, s, saleUC)

	refundUC := sales.NewRefundUseCase(&fakeTxRunner{s})
	resp, err := refundUC.ProcessRefund(context.Background(), created.ID, dto.RefundRequest{
		ItemIndex: 0, RefundQty: 3,
	})
	require.NoError(t, err)
	assert.True(t, resp.Items[0].Refunded)
	assert.Equal(t, int64(0), resp.Items[0].Quantity)
}

func TestRefund_LineaNoRetornable(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 5, dec("50"), dec("20"))
	s.products["p1"].Returnable = false
	saleUC := newSaleUC(s)
	created := createPaidSale(t, s, saleUC)

	refundUC := sales.NewRefundUseCase(&fakeTxRunner{s})
	_, err := refundUC.ProcessRefund(context.Background(), created.ID, dto.RefundRequest{
		ItemIndex: 0, RefundQty: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNonReturnable)
}

func TestRefund_ExcesoDeCantidad(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 5, dec("50"), dec("20"))
	saleUC := newSaleUC(s)
	created := createPaidSale(t, s, saleUC)

	refundUC := sales.NewRefundUseCase(&fakeTxRunner{s})
	_, err := refundUC.ProcessRefund(context.Background(), created.ID, dto.RefundRequest{
		ItemIndex: 0, RefundQty: 4,
	})
	assert.ErrorIs(t, err, domain.ErrOverRefund)

	// Sin mutaciones
	assert.Equal(t, int64(2), s.products["p1"].Quantity)
}

func TestRefund_PersisteFechaDeActualizacion(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 5, dec("50"), dec("20"))
	saleUC := newSaleUC(s)
	created := createPaidSale(t, s, saleUC)

	past := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s.sales[created.ID].UpdatedAt = past

	refundUC := sales.NewRefundUseCase(&fakeTxRunner{s})
	_, err := refundUC.ProcessRefund(context.Background(), created.ID, dto.RefundRequest{
		ItemIndex: 0, RefundQty: 1,
	})
	require.NoError(t, err)
	assert.True(t, s.sales[created.ID].UpdatedAt.After(past),
		"la cabecera persistida debe reflejar la fecha de la devolución")
}

func TestRefund_VentaInexistente(t *testing.T) {
	s := seedStore()
	refundUC := sales.NewRefundUseCase(&fakeTxRunner{s})
	_, err := refundUC.ProcessRefund(context.Background(), "venta-fantasma", dto.RefundRequest{
		ItemIndex: 0, RefundQty: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteSale_RestauraTodasLasLineas(t *testing.T) {
	s := seedStore()
	seedProduct(s, "p1", 5, dec("50"), dec("20"))
	saleUC := newSaleUC(s)
	created := createPaidSale(t, s, saleUC)
	require.Equal(t, int64(2), s.products["p1"].Quantity)

	refundUC := sales.NewRefundUseCase(&fakeTxRunner{s})
	require.NoError(t, refundUC.DeleteSale(context.Background(), created.ID))

	assert.Equal(t, int64(5), s.products["p1"].Quantity)
	assert.Empty(t, s.sales)
}
