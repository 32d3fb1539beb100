package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-pos-api/internal/application/dto"
	"github.com/tu-usuario/retail-pos-api/internal/application/usecase"
	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeBillRepo struct{ bills map[string]*entity.Bill }

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: map[string]*entity.Bill{}}
}

func (r *fakeBillRepo) Create(b *entity.Bill) error { r.bills[b.ID] = b; return nil }
func (r *fakeBillRepo) GetByID(id string) (*entity.Bill, error) {
	b, ok := r.bills[id]
	if !ok {
		return nil, nil
	}
	return b, nil
}
func (r *fakeBillRepo) List(limit, offset int) ([]*entity.Bill, int, error) {
	var out []*entity.Bill
	for _, b := range r.bills {
		out = append(out, b)
	}
	return out, len(out), nil
}
func (r *fakeBillRepo) ListByVendor(vendorID string, limit, offset int) ([]*entity.Bill, int, error) {
	var out []*entity.Bill
	for _, b := range r.bills {
		if b.VendorID == vendorID {
			out = append(out, b)
		}
	}
	return out, len(out), nil
}
func (r *fakeBillRepo) Update(b *entity.Bill) error { r.bills[b.ID] = b; return nil }
func (r *fakeBillRepo) Delete(id string) error      { delete(r.bills, id); return nil }

type fakeVendorRepo struct{ vendors map[string]*entity.Vendor }

func (r *fakeVendorRepo) Create(v *entity.Vendor) error { r.vendors[v.ID] = v; return nil }
func (r *fakeVendorRepo) GetByID(id string) (*entity.Vendor, error) {
	v, ok := r.vendors[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}
func (r *fakeVendorRepo) List(limit, offset int) ([]*entity.Vendor, int, error) {
	return nil, 0, nil
}
func (r *fakeVendorRepo) Update(v *entity.Vendor) error { r.vendors[v.ID] = v; return nil }
func (r *fakeVendorRepo) Delete(id string) error        { delete(r.vendors, id); return nil }

type fakeOrderRepo struct{ orders map[string]*entity.PurchaseOrder }

func (r *fakeOrderRepo) Create(po *entity.PurchaseOrder) error { r.orders[po.ID] = po; return nil }
func (r *fakeOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	po, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return po, nil
}
func (r *fakeOrderRepo) GetByIDForUpdate(id string) (*entity.PurchaseOrder, error) {
	return r.GetByID(id)
}
func (r *fakeOrderRepo) UpdateReconciliation(po *entity.PurchaseOrder) error { return nil }
func (r *fakeOrderRepo) Update(po *entity.PurchaseOrder) error               { r.orders[po.ID] = po; return nil }
func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, int, error) {
	return nil, 0, nil
}
func (r *fakeOrderRepo) Delete(id string) error { delete(r.orders, id); return nil }

func newBillUC() (*usecase.BillUseCase, *fakeBillRepo) {
	bills := newFakeBillRepo()
	vendors := &fakeVendorRepo{vendors: map[string]*entity.Vendor{
		"v-1": {ID: "v-1", Name: "Importadora Sur"},
	}}
	orders := &fakeOrderRepo{orders: map[string]*entity.PurchaseOrder{
		"po-1": {ID: "po-1", VendorID: "v-1", OrderNo: "PR-1001"},
	}}
	return usecase.NewBillUseCase(bills, vendors, orders), bills
}

func billRequest() dto.CreateBillRequest {
	return dto.CreateBillRequest{
		VendorID: "v-1",
		Items: []dto.BillItemRequest{
			{Description: "Maletas 24\"", Quantity: 10, UnitPrice: dec("40")},
			{Description: "Flete", Quantity: 1, UnitPrice: dec("35")},
		},
		Tax: dec("21.75"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBill_TotalesYEstadoImpago(t *testing.T) {
	uc, bills := newBillUC()

	resp, err := uc.Create(context.Background(), billRequest())
	require.NoError(t, err)

	// 10×40 + 1×35 = 435; total = 435 + 21.75
	assert.True(t, resp.SubTotal.Equal(dec("435")))
	assert.True(t, resp.TotalAmount.Equal(dec("456.75")))
	assert.Equal(t, entity.BillStatusUnpaid, resp.Status)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].Total.Equal(dec("400")))
	assert.Contains(t, bills.bills, resp.ID)
	assert.False(t, resp.BillDate.IsZero())
}

func TestCreateBill_AbonoParcialYTotal(t *testing.T) {
	uc, _ := newBillUC()

	in := billRequest()
	in.PaidAmount = dec("100")
	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPartial, resp.Status)

	in = billRequest()
	in.PaidAmount = dec("456.75")
	resp, err = uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPaid, resp.Status)
}

func TestCreateBill_ProveedorInexistente(t *testing.T) {
	uc, _ := newBillUC()

	in := billRequest()
	in.VendorID = "v-fantasma"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBill_OrdenDeCompraInexistente(t *testing.T) {
	uc, _ := newBillUC()

	in := billRequest()
	in.PurchaseOrderID = "po-fantasma"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBill_Validaciones(t *testing.T) {
	uc, _ := newBillUC()

	in := billRequest()
	in.Items = nil
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = billRequest()
	in.Items[0].Quantity = 0
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = billRequest()
	in.Tax = dec("-1")
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateBill_AbonoRederivaEstado(t *testing.T) {
	uc, bills := newBillUC()
	created, err := uc.Create(context.Background(), billRequest())
	require.NoError(t, err)

	paid := dec("200")
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateBillRequest{PaidAmount: &paid})
	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPartial, resp.Status)
	assert.Equal(t, entity.BillStatusPartial, bills.bills[created.ID].Status)

	paid = dec("456.75")
	resp, err = uc.Update(context.Background(), created.ID, dto.UpdateBillRequest{PaidAmount: &paid})
	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPaid, resp.Status)
}

func TestUpdateBill_VencimientoYNotas(t *testing.T) {
	uc, _ := newBillUC()
	created, err := uc.Create(context.Background(), billRequest())
	require.NoError(t, err)

	due := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	notes := "pagar por transferencia"
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateBillRequest{
		DueDate: &due,
		Notes:   &notes,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.DueDate)
	assert.True(t, resp.DueDate.Equal(due))
	assert.Equal(t, notes, resp.Notes)
	// Sin abono nuevo el estado no cambia.
	assert.Equal(t, entity.BillStatusUnpaid, resp.Status)
}

func TestDeleteBill_Inexistente(t *testing.T) {
	uc, _ := newBillUC()
	err := uc.Delete(context.Background(), "b-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListBills_FiltraPorProveedor(t *testing.T) {
	uc, bills := newBillUC()
	created, err := uc.Create(context.Background(), billRequest())
	require.NoError(t, err)
	bills.bills["b-otro"] = &entity.Bill{ID: "b-otro", VendorID: "v-2", Status: entity.BillStatusUnpaid}

	resp, err := uc.List(context.Background(), dto.PageRequest{}, "v-1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, created.ID, resp.Items[0].ID)
	assert.Equal(t, 1, resp.Page.Total)
}
