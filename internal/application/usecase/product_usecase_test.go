package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
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

type fakeProductRepo struct {
	products   map[string]*entity.Product
	referenced map[string]bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}, referenced: map[string]bool{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(id string, quantity int64, totalCost decimal.Decimal) error {
	p := r.products[id]
	p.Quantity = quantity
	p.TotalCost = totalCost
	return nil
}
func (r *fakeProductRepo) List(limit, offset int, search string) ([]*entity.Product, int, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, len(out), nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }
func (r *fakeProductRepo) ReferencedBySales(id string) (bool, error) {
	return r.referenced[id], nil
}

type fakeLotRepo struct{ lots []*entity.Lot }

func (r *fakeLotRepo) Create(lot *entity.Lot) error { r.lots = append(r.lots, lot); return nil }
func (r *fakeLotRepo) ListAvailableByProduct(productID string) ([]*entity.Lot, error) {
	return r.ListByProduct(productID)
}
func (r *fakeLotRepo) ListAvailableByProductForUpdate(productID string) ([]*entity.Lot, error) {
	return r.ListByProduct(productID)
}
func (r *fakeLotRepo) ListByProduct(productID string) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, lot := range r.lots {
		if lot.ProductID == productID {
			out = append(out, lot)
		}
	}
	return out, nil
}
func (r *fakeLotRepo) UpdateRemaining(lotID string, qtyRemaining int64, status string) error {
	return nil
}

type fakeQRGen struct{}

func (fakeQRGen) DataURL(content string) (string, error) {
	return "data:image/png;base64,qr-" + content, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_GeneraQRYRetornablePorDefecto(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, &fakeLotRepo{}, fakeQRGen{})

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Title:     "Maleta rígida",
		SKU:       "AL-B0TEST01-New",
		SalePrice: dec("90"),
	})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,qr-AL-B0TEST01-New", resp.QRCode)
	assert.True(t, resp.Returnable)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateProduct_SKUDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products["p-1"] = &entity.Product{ID: "p-1", SKU: "AL-B0TEST01-New"}
	uc := usecase.NewProductUseCase(repo, &fakeLotRepo{}, fakeQRGen{})

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Title: "Maleta rígida",
		SKU:   "AL-B0TEST01-New",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateProduct_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), &fakeLotRepo{}, fakeQRGen{})

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Title: "Sin SKU"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProduct_NoTocaStockNiCosto(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products["p-1"] = &entity.Product{
		ID: "p-1", Title: "Maleta", SKU: "AL-1", Quantity: 7, TotalCost: dec("140"),
	}
	uc := usecase.NewProductUseCase(repo, &fakeLotRepo{}, fakeQRGen{})

	title := "Maleta rígida 24\""
	price := dec("95")
	resp, err := uc.Update(context.Background(), "p-1", dto.UpdateProductRequest{
		Title:     &title,
		SalePrice: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, title, resp.Title)
	assert.True(t, resp.SalePrice.Equal(dec("95")))
	// El stock y el costo agregado solo los mueven ventas y recepciones.
	assert.Equal(t, int64(7), resp.Quantity)
	assert.True(t, resp.TotalCost.Equal(dec("140")))
}

func TestDeleteProduct_BloqueadoPorVentas(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products["p-1"] = &entity.Product{ID: "p-1", SKU: "AL-1"}
	repo.referenced["p-1"] = true
	uc := usecase.NewProductUseCase(repo, &fakeLotRepo{}, fakeQRGen{})

	err := uc.Delete(context.Background(), "p-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, repo.products, "p-1", "no debe borrarse")
}

func TestDeleteProduct_SinReferencias(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products["p-1"] = &entity.Product{ID: "p-1", SKU: "AL-1"}
	uc := usecase.NewProductUseCase(repo, &fakeLotRepo{}, fakeQRGen{})

	require.NoError(t, uc.Delete(context.Background(), "p-1"))
	assert.NotContains(t, repo.products, "p-1")
}

func TestListLots_ProductoInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), &fakeLotRepo{}, fakeQRGen{})
	_, err := uc.ListLots(context.Background(), "p-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListLots_DevuelveHistoricoCompleto(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products["p-1"] = &entity.Product{ID: "p-1", SKU: "AL-1"}
	lots := &fakeLotRepo{lots: []*entity.Lot{
		{ID: "l-1", ProductID: "p-1", QtyReceived: 5, QtyRemaining: 0, UnitCost: dec("10"), Status: entity.LotStatusConsumed},
		{ID: "l-2", ProductID: "p-1", QtyReceived: 4, QtyRemaining: 4, UnitCost: dec("12"), Status: entity.LotStatusAvailable},
		{ID: "l-3", ProductID: "otro", QtyReceived: 9, QtyRemaining: 9, UnitCost: dec("8"), Status: entity.LotStatusAvailable},
	}}
	uc := usecase.NewProductUseCase(repo, lots, fakeQRGen{})

	resp, err := uc.ListLots(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, resp, 2, "incluye lotes agotados, excluye otros productos")
	assert.Equal(t, entity.LotStatusConsumed, resp[0].Status)
	assert.True(t, resp[1].UnitCost.Equal(dec("12")))
}
