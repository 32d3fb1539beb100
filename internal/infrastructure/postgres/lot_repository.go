package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

const lotColumns = `id, product_id, purchase_receive_id, purchase_order_id, vendor_id,
	qty_received, qty_remaining, unit_cost, status, received_at`

// LotRepo implementación del puerto LotRepository sobre PostgreSQL.
// El orden FIFO lo garantiza el ORDER BY received_at, id: el desempate por id
// hace el orden estable entre lotes recibidos en el mismo instante.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de persistencia para lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un lote nuevo (solo lo hacen las recepciones).
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (` + lotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.ProductID, nullable(lot.PurchaseReceiveID), nullable(lot.PurchaseOrderID),
		nullable(lot.VendorID), lot.QtyReceived, lot.QtyRemaining, lot.UnitCost, lot.Status, lot.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// ListAvailableByProduct devuelve los lotes con existencias en orden FIFO.
func (r *LotRepo) ListAvailableByProduct(productID string) ([]*entity.Lot, error) {
	return r.list(`SELECT `+lotColumns+` FROM lots
		WHERE product_id = $1 AND qty_remaining > 0
		ORDER BY received_at, id`, productID)
}

// ListAvailableByProductForUpdate es la variante con bloqueo de filas para la
// transacción de una venta.
func (r *LotRepo) ListAvailableByProductForUpdate(productID string) ([]*entity.Lot, error) {
	return r.list(`SELECT `+lotColumns+` FROM lots
		WHERE product_id = $1 AND qty_remaining > 0
		ORDER BY received_at, id
		FOR UPDATE`, productID)
}

// ListByProduct devuelve el histórico completo de lotes de un producto.
func (r *LotRepo) ListByProduct(productID string) ([]*entity.Lot, error) {
	return r.list(`SELECT `+lotColumns+` FROM lots
		WHERE product_id = $1
		ORDER BY received_at, id`, productID)
}

func (r *LotRepo) list(query, productID string) ([]*entity.Lot, error) {
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var lots []*entity.Lot
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}
	return lots, rows.Err()
}

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var lot entity.Lot
	err := row.Scan(
		&lot.ID, &lot.ProductID, scanNullable(&lot.PurchaseReceiveID), scanNullable(&lot.PurchaseOrderID),
		scanNullable(&lot.VendorID), &lot.QtyReceived, &lot.QtyRemaining, &lot.UnitCost, &lot.Status, &lot.ReceivedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan lot: %w", err)
	}
	return &lot, nil
}

// UpdateRemaining persiste el decremento de un lote tras una asignación FIFO.
func (r *LotRepo) UpdateRemaining(lotID string, qtyRemaining int64, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE lots SET qty_remaining = $2, status = $3 WHERE id = $1`,
		lotID, qtyRemaining, status,
	)
	if err != nil {
		return fmt.Errorf("update lot remaining: %w", err)
	}
	return nil
}
