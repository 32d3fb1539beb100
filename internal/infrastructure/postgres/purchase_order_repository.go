package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const purchaseOrderColumns = `id, order_no, vendor_id, order_date, expected_delivery, status,
	notes, total_amount, created_at, updated_at`

const purchaseOrderItemColumns = `id, purchase_order_id, title, asin, ordered_qty, received_qty,
	purchase_price, total, status`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de persistencia para órdenes de compra.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste la orden y sus líneas.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO purchase_orders (`+purchaseOrderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		po.ID, po.OrderNo, po.VendorID, po.OrderDate, po.ExpectedDelivery, po.Status,
		po.Notes, po.TotalAmount, po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	for i := range po.Items {
		item := &po.Items[i]
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO purchase_order_items (`+purchaseOrderItemColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			item.ID, po.ID, item.Title, item.ASIN, item.OrderedQty, item.ReceivedQty,
			item.PurchasePrice, item.Total, item.Status,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden con sus líneas.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	return r.getOne(`SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE id = $1`, id)
}

// GetByIDForUpdate bloquea la orden durante la conciliación de una recepción.
func (r *PurchaseOrderRepo) GetByIDForUpdate(id string) (*entity.PurchaseOrder, error) {
	return r.getOne(`SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *PurchaseOrderRepo) getOne(query, id string) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&po.ID, &po.OrderNo, &po.VendorID, &po.OrderDate, &po.ExpectedDelivery, &po.Status,
		&po.Notes, &po.TotalAmount, &po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if err := r.loadItems(&po); err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *PurchaseOrderRepo) loadItems(po *entity.PurchaseOrder) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+purchaseOrderItemColumns+` FROM purchase_order_items WHERE purchase_order_id = $1 ORDER BY id`, po.ID)
	if err != nil {
		return fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.PurchaseOrderItem
		var poID string
		if err := rows.Scan(
			&item.ID, &poID, &item.Title, &item.ASIN, &item.OrderedQty, &item.ReceivedQty,
			&item.PurchasePrice, &item.Total, &item.Status,
		); err != nil {
			return fmt.Errorf("scan purchase order item: %w", err)
		}
		po.Items = append(po.Items, item)
	}
	return rows.Err()
}

// UpdateReconciliation persiste receivedQty por línea y el estado global de la orden.
func (r *PurchaseOrderRepo) UpdateReconciliation(po *entity.PurchaseOrder) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET status = $2, updated_at = $3 WHERE id = $1`,
		po.ID, po.Status, po.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	for i := range po.Items {
		item := &po.Items[i]
		_, err := r.q.Exec(context.Background(),
			`UPDATE purchase_order_items SET received_qty = $2, status = $3 WHERE id = $1`,
			item.ID, item.ReceivedQty, item.Status,
		)
		if err != nil {
			return fmt.Errorf("update purchase order item: %w", err)
		}
	}
	return nil
}

// Update actualiza campos editables de la cabecera.
func (r *PurchaseOrderRepo) Update(po *entity.PurchaseOrder) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE purchase_orders SET expected_delivery = $2, status = $3, notes = $4,
			total_amount = $5, updated_at = $6
		WHERE id = $1`,
		po.ID, po.ExpectedDelivery, po.Status, po.Notes, po.TotalAmount, po.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// List devuelve órdenes paginadas con sus líneas.
func (r *PurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, int, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+purchaseOrderColumns+` FROM purchase_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var orders []*entity.PurchaseOrder
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(
			&po.ID, &po.OrderNo, &po.VendorID, &po.OrderDate, &po.ExpectedDelivery, &po.Status,
			&po.Notes, &po.TotalAmount, &po.CreatedAt, &po.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan purchase order: %w", err)
		}
		orders = append(orders, &po)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	rows.Close()

	for _, po := range orders {
		if err := r.loadItems(po); err != nil {
			return nil, 0, err
		}
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM purchase_orders`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count purchase orders: %w", err)
	}
	return orders, total, nil
}

// Delete elimina la orden; las líneas caen por ON DELETE CASCADE.
func (r *PurchaseOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}
