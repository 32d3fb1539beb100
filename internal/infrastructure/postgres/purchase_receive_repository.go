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

var _ repository.PurchaseReceiveRepository = (*PurchaseReceiveRepo)(nil)

const purchaseReceiveColumns = `id, receive_no, purchase_order_id, vendor_id, receive_date,
	status, notes, total_amount, created_at, updated_at`

const purchaseReceiveItemColumns = `id, purchase_receive_id, item_id, product_id, title, asin,
	brand_id, condition_id, purchase_price, sale_price, ordered_qty, received_qty, total, status`

// PurchaseReceiveRepo implementación del puerto PurchaseReceiveRepository sobre PostgreSQL.
type PurchaseReceiveRepo struct {
	q Querier
}

// NewPurchaseReceiveRepository construye el adaptador de persistencia para recepciones.
func NewPurchaseReceiveRepository(q Querier) *PurchaseReceiveRepo {
	return &PurchaseReceiveRepo{q: q}
}

// Create persiste la recepción y sus líneas.
func (r *PurchaseReceiveRepo) Create(pr *entity.PurchaseReceive) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO purchase_receives (`+purchaseReceiveColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		pr.ID, pr.ReceiveNo, pr.PurchaseOrderID, pr.VendorID, pr.ReceiveDate,
		pr.Status, pr.Notes, pr.TotalAmount, pr.CreatedAt, pr.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase receive: %w", err)
	}
	for i := range pr.Items {
		item := &pr.Items[i]
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO purchase_receive_items (`+purchaseReceiveItemColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			item.ID, pr.ID, nullable(item.ItemID), item.ProductID, item.Title, item.ASIN,
			nullable(item.BrandID), nullable(item.ConditionID), item.PurchasePrice, item.SalePrice,
			item.OrderedQty, item.ReceivedQty, item.Total, item.Status,
		)
		if err != nil {
			return fmt.Errorf("insert purchase receive item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una recepción con sus líneas.
func (r *PurchaseReceiveRepo) GetByID(id string) (*entity.PurchaseReceive, error) {
	var pr entity.PurchaseReceive
	err := r.q.QueryRow(context.Background(),
		`SELECT `+purchaseReceiveColumns+` FROM purchase_receives WHERE id = $1`, id).Scan(
		&pr.ID, &pr.ReceiveNo, &pr.PurchaseOrderID, &pr.VendorID, &pr.ReceiveDate,
		&pr.Status, &pr.Notes, &pr.TotalAmount, &pr.CreatedAt, &pr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase receive: %w", err)
	}
	if err := r.loadItems(&pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *PurchaseReceiveRepo) loadItems(pr *entity.PurchaseReceive) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+purchaseReceiveItemColumns+` FROM purchase_receive_items WHERE purchase_receive_id = $1 ORDER BY id`, pr.ID)
	if err != nil {
		return fmt.Errorf("list purchase receive items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.PurchaseReceiveItem
		var prID string
		if err := rows.Scan(
			&item.ID, &prID, scanNullable(&item.ItemID), &item.ProductID, &item.Title, &item.ASIN,
			scanNullable(&item.BrandID), scanNullable(&item.ConditionID), &item.PurchasePrice, &item.SalePrice,
			&item.OrderedQty, &item.ReceivedQty, &item.Total, &item.Status,
		); err != nil {
			return fmt.Errorf("scan purchase receive item: %w", err)
		}
		pr.Items = append(pr.Items, item)
	}
	return rows.Err()
}

// List devuelve recepciones paginadas.
func (r *PurchaseReceiveRepo) List(limit, offset int) ([]*entity.PurchaseReceive, int, error) {
	return r.listWhere("", nil, limit, offset)
}

// ListByVendor devuelve recepciones de un proveedor.
func (r *PurchaseReceiveRepo) ListByVendor(vendorID string, limit, offset int) ([]*entity.PurchaseReceive, int, error) {
	return r.listWhere(`WHERE vendor_id = $3`, []any{vendorID}, limit, offset)
}

func (r *PurchaseReceiveRepo) listWhere(where string, extra []any, limit, offset int) ([]*entity.PurchaseReceive, int, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.q.Query(context.Background(),
		`SELECT `+purchaseReceiveColumns+` FROM purchase_receives `+where+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list purchase receives: %w", err)
	}
	defer rows.Close()
	var receives []*entity.PurchaseReceive
	for rows.Next() {
		var pr entity.PurchaseReceive
		if err := rows.Scan(
			&pr.ID, &pr.ReceiveNo, &pr.PurchaseOrderID, &pr.VendorID, &pr.ReceiveDate,
			&pr.Status, &pr.Notes, &pr.TotalAmount, &pr.CreatedAt, &pr.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan purchase receive: %w", err)
		}
		receives = append(receives, &pr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	rows.Close()

	for _, pr := range receives {
		if err := r.loadItems(pr); err != nil {
			return nil, 0, err
		}
	}

	countQuery := `SELECT count(*) FROM purchase_receives`
	var countArgs []any
	if len(extra) > 0 {
		countQuery += ` WHERE vendor_id = $1`
		countArgs = extra
	}
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count purchase receives: %w", err)
	}
	return receives, total, nil
}

// UpdateStatus actualiza el estado documental de la recepción.
func (r *PurchaseReceiveRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_receives SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update purchase receive status: %w", err)
	}
	return nil
}

// Delete elimina la recepción; las líneas caen por ON DELETE CASCADE.
func (r *PurchaseReceiveRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_receives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase receive: %w", err)
	}
	return nil
}
