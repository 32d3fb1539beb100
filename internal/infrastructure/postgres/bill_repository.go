package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

const billColumns = `id, vendor_id, purchase_order_id, bill_date, due_date, sub_total, tax,
	total_amount, paid_amount, status, notes, created_at, updated_at`

const billItemColumns = `id, bill_id, product_id, description, quantity, unit_price, total`

// BillRepo implementación del puerto BillRepository sobre PostgreSQL.
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador de persistencia para facturas de proveedor.
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create persiste la factura y sus líneas.
func (r *BillRepo) Create(bill *entity.Bill) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO bills (`+billColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		bill.ID, bill.VendorID, nullable(bill.PurchaseOrderID), bill.BillDate, bill.DueDate,
		bill.SubTotal, bill.Tax, bill.TotalAmount, bill.PaidAmount, bill.Status, bill.Notes,
		bill.CreatedAt, bill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	for i := range bill.Items {
		item := &bill.Items[i]
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO bill_items (`+billItemColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, bill.ID, nullable(item.ProductID), item.Description,
			item.Quantity, item.UnitPrice, item.Total,
		)
		if err != nil {
			return fmt.Errorf("insert bill item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una factura con sus líneas.
func (r *BillRepo) GetByID(id string) (*entity.Bill, error) {
	var b entity.Bill
	err := r.q.QueryRow(context.Background(),
		`SELECT `+billColumns+` FROM bills WHERE id = $1`, id).Scan(
		&b.ID, &b.VendorID, scanNullable(&b.PurchaseOrderID), &b.BillDate, &b.DueDate,
		&b.SubTotal, &b.Tax, &b.TotalAmount, &b.PaidAmount, &b.Status, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	if err := r.loadItems(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BillRepo) loadItems(bill *entity.Bill) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+billItemColumns+` FROM bill_items WHERE bill_id = $1 ORDER BY id`, bill.ID)
	if err != nil {
		return fmt.Errorf("list bill items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.BillItem
		if err := rows.Scan(
			&item.ID, &item.BillID, scanNullable(&item.ProductID), &item.Description,
			&item.Quantity, &item.UnitPrice, &item.Total,
		); err != nil {
			return fmt.Errorf("scan bill item: %w", err)
		}
		bill.Items = append(bill.Items, item)
	}
	return rows.Err()
}

// List devuelve facturas paginadas.
func (r *BillRepo) List(limit, offset int) ([]*entity.Bill, int, error) {
	return r.listWhere("", nil, limit, offset)
}

// ListByVendor devuelve facturas de un proveedor.
func (r *BillRepo) ListByVendor(vendorID string, limit, offset int) ([]*entity.Bill, int, error) {
	return r.listWhere(`WHERE vendor_id = $3`, []any{vendorID}, limit, offset)
}

func (r *BillRepo) listWhere(where string, extra []any, limit, offset int) ([]*entity.Bill, int, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.q.Query(context.Background(),
		`SELECT `+billColumns+` FROM bills `+where+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var bills []*entity.Bill
	for rows.Next() {
		var b entity.Bill
		if err := rows.Scan(
			&b.ID, &b.VendorID, scanNullable(&b.PurchaseOrderID), &b.BillDate, &b.DueDate,
			&b.SubTotal, &b.Tax, &b.TotalAmount, &b.PaidAmount, &b.Status, &b.Notes,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan bill: %w", err)
		}
		bills = append(bills, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	rows.Close()

	for _, b := range bills {
		if err := r.loadItems(b); err != nil {
			return nil, 0, err
		}
	}

	countQuery := `SELECT count(*) FROM bills`
	var countArgs []any
	if len(extra) > 0 {
		countQuery += ` WHERE vendor_id = $1`
		countArgs = extra
	}
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bills: %w", err)
	}
	return bills, total, nil
}

// Update actualiza la cabecera; las líneas son inmutables tras el alta.
func (r *BillRepo) Update(bill *entity.Bill) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE bills SET due_date = $2, paid_amount = $3, status = $4, notes = $5, updated_at = $6
		WHERE id = $1`,
		bill.ID, bill.DueDate, bill.PaidAmount, bill.Status, bill.Notes, bill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	return nil
}

// Delete elimina la factura; las líneas caen por ON DELETE CASCADE.
func (r *BillRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	return nil
}
