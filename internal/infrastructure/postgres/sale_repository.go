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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, invoice_no, customer_name, customer_phone, sub_total, discount, vat,
	shipping, grand_total, cogs, profit, payment_method, sell_at, employee_id, sales_note,
	status, created_at, updated_at`

const saleItemColumns = `id, sale_id, line_no, product_id, lot_id, quantity, price, purchase_price,
	total, returnable, refunded, refund_amount`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera y todos los ítems de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.InvoiceNo, sale.Customer.Name, sale.Customer.Phone,
		sale.SubTotal, sale.Discount, sale.VAT, sale.Shipping, sale.GrandTotal,
		sale.COGS, sale.Profit, sale.PaymentMethod, sale.SellAt, sale.EmployeeID,
		sale.SalesNote, sale.Status, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	for i := range sale.Items {
		item := &sale.Items[i]
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO sale_items (`+saleItemColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			item.ID, sale.ID, item.LineNo, item.ProductID, nullable(item.LotID), item.Quantity,
			item.Price, item.PurchasePrice, item.Total, item.Returnable, item.Refunded, item.RefundAmount,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus ítems.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.getOne(`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
}

// GetByIDForUpdate bloquea la venta durante un refund o borrado.
func (r *SaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) {
	return r.getOne(`SELECT `+saleColumns+` FROM sales WHERE id = $1 FOR UPDATE`, id)
}

func (r *SaleRepo) getOne(query, id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.InvoiceNo, &s.Customer.Name, &s.Customer.Phone, &s.SubTotal, &s.Discount,
		&s.VAT, &s.Shipping, &s.GrandTotal, &s.COGS, &s.Profit, &s.PaymentMethod, &s.SellAt,
		&s.EmployeeID, &s.SalesNote, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if err := r.loadItems(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SaleRepo) loadItems(sale *entity.Sale) error {
	// Orden de asignación: las devoluciones direccionan por posición, así que
	// la recarga debe devolver las sublíneas como se crearon.
	rows, err := r.q.Query(context.Background(),
		`SELECT `+saleItemColumns+` FROM sale_items WHERE sale_id = $1 ORDER BY line_no`, sale.ID)
	if err != nil {
		return fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(
			&item.ID, &item.SaleID, &item.LineNo, &item.ProductID, scanNullable(&item.LotID), &item.Quantity,
			&item.Price, &item.PurchasePrice, &item.Total, &item.Returnable, &item.Refunded, &item.RefundAmount,
		); err != nil {
			return fmt.Errorf("scan sale item: %w", err)
		}
		sale.Items = append(sale.Items, item)
	}
	return rows.Err()
}

// List devuelve ventas paginadas; search filtra por número de factura o datos
// del cliente. Los ítems se cargan por venta.
func (r *SaleRepo) List(limit, offset int, search string) ([]*entity.Sale, int, error) {
	where := ""
	args := []any{limit, offset}
	if search != "" {
		where = `WHERE invoice_no ILIKE $3 OR customer_name ILIKE $3 OR customer_phone ILIKE $3`
		args = append(args, "%"+search+"%")
	}
	query := `SELECT ` + saleColumns + ` FROM sales ` + where + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var sales []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.InvoiceNo, &s.Customer.Name, &s.Customer.Phone, &s.SubTotal, &s.Discount,
			&s.VAT, &s.Shipping, &s.GrandTotal, &s.COGS, &s.Profit, &s.PaymentMethod, &s.SellAt,
			&s.EmployeeID, &s.SalesNote, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	rows.Close()

	for _, s := range sales {
		if err := r.loadItems(s); err != nil {
			return nil, 0, err
		}
	}

	countQuery := `SELECT count(*) FROM sales`
	countArgs := []any{}
	if search != "" {
		countQuery += ` WHERE invoice_no ILIKE $1 OR customer_name ILIKE $1 OR customer_phone ILIKE $1`
		countArgs = append(countArgs, "%"+search+"%")
	}
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}
	return sales, total, nil
}

// UpdateHeader actualiza campos editables de la cabecera sin tocar ítems ni COGS.
func (r *SaleRepo) UpdateHeader(sale *entity.Sale) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE sales SET discount = $2, vat = $3, shipping = $4, grand_total = $5,
			payment_method = $6, sell_at = $7, sales_note = $8, status = $9, updated_at = $10
		WHERE id = $1`,
		sale.ID, sale.Discount, sale.VAT, sale.Shipping, sale.GrandTotal,
		sale.PaymentMethod, sale.SellAt, sale.SalesNote, sale.Status, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale header: %w", err)
	}
	return nil
}

// UpdateItem persiste cantidad y estado de devolución de una sublínea.
func (r *SaleRepo) UpdateItem(item *entity.SaleItem) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE sale_items SET quantity = $2, refunded = $3, refund_amount = $4 WHERE id = $1`,
		item.ID, item.Quantity, item.Refunded, item.RefundAmount,
	)
	if err != nil {
		return fmt.Errorf("update sale item: %w", err)
	}
	return nil
}

// Delete elimina la venta; los ítems caen por ON DELETE CASCADE.
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}
