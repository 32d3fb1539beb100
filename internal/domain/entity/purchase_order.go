package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. El estado global se deriva de sus líneas:
// completed solo cuando cada línea tiene receivedQty == orderedQty.
const (
	POStatusPending    = "pending"
	POStatusApproved   = "approved"
	POStatusProcessing = "processing"
	POStatusPartially  = "partially"
	POStatusCompleted  = "completed"
)

// PurchaseOrder es un compromiso con un proveedor, numerado PO-<secuencial>.
type PurchaseOrder struct {
	ID               string
	OrderNo          string
	VendorID         string
	Items            []PurchaseOrderItem
	OrderDate        time.Time
	ExpectedDelivery *time.Time
	Status           string
	Notes            string
	TotalAmount      decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PurchaseOrderItem es una línea de la orden.
// Invariante: ReceivedQty <= OrderedQty.
type PurchaseOrderItem struct {
	ID            string
	Title         string
	ASIN          string
	OrderedQty    int64
	ReceivedQty   int64
	PurchasePrice decimal.Decimal
	Total         decimal.Decimal
	Status        string // pending | approved
}

// AllReceived indica si cada línea alcanzó su cantidad ordenada.
func (po *PurchaseOrder) AllReceived() bool {
	for i := range po.Items {
		if po.Items[i].ReceivedQty < po.Items[i].OrderedQty {
			return false
		}
	}
	return true
}
