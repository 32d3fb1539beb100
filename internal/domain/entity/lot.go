package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote.
const (
	LotStatusAvailable = "available"
	LotStatusConsumed  = "consumed"
)

// Lot es una capa de costo: la cantidad recibida en una entrega concreta.
// QtyReceived y UnitCost son inmutables; QtyRemaining solo decrece por ventas.
// Invariante: 0 <= QtyRemaining <= QtyReceived.
// El orden FIFO de consumo lo define ReceivedAt ascendente.
type Lot struct {
	ID                string
	ProductID         string
	PurchaseReceiveID string
	PurchaseOrderID   string
	VendorID          string
	QtyReceived       int64
	QtyRemaining      int64
	UnitCost          decimal.Decimal
	ReceivedAt        time.Time
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
