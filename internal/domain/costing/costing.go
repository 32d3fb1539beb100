// Package costing contiene la lógica pura de costeo de inventario:
// asignación FIFO sobre lotes y costo promedio ponderado como respaldo
// cuando el producto no tiene lotes.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
)

// Allocation es el consumo planificado sobre un lote concreto.
type Allocation struct {
	Lot      *entity.Lot
	Qty      int64
	UnitCost decimal.Decimal
}

// FIFOPlan es el resultado de planificar un consumo FIFO.
// Shortfall > 0 significa que los lotes no cubren la cantidad pedida;
// en ese caso el llamador debe abortar (no hay consumo parcial por línea).
type FIFOPlan struct {
	Allocations []Allocation
	Shortfall   int64
}

// TotalCost suma qty × unitCost de todas las asignaciones.
func (p FIFOPlan) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Allocations {
		total = total.Add(decimal.NewFromInt(a.Qty).Mul(a.UnitCost))
	}
	return total
}

// PlanFIFO consume greedy desde el frente de lots (deben venir ordenados por
// receivedAt ascendente) hasta cubrir qtyNeeded. No muta los lotes: devuelve
// el plan para que el llamador aplique los decrementos dentro de su transacción.
func PlanFIFO(lots []*entity.Lot, qtyNeeded int64) FIFOPlan {
	plan := FIFOPlan{}
	remaining := qtyNeeded
	for _, lot := range lots {
		if remaining <= 0 {
			break
		}
		if lot.QtyRemaining <= 0 {
			continue
		}
		take := lot.QtyRemaining
		if take > remaining {
			take = remaining
		}
		plan.Allocations = append(plan.Allocations, Allocation{
			Lot:      lot,
			Qty:      take,
			UnitCost: lot.UnitCost,
		})
		remaining -= take
	}
	plan.Shortfall = remaining
	return plan
}

// WeightedAverageCost devuelve totalCost/quantity, o fallback si quantity <= 0
// o totalCost no es positivo. Nunca divide por cero.
func WeightedAverageCost(totalCost decimal.Decimal, quantity int64, fallback decimal.Decimal) decimal.Decimal {
	if quantity <= 0 || !totalCost.IsPositive() {
		return fallback
	}
	return totalCost.Div(decimal.NewFromInt(quantity))
}

// RemainingValue suma qtyRemaining × unitCost de los lotes: el valor que debe
// reflejar Product.TotalCost tras cada operación.
func RemainingValue(lots []*entity.Lot) decimal.Decimal {
	total := decimal.Zero
	for _, lot := range lots {
		if lot.QtyRemaining <= 0 {
			continue
		}
		total = total.Add(decimal.NewFromInt(lot.QtyRemaining).Mul(lot.UnitCost))
	}
	return total
}

// TotalRemaining suma las cantidades restantes de los lotes.
func TotalRemaining(lots []*entity.Lot) int64 {
	var total int64
	for _, lot := range lots {
		if lot.QtyRemaining > 0 {
			total += lot.QtyRemaining
		}
	}
	return total
}
