package repository

// CounterRepository entrega secuencias duraderas y estrictamente crecientes
// por clave (ej. "invoice-2025", "purchase-order"). Next debe ser atómico
// bajo llamadores concurrentes.
type CounterRepository interface {
	Next(key string) (int64, error)
}
