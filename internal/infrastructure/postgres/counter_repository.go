package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo secuencias duraderas por clave. El upsert atómico reemplaza el
// patrón buscar-el-máximo-y-sumar-uno, que pierde números bajo concurrencia.
type CounterRepo struct {
	q Querier
}

// NewCounterRepository construye el adaptador del contador. Pasar pool o tx (Querier).
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// Next incrementa y devuelve la secuencia de la clave en una sola sentencia.
// Dos llamadores concurrentes nunca reciben el mismo número: el UPDATE del
// ON CONFLICT serializa sobre la fila.
func (r *CounterRepo) Next(key string) (int64, error) {
	var seq int64
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO counters (key, seq) VALUES ($1, 1)
		ON CONFLICT (key) DO UPDATE SET seq = counters.seq + 1
		RETURNING seq`, key,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next counter %q: %w", key, err)
	}
	return seq, nil
}
