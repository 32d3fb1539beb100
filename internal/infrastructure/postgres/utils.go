package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// nullable convierte "" en NULL para columnas de FK opcionales.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullString permite escanear columnas de texto NULLables a string plano
// ("" cuando la columna es NULL).
type nullString struct {
	s *string
}

func (n *nullString) Scan(v any) error {
	if v == nil {
		*n.s = ""
		return nil
	}
	switch t := v.(type) {
	case string:
		*n.s = t
	case []byte:
		*n.s = string(t)
	default:
		return fmt.Errorf("scan null string: tipo inesperado %T", v)
	}
	return nil
}

func scanNullable(s *string) *nullString {
	return &nullString{s: s}
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}
