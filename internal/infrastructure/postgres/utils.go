package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de violación de índice único.
const uniqueViolationCode = "23505"

// isUniqueViolation detecta un choque contra un índice único (RNC de empresa,
// número de venta, NCF). Los repos lo traducen a domain.ErrDuplicate.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	// Algunos pools/proxies devuelven el error aplanado como texto.
	return strings.Contains(err.Error(), uniqueViolationCode)
}
