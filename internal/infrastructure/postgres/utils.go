package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de unique_violation. Lo producen los índices únicos de
// order_number, serial_number, username y el parcial de email.
const uniqueViolationCode = "23505"

// isUniqueViolation reporta si err es una violación de constraint único.
// Los adapters lo traducen a domain.ErrDuplicate.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
