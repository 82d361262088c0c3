package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reporta si err corresponde a la clase 23505
// (unique_violation) de PostgreSQL: correo de usuario duplicado o
// período de renta repetido para el mismo inquilino.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
