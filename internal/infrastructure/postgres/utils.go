package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// esViolacionUnicidad detecta el código 23505 de Postgres (unique_violation);
// los repositorios lo traducen al error de duplicado del dominio.
func esViolacionUnicidad(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
