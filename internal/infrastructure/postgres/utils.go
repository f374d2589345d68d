package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Los chequeos de unicidad/referencia de los use cases son advisorios bajo
// concurrencia: dos peticiones pueden pasar el pre-chequeo a la vez. Los
// constraints del esquema son el respaldo definitivo y aquí se mapean a los
// mismos errores de dominio que producirían los chequeos.

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
