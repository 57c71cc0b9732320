// Package pgerr translates PostgreSQL driver errors into the common error
// set.
package pgerr

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/employeehub/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueViolation is the SQLSTATE of a unique constraint failure.
const UniqueViolation = "23505"

// IsUniqueViolation reports whether err carries SQLSTATE 23505.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}

// Wrap maps a unique violation to common.ErrorConflict and wraps anything
// else as a db error.
func Wrap(err error) error {
	if IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", common.ErrorConflict, err)
	}
	return fmt.Errorf("db error: %w", err)
}
