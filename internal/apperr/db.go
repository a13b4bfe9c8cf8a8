package apperr

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports whether err is a Postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// MapDBError classifies a driver error. msg is the client-facing message used
// when the failure is the store's fault.
//   - pgx.ErrNoRows → NotFound
//   - unique violation → Conflict
//   - foreign key, check and not-null violations → Validation
//   - everything else, timeouts included → Store
func MapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return Store(msg, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return Wrap(KindNotFound, "Resource not found", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return Wrap(KindConflict, "Resource already exists", err)
		case pgerrcode.ForeignKeyViolation:
			return Wrap(KindValidation, "Referenced record does not exist", err)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return Wrap(KindValidation, "Invalid field value", err)
		}
	}

	return Store(msg, err)
}
