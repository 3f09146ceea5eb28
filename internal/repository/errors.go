package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ── Store error classification ──
//
// gorm's TranslateError is left off so the PostgreSQL constraint name stays
// reachable; the gorm sentinels are still honoured for dialects that set them.

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.Code == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// foreignKeyViolation reports whether err is a foreign key violation and,
// when the driver exposes it, the name of the violated constraint.
func foreignKeyViolation(err error) (bool, string) {
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.Code == pgForeignKeyViolation, pgErr.ConstraintName
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated), ""
}
