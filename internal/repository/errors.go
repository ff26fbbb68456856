package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lshigami/selfcheck/internal/apperror"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// translate maps driver and gorm errors onto apperror kinds. what names the
// entity for the client-facing message, e.g. "test".
func translate(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("%s not found", what)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Conflict(err, "%s already exists", what)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return apperror.Conflict(err, "%s already exists", what)
	}
	return apperror.Storage(err, "database error on %s", what)
}
