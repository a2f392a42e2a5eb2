package postgres

import (
	"errors"
	"fmt"
	"strings"

	"staff-api/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation  = "23505"
	notNullViolation = "23502"
	checkViolation   = "23514"
	dataException    = "22"
)

// translateError maps driver and gorm errors onto domain sentinels.
func translateError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolation:
			return fmt.Errorf("%w: %s", entities.ErrEmployeeExists, pgErrText(pgErr))
		case pgErr.Code == notNullViolation,
			pgErr.Code == checkViolation,
			strings.HasPrefix(pgErr.Code, dataException):
			return fmt.Errorf("%w: %s", entities.ErrStorageValidation, pgErrText(pgErr))
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

func pgErrText(pgErr *pgconn.PgError) string {
	if pgErr.Detail != "" {
		return pgErr.Message + " (" + pgErr.Detail + ")"
	}
	return pgErr.Message
}
