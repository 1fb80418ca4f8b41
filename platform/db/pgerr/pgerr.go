package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

func IsUniqueViolation(err error) bool { return hasCode(err, uniqueViolation) }

func IsForeignKeyViolation(err error) bool { return hasCode(err, foreignKeyViolation) }

func IsCheckViolation(err error) bool { return hasCode(err, checkViolation) }

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}
