package errorsUtils

import (
	"errors"
	"fmt"
	"regexp"
	"runtime"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeUndefinedTable      = "42P01"
)

func Is(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func IsUniqueViolation(err error) bool {
	return Is(err, CodeUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return Is(err, CodeForeignKeyViolation)
}

// IsUndefinedTable reports a journal table that was never migrated.
func IsUndefinedTable(err error) bool {
	return Is(err, CodeUndefinedTable)
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// WrapPathErr prefixes err with the calling function and line.
func WrapPathErr(err error) error {
	if err == nil {
		return nil
	}
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}

var pathPrefixRe = regexp.MustCompile(`\[[^\[\]]+:\d+\] `)

// Message returns err's text without the prefixes added by WrapPathErr.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return pathPrefixRe.ReplaceAllString(err.Error(), "")
}
