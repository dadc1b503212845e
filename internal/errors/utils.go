package errors

import (
	"errors"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error codes the handlers care about
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// maps a storage error to a domain-level class so handlers can
// answer 409/404/400 instead of a generic 500
func Classify(err error) Class {
	if err == nil {
		return ClassUnknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ClassConflict
		case pgForeignKeyViolation, pgNotNullViolation, pgCheckViolation:
			return ClassConstraint
		}

		return ClassUnknown
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ClassNotFound
	}

	return ClassUnknown
}

// reports whether the error is a storage uniqueness violation
func IsConflict(err error) bool {
	return Classify(err) == ClassConflict
}

// reports whether the error means no matching row
func IsNotFound(err error) bool {
	return Classify(err) == ClassNotFound
}

// sanitizes error messages for clients outside development
func sanitize(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()
	env := os.Getenv("ENVIRONMENT")

	if env != "production" {
		return errMsg
	}

	switch {
	case strings.Contains(errMsg, "database") || strings.Contains(errMsg, "sql") ||
		strings.Contains(errMsg, "pgx") || strings.Contains(errMsg, "SQLSTATE"):
		return "database operation failed"
	case strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network"):
		return "connection error occurred"
	case strings.Contains(errMsg, "timeout"):
		return "request timed out"
	case strings.Contains(errMsg, "not found") || strings.Contains(errMsg, "no rows"):
		return "resource not found"
	default:
		return "an error occurred"
	}
}
