package infra

import (
	"errors"
	"log/slog"

	"checkout-engine/internal/pkg/errs"
	"checkout-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr wraps err with a kind. Without an explicit kind it is derived
// from the driver error.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindOf(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	if k == KindDBFailure {
		slog.Error("Repository error: "+msg, slog.String("kind", string(k)), slog.Any("error", err))
	} else {
		slog.Debug("Repository error: "+msg, slog.String("kind", string(k)))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf maps driver errors onto repository kinds.
func KindOf(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgUniqueViolation:
			return KindDuplicateKey
		case PgForeignKeyViolation:
			return KindForeignKeyViolated
		case PgCheckViolation:
			return KindConstraintViolated
		case PgSerializationFailure, PgDeadlockDetected:
			return KindConflict
		}
	}
	return KindDBFailure
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConstraintViolated RepositoryErrorKind = "CONSTRAINT_VIOLATED"
	// optimistic version check lost or serialization failure; safe to retry
	KindConflict RepositoryErrorKind = "CONFLICT"
)

const (
	PgUniqueViolation      = "23505"
	PgForeignKeyViolation  = "23503"
	PgCheckViolation       = "23514"
	PgSerializationFailure = "40001"
	PgDeadlockDetected     = "40P01"
)

// ErrVersionConflict is returned by conditional updates that matched no row.
var ErrVersionConflict = errs.New("row version changed")
