package infra

import (
	"errors"
	"log/slog"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"go.mongodb.org/mongo-driver/mongo"
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

// WrapRepoErr classifies a store error. An explicit kind wins; otherwise the kind is
// derived from the driver error and defaults to KindDBFailure.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	if k == KindDBFailure {
		attrs := []any{slog.String("kind", string(k))}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		slog.Error("Repository error: "+msg, attrs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if pgconv.IsNoRows(err) || errors.Is(err, mongo.ErrNoDocuments) {
		return KindNotFound
	}
	switch pgconv.PgErrorCode(err) {
	case pgconv.CodeUniqueViolation:
		return KindDuplicateKey
	case pgconv.CodeForeignKeyViolation:
		return KindForeignKeyViolated
	case pgconv.CodeExclusionViolation:
		return KindConflict
	}
	if mongo.IsDuplicateKeyError(err) {
		return KindDuplicateKey
	}
	return KindDBFailure
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound               RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure              RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey           RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated     RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict               RepositoryErrorKind = "CONFLICT"
	KindConcurrentModification RepositoryErrorKind = "CONCURRENT_MODIFICATION"
)
