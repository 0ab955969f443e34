package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

// PostgreSQL SQLSTATE codes the repositories react to.
const (
	CodeUniqueViolation = "23505"
	CodeUndefinedColumn = "42703"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	// Check if the error is a PgError, if the code is unique_violation (23505),
	// and if the constraint name matches the provided one.
	return errors.As(err, &pgErr) && pgErr.Code == CodeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation reports a unique violation on any constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CodeUniqueViolation
}

// IsUndefinedColumnError reports whether the statement referenced a column the
// table does not have. Schemas that predate a migration surface this way.
func IsUndefinedColumnError(err error) bool {
	if errors.Is(err, apperrors.ErrSchemaColumnMissing) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CodeUndefinedColumn
}

// IsConnectionError reports failures to reach the database at all.
func IsConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	return pgconn.Timeout(err)
}

// Classify maps a driver error to an application sentinel, keeping the
// original in the chain. Errors it does not recognize are returned unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case IsUndefinedColumnError(err) && !errors.Is(err, apperrors.ErrSchemaColumnMissing):
		return errors.Join(apperrors.ErrSchemaColumnMissing, err)
	case IsUniqueViolation(err) && !errors.Is(err, apperrors.ErrDuplicateValue):
		return errors.Join(apperrors.ErrDuplicateValue, err)
	case IsConnectionError(err):
		return errors.Join(apperrors.ErrStoreUnavailable, err)
	default:
		return err
	}
}
