package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegeportal/internal/db"
	"github.com/yigit/collegeportal/internal/pkg/dberrors"
	"github.com/yigit/collegeportal/internal/pkg/logger"
)

// statement is one formulation of a query. Alternatives differ only in the
// columns they name.
type statement func(ctx context.Context, q db.DB) error

// withColumnFallback runs the first statement and, only when it fails because
// a column does not exist, the next one. Each attempt runs in its own
// transaction (a savepoint when conn is already a transaction) so a failed
// attempt leaves the enclosing transaction usable. The last attempt's error
// is returned as is.
func withColumnFallback(ctx context.Context, conn db.DB, op string, attempts ...statement) error {
	if len(attempts) == 0 {
		return fmt.Errorf("%s: no statement to run", op)
	}

	var err error
	for i, attempt := range attempts {
		err = db.WithTransaction(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
			return attempt(ctx, tx)
		})
		if err == nil {
			return nil
		}
		if !dberrors.IsUndefinedColumnError(err) {
			return err
		}
		if i < len(attempts)-1 {
			logger.Warn().Err(err).Str("op", op).Int("attempt", i+1).Msg("Column missing, retrying with fallback statement")
		}
	}

	return dberrors.Classify(err)
}

// noop is a fallback attempt for when nothing is left to write once the
// missing column is dropped.
func noop(context.Context, db.DB) error { return nil }

// isNoRows reports pgx's empty result for QueryRow
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Identifier columns tried in order. Legacy schemas name the key "id".
var (
	markKeys      = []string{"mark_id", "id"}
	placementKeys = []string{"placement_id", "id"}
)

// perKey builds one attempt for each candidate key column
func perKey(keys []string, build func(key string) statement) []statement {
	attempts := make([]statement, 0, len(keys))
	for _, key := range keys {
		attempts = append(attempts, build(key))
	}
	return attempts
}
