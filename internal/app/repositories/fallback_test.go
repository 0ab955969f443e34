package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeportal/internal/db"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func undefinedColumn(column string) error {
	return &pgconn.PgError{Code: "42703", Message: `column "` + column + `" does not exist`}
}

func execStatement(sql string, args ...any) statement {
	return func(ctx context.Context, q db.DB) error {
		_, err := q.Exec(ctx, sql, args...)
		return err
	}
}

func TestWithColumnFallbackFirstAttemptSucceeds(t *testing.T) {
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE first")).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := withColumnFallback(context.Background(), mock, "test",
		execStatement("UPDATE first"),
		execStatement("UPDATE second"),
	)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithColumnFallbackRetriesOnMissingColumn(t *testing.T) {
	mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE first")).WillReturnError(undefinedColumn("dept_id"))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE second")).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := withColumnFallback(context.Background(), mock, "test",
		execStatement("UPDATE first"),
		execStatement("UPDATE second"),
	)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithColumnFallbackDoesNotRetryOtherErrors(t *testing.T) {
	mock := newMock(t)
	boom := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE first")).WillReturnError(boom)
	mock.ExpectRollback()

	err := withColumnFallback(context.Background(), mock, "test",
		execStatement("UPDATE first"),
		execStatement("UPDATE second"),
	)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithColumnFallbackExhausted(t *testing.T) {
	mock := newMock(t)

	for _, sql := range []string{"UPDATE first", "UPDATE second"} {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(sql)).WillReturnError(undefinedColumn("id"))
		mock.ExpectRollback()
	}

	err := withColumnFallback(context.Background(), mock, "test",
		execStatement("UPDATE first"),
		execStatement("UPDATE second"),
	)
	assert.ErrorIs(t, err, apperrors.ErrSchemaColumnMissing)
	assert.NoError(t, mock.ExpectationsWereMet())
}
