package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

const clearAcceptedSQL = "UPDATE placements SET is_accepted = $1 WHERE student_id = $2"

func TestSetAcceptedClearsThenSets(t *testing.T) {
	mock := newMock(t)
	repo := NewPlacementRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(clearAcceptedSQL)).
		WithArgs(false, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE placements SET is_accepted = $1 WHERE placement_id = $2 AND student_id = $3")).
		WithArgs(true, int64(9), int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	mock.ExpectCommit()

	require.NoError(t, repo.SetAccepted(context.Background(), 5, 9, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAcceptedFalseOnlyClears(t *testing.T) {
	mock := newMock(t)
	repo := NewPlacementRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(clearAcceptedSQL)).
		WithArgs(false, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))
	mock.ExpectCommit()

	require.NoError(t, repo.SetAccepted(context.Background(), 5, 9, false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAcceptedFallsBackToLegacyKeyInsideTransaction(t *testing.T) {
	mock := newMock(t)
	repo := NewPlacementRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(clearAcceptedSQL)).
		WithArgs(false, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("WHERE placement_id = $2 AND student_id = $3")).
		WithArgs(true, int64(9), int64(5)).
		WillReturnError(undefinedColumn("placement_id"))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE placements SET is_accepted = $1 WHERE id = $2 AND student_id = $3")).
		WithArgs(true, int64(9), int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	mock.ExpectCommit()

	require.NoError(t, repo.SetAccepted(context.Background(), 5, 9, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAcceptedForeignPlacementRollsBack(t *testing.T) {
	mock := newMock(t)
	repo := NewPlacementRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(clearAcceptedSQL)).
		WithArgs(false, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("WHERE placement_id = $2 AND student_id = $3")).
		WithArgs(true, int64(42), int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()
	mock.ExpectRollback()

	err := repo.SetAccepted(context.Background(), 5, 42, true)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
