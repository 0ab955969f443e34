package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

func TestMarksDeleteUsesCanonicalKey(t *testing.T) {
	mock := newMock(t)
	repo := NewMarksRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM marks WHERE mark_id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarksDeleteFallsBackToLegacyKey(t *testing.T) {
	mock := newMock(t)
	repo := NewMarksRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM marks WHERE mark_id = $1")).
		WithArgs(int64(7)).
		WillReturnError(undefinedColumn("mark_id"))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM marks WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarksUpdateUnknownIDIsNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewMarksRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE marks SET score = $1, semester = $2, subject = $3 WHERE mark_id = $4")).
		WithArgs(88.5, 3, "Physics", int64(404)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), &models.Mark{ID: 404, Subject: "Physics", Semester: 3, Score: 88.5})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarksCreateReturnsID(t *testing.T) {
	mock := newMock(t)
	repo := NewMarksRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO marks (student_id,subject,semester,score) VALUES ($1,$2,$3,$4) RETURNING mark_id")).
		WithArgs(int64(2), "Maths", 1, 91.0).
		WillReturnRows(pgxmock.NewRows([]string{"mark_id"}).AddRow(int64(15)))
	mock.ExpectCommit()

	mark := &models.Mark{StudentID: 2, Subject: "Maths", Semester: 1, Score: 91}
	require.NoError(t, repo.Create(context.Background(), mark))
	assert.Equal(t, int64(15), mark.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
