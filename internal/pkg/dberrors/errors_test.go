package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

func TestIsUndefinedColumnError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"undefined column", &pgconn.PgError{Code: CodeUndefinedColumn}, true},
		{"wrapped undefined column", fmt.Errorf("update: %w", &pgconn.PgError{Code: CodeUndefinedColumn}), true},
		{"sentinel", apperrors.ErrSchemaColumnMissing, true},
		{"unique violation", &pgconn.PgError{Code: CodeUniqueViolation}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUndefinedColumnError(tt.err))
		})
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "users_username_key"}

	assert.True(t, IsDuplicateConstraintError(err, "users_username_key"))
	assert.False(t, IsDuplicateConstraintError(err, "students_email_key"))
	assert.True(t, IsUniqueViolation(err))
}

func TestClassify(t *testing.T) {
	err := Classify(&pgconn.PgError{Code: CodeUndefinedColumn})
	assert.ErrorIs(t, err, apperrors.ErrSchemaColumnMissing)

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)

	dup := Classify(&pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "students_user_id_key"})
	assert.ErrorIs(t, dup, apperrors.ErrDuplicateValue)
	assert.True(t, IsDuplicateConstraintError(dup, "students_user_id_key"))

	plain := errors.New("boom")
	assert.Same(t, plain, Classify(plain))
	assert.NoError(t, Classify(nil))
}
