package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/db"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/dberrors"
	"github.com/yigit/collegeportal/internal/pkg/logger"
)

// Unique constraints created by the schema migration
const (
	constraintUsername     = "users_username_key"
	constraintStudentEmail = "students_email_key"
)

// UserRepository handles login account operations
type UserRepository struct {
	db db.DB
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(conn db.DB) *UserRepository {
	return &UserRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// GetByUsername looks a user up by exact username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username})
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "username", "password", "user_type").
		From("users").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.Username, &user.Password, &user.UserType)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user: %w", dberrors.Classify(err))
	}

	return user, nil
}

// UsernameTaken reports whether another user (not excludeUserID) owns username.
// Pass 0 to check against every user.
func (r *UserRepository) UsernameTaken(ctx context.Context, username string, excludeUserID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS(").
		From("users").
		Where(squirrel.Eq{"username": username}).
		Where(squirrel.NotEq{"id": excludeUserID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build username check query: %w", err)
	}

	var taken bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&taken); err != nil {
		logger.Error().Err(err).Str("username", username).Msg("Error checking username")
		return false, fmt.Errorf("error checking username: %w", dberrors.Classify(err))
	}
	return taken, nil
}

// CountByType counts accounts with the given role
func (r *UserRepository) CountByType(ctx context.Context, role models.RoleType) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("users").
		Where(squirrel.Eq{"user_type": role}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count users query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting users: %w", dberrors.Classify(err))
	}
	return count, nil
}

// Create inserts a user and sets its ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return insertUser(ctx, r.sb, r.db, user)
}

func insertUser(ctx context.Context, sb squirrel.StatementBuilderType, q db.DB, user *models.User) error {
	sql, args, err := sb.Insert("users").
		Columns("username", "password", "user_type").
		Values(user.Username, user.Password, user.UserType).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&user.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, constraintUsername) {
			return apperrors.NewDuplicateValueError("username", apperrors.MsgUsernameTaken)
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error creating user")
		return fmt.Errorf("error creating user: %w", dberrors.Classify(err))
	}
	return nil
}

// duplicateError maps a unique violation on users or students to the
// matching DuplicateValue error. Other errors are returned unchanged.
func duplicateError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, constraintUsername):
		return apperrors.NewDuplicateValueError("username", apperrors.MsgUsernameTaken)
	case dberrors.IsDuplicateConstraintError(err, constraintStudentEmail):
		return apperrors.NewDuplicateValueError("email", apperrors.MsgEmailTaken)
	default:
		return err
	}
}
