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

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db db.DB
	// Use squirrel instance with placeholder format
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(conn db.DB) *FacultyRepository {
	return &FacultyRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// List returns all faculty members by ascending id, the export order
func (r *FacultyRepository) List(ctx context.Context) ([]*models.Faculty, error) {
	return r.list(ctx, "faculty_id ASC")
}

// ListNewestFirst returns all faculty members, most recently added first
func (r *FacultyRepository) ListNewestFirst(ctx context.Context) ([]*models.Faculty, error) {
	return r.list(ctx, "faculty_id DESC")
}

func (r *FacultyRepository) list(ctx context.Context, order string) ([]*models.Faculty, error) {
	sql, args, err := r.sb.Select("faculty_id", "name", "department", "email", "phone").
		From("faculty").
		OrderBy(order).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list faculty SQL")
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list faculty query")
		return nil, fmt.Errorf("error querying faculty: %w", dberrors.Classify(err))
	}
	defer rows.Close()

	members := []*models.Faculty{}
	for rows.Next() {
		f := &models.Faculty{}
		if err := rows.Scan(&f.ID, &f.Name, &f.Department, &f.Email, &f.Phone); err != nil {
			logger.Error().Err(err).Msg("Error scanning faculty row")
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		members = append(members, f)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating faculty rows")
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return members, nil
}

// Create inserts a faculty member and sets its ID
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Insert("faculty").
		Columns("name", "department", "email", "phone").
		Values(faculty.Name, faculty.Department, faculty.Email, faculty.Phone).
		Suffix("RETURNING faculty_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create faculty query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&faculty.ID); err != nil {
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return fmt.Errorf("error creating faculty: %w", dberrors.Classify(err))
	}
	return nil
}

// Update updates an existing faculty member
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Update("faculty").
		SetMap(map[string]interface{}{
			"name":       faculty.Name,
			"department": faculty.Department,
			"email":      faculty.Email,
			"phone":      faculty.Phone,
		}).
		Where(squirrel.Eq{"faculty_id": faculty.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", faculty.ID).Msg("Error executing update faculty query")
		return fmt.Errorf("error updating faculty: %w", dberrors.Classify(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Faculty member not found")
	}
	return nil
}

// Delete removes a faculty member. An unknown id is a no-op.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("faculty").Where(squirrel.Eq{"faculty_id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty: %w", dberrors.Classify(err))
	}
	return nil
}
