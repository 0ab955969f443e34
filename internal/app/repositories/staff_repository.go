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

// StaffRepository handles staff database operations
type StaffRepository struct {
	db db.DB
	sb squirrel.StatementBuilderType
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(conn db.DB) *StaffRepository {
	return &StaffRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// List returns all staff members by ascending id, the export order
func (r *StaffRepository) List(ctx context.Context) ([]*models.Staff, error) {
	return r.list(ctx, "staff_id ASC")
}

// ListNewestFirst returns all staff members, most recently added first
func (r *StaffRepository) ListNewestFirst(ctx context.Context) ([]*models.Staff, error) {
	return r.list(ctx, "staff_id DESC")
}

func (r *StaffRepository) list(ctx context.Context, order string) ([]*models.Staff, error) {
	sql, args, err := r.sb.Select("staff_id", "name", "role", "email", "phone").
		From("staff").
		OrderBy(order).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list staff SQL")
		return nil, fmt.Errorf("failed to build list staff query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list staff query")
		return nil, fmt.Errorf("error querying staff: %w", dberrors.Classify(err))
	}
	defer rows.Close()

	members := []*models.Staff{}
	for rows.Next() {
		m := &models.Staff{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Email, &m.Phone); err != nil {
			logger.Error().Err(err).Msg("Error scanning staff row")
			return nil, fmt.Errorf("error scanning staff row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating staff rows")
		return nil, fmt.Errorf("error iterating staff rows: %w", err)
	}

	return members, nil
}

// Create inserts a staff member and sets its ID
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	sql, args, err := r.sb.Insert("staff").
		Columns("name", "role", "email", "phone").
		Values(staff.Name, staff.Role, staff.Email, staff.Phone).
		Suffix("RETURNING staff_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create staff query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&staff.ID); err != nil {
		logger.Error().Err(err).Msg("Error executing create staff query")
		return fmt.Errorf("error creating staff: %w", dberrors.Classify(err))
	}
	return nil
}

// Update updates an existing staff member
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	sql, args, err := r.sb.Update("staff").
		SetMap(map[string]interface{}{
			"name":  staff.Name,
			"role":  staff.Role,
			"email": staff.Email,
			"phone": staff.Phone,
		}).
		Where(squirrel.Eq{"staff_id": staff.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update staff query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("staffID", staff.ID).Msg("Error executing update staff query")
		return fmt.Errorf("error updating staff: %w", dberrors.Classify(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Staff member not found")
	}
	return nil
}

// Delete removes a staff member. An unknown id is a no-op.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("staff").Where(squirrel.Eq{"staff_id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete staff query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("staffID", id).Msg("Error executing delete staff query")
		return fmt.Errorf("error deleting staff: %w", dberrors.Classify(err))
	}
	return nil
}
