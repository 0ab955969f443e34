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

// DepartmentRepository reads departments. The app has no department forms;
// rows come from the startup seed or are maintained directly in the database.
type DepartmentRepository struct {
	db db.DB
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(conn db.DB) *DepartmentRepository {
	return &DepartmentRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

func (r *DepartmentRepository) departmentSelect() squirrel.SelectBuilder {
	return r.sb.Select("d.dept_id", "d.dept_name", "d.head_faculty_id", "f.name").
		From("departments d").
		LeftJoin("faculty f ON f.faculty_id = d.head_faculty_id")
}

// List returns all departments ordered by name
func (r *DepartmentRepository) List(ctx context.Context) ([]*models.Department, error) {
	sql, args, err := r.departmentSelect().OrderBy("d.dept_name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list departments query")
		return nil, fmt.Errorf("error querying departments: %w", dberrors.Classify(err))
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		d := &models.Department{}
		if err := rows.Scan(&d.ID, &d.Name, &d.HeadFacultyID, &d.FacultyHeadName); err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}

// GetByID retrieves a department with its head's name
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	sql, args, err := r.departmentSelect().Where(squirrel.Eq{"d.dept_id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	d := &models.Department{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&d.ID, &d.Name, &d.HeadFacultyID, &d.FacultyHeadName)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Int64("deptID", id).Msg("Error scanning department row")
		return nil, fmt.Errorf("error getting department: %w", dberrors.Classify(err))
	}
	return d, nil
}

// Create inserts a department and sets its ID
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Insert("departments").
		Columns("dept_name", "head_faculty_id").
		Values(department.Name, department.HeadFacultyID).
		Suffix("RETURNING dept_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create department query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&department.ID); err != nil {
		logger.Error().Err(err).Str("name", department.Name).Msg("Error creating department")
		return fmt.Errorf("error creating department: %w", dberrors.Classify(err))
	}
	return nil
}
