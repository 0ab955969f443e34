package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/validation"
)

// Services defined in this package:
// - AuthService: credential checks
// - StudentService: dashboards and student CRUD, including self-service profile edits
// - AcademicService: marks and placements
// - FacultyService, StaffService: personnel CRUD
// - ExportService: CSV downloads
//
// Each depends on the store interfaces below, which the repositories
// package implements against PostgreSQL.

// UserStore is the login account store
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameTaken(ctx context.Context, username string, excludeUserID int64) (bool, error)
}

// StudentStore is the student record store
type StudentStore interface {
	List(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	Create(ctx context.Context, user *models.User, student *models.Student) error
	Update(ctx context.Context, id int64, patch models.StudentPatch) error
	Delete(ctx context.Context, id int64) error
	EmailTaken(ctx context.Context, email string, excludeUserID int64) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (int64, error)
}

// DepartmentStore reads departments
type DepartmentStore interface {
	List(ctx context.Context) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

// MarksStore is the marks store
type MarksStore interface {
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Mark, error)
	Create(ctx context.Context, mark *models.Mark) error
	Update(ctx context.Context, mark *models.Mark) error
	Delete(ctx context.Context, id int64) error
}

// PlacementStore is the placement store
type PlacementStore interface {
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Placement, error)
	Create(ctx context.Context, placement *models.Placement) error
	Update(ctx context.Context, placement *models.Placement) error
	SetAccepted(ctx context.Context, studentID, placementID int64, accepted bool) error
	Delete(ctx context.Context, id int64) error
}

// FacultyStore is the faculty store
type FacultyStore interface {
	List(ctx context.Context) ([]*models.Faculty, error)
	ListNewestFirst(ctx context.Context) ([]*models.Faculty, error)
	Create(ctx context.Context, faculty *models.Faculty) error
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id int64) error
}

// StaffStore is the staff store
type StaffStore interface {
	List(ctx context.Context) ([]*models.Staff, error)
	ListNewestFirst(ctx context.Context) ([]*models.Staff, error)
	Create(ctx context.Context, staff *models.Staff) error
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id int64) error
}

// fieldMessage pairs a struct field with the message shown when it fails.
// A field of the form "Password.bcrypt_max" matches only that rule.
type fieldMessage struct {
	field   string
	message string
}

// normalizer is implemented by forms that tidy their own input
type normalizer interface {
	Normalize()
}

// validateForm normalizes form, a pointer, then checks it against its
// validate tags. The first entry of order whose field failed decides the
// message; fallback covers the rest.
func validateForm(form interface{}, order []fieldMessage, fallback string) error {
	if n, ok := form.(normalizer); ok {
		n.Normalize()
	}

	err := validation.Struct(form)
	if err == nil {
		return nil
	}

	failures := validation.Failures(err)
	for _, fm := range order {
		field, rule, byRule := strings.Cut(fm.field, ".")
		tag, failed := failures[field]
		if failed && (!byRule || tag == rule) {
			return apperrors.NewValidationError(fm.message)
		}
	}
	return apperrors.NewValidationError(fallback)
}

// parseOptionalFloat parses a blank-or-number form value
func parseOptionalFloat(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// parseOptionalID parses a blank-or-integer form value
func parseOptionalID(value string) (*int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
