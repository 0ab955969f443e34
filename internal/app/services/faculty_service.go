package services

import (
	"context"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/helpers"
)

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	ListFaculty(ctx context.Context) ([]*models.Faculty, error)
	CreateFaculty(ctx context.Context, form dto.FacultyForm) (*models.Faculty, error)
	UpdateFaculty(ctx context.Context, form dto.FacultyForm) error
	DeleteFaculty(ctx context.Context, id int64) error
}

var personnelMessages = []fieldMessage{
	{"Name", "Name is required"},
	{"Email", "Please enter a valid email address"},
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	faculty FacultyStore
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(faculty FacultyStore) FacultyService {
	return &facultyServiceImpl{faculty: faculty}
}

// ListFaculty lists faculty members, most recently added first
func (s *facultyServiceImpl) ListFaculty(ctx context.Context) ([]*models.Faculty, error) {
	return s.faculty.ListNewestFirst(ctx)
}

func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, form dto.FacultyForm) (*models.Faculty, error) {
	faculty, err := facultyFromForm(form)
	if err != nil {
		return nil, err
	}
	if err := s.faculty.Create(ctx, faculty); err != nil {
		return nil, err
	}
	return faculty, nil
}

func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, form dto.FacultyForm) error {
	if form.ID <= 0 {
		return apperrors.NewValidationError("Faculty member is required")
	}
	faculty, err := facultyFromForm(form)
	if err != nil {
		return err
	}
	return s.faculty.Update(ctx, faculty)
}

func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("Faculty member is required")
	}
	return s.faculty.Delete(ctx, id)
}

// facultyFromForm validates the form. Blank email and phone become NULL.
func facultyFromForm(form dto.FacultyForm) (*models.Faculty, error) {
	if err := validateForm(&form, personnelMessages, "Invalid faculty details"); err != nil {
		return nil, err
	}
	return &models.Faculty{
		ID:         form.ID,
		Name:       form.Name,
		Department: form.Department,
		Email:      helpers.NullableString(form.Email),
		Phone:      helpers.NullableString(form.Phone),
	}, nil
}
