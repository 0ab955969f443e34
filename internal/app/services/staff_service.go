package services

import (
	"context"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/helpers"
)

// StaffService defines the interface for staff-related operations
type StaffService interface {
	ListStaff(ctx context.Context) ([]*models.Staff, error)
	CreateStaff(ctx context.Context, form dto.StaffForm) (*models.Staff, error)
	UpdateStaff(ctx context.Context, form dto.StaffForm) error
	DeleteStaff(ctx context.Context, id int64) error
}

type staffServiceImpl struct {
	staff StaffStore
}

// NewStaffService creates a new StaffService
func NewStaffService(staff StaffStore) StaffService {
	return &staffServiceImpl{staff: staff}
}

// ListStaff lists staff members, most recently added first
func (s *staffServiceImpl) ListStaff(ctx context.Context) ([]*models.Staff, error) {
	return s.staff.ListNewestFirst(ctx)
}

func (s *staffServiceImpl) CreateStaff(ctx context.Context, form dto.StaffForm) (*models.Staff, error) {
	member, err := staffFromForm(form)
	if err != nil {
		return nil, err
	}
	if err := s.staff.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *staffServiceImpl) UpdateStaff(ctx context.Context, form dto.StaffForm) error {
	if form.ID <= 0 {
		return apperrors.NewValidationError("Staff member is required")
	}
	member, err := staffFromForm(form)
	if err != nil {
		return err
	}
	return s.staff.Update(ctx, member)
}

func (s *staffServiceImpl) DeleteStaff(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("Staff member is required")
	}
	return s.staff.Delete(ctx, id)
}

func staffFromForm(form dto.StaffForm) (*models.Staff, error) {
	if err := validateForm(&form, personnelMessages, "Invalid staff details"); err != nil {
		return nil, err
	}
	return &models.Staff{
		ID:    form.ID,
		Name:  form.Name,
		Role:  form.Role,
		Email: helpers.NullableString(form.Email),
		Phone: helpers.NullableString(form.Phone),
	}, nil
}
