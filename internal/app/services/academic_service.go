package services

import (
	"context"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/helpers"
)

// AcademicService defines the interface for marks and placement operations
type AcademicService interface {
	AddMark(ctx context.Context, form dto.AddMarkForm) (*models.Mark, error)
	UpdateMark(ctx context.Context, form dto.UpdateMarkForm) error
	DeleteMark(ctx context.Context, markID int64) error

	AddPlacement(ctx context.Context, form dto.AddPlacementForm) (*models.Placement, error)
	UpdatePlacement(ctx context.Context, form dto.UpdatePlacementForm) error
	SetPlacementAccepted(ctx context.Context, form dto.PlacementAcceptedForm) error
	DeletePlacement(ctx context.Context, placementID int64) error
}

var markMessages = []fieldMessage{
	{"StudentID", "Student is required"},
	{"MarkID", "Mark is required"},
	{"Subject", "Subject is required"},
	{"Semester", "Semester must be a positive number"},
	{"Score", "Score cannot be negative"},
}

var placementMessages = []fieldMessage{
	{"StudentID", "Student is required"},
	{"PlacementID", "Placement is required"},
	{"Company", "Company is required"},
	{"Role", "Role is required"},
	{"Salary", "Salary must be a number"},
}

// academicServiceImpl implements the AcademicService interface
type academicServiceImpl struct {
	marks      MarksStore
	placements PlacementStore
}

// NewAcademicService creates a new AcademicService
func NewAcademicService(marks MarksStore, placements PlacementStore) AcademicService {
	return &academicServiceImpl{
		marks:      marks,
		placements: placements,
	}
}

func (s *academicServiceImpl) AddMark(ctx context.Context, form dto.AddMarkForm) (*models.Mark, error) {
	if err := validateForm(&form, markMessages, "Invalid mark"); err != nil {
		return nil, err
	}

	mark := &models.Mark{
		StudentID: form.StudentID,
		Subject:   form.Subject,
		Semester:  form.Semester,
		Score:     form.Score,
	}
	if err := s.marks.Create(ctx, mark); err != nil {
		return nil, err
	}
	return mark, nil
}

func (s *academicServiceImpl) UpdateMark(ctx context.Context, form dto.UpdateMarkForm) error {
	if err := validateForm(&form, markMessages, "Invalid mark"); err != nil {
		return err
	}

	return s.marks.Update(ctx, &models.Mark{
		ID:       form.MarkID,
		Subject:  form.Subject,
		Semester: form.Semester,
		Score:    form.Score,
	})
}

func (s *academicServiceImpl) DeleteMark(ctx context.Context, markID int64) error {
	if markID <= 0 {
		return apperrors.NewValidationError("Mark is required")
	}
	return s.marks.Delete(ctx, markID)
}

func (s *academicServiceImpl) AddPlacement(ctx context.Context, form dto.AddPlacementForm) (*models.Placement, error) {
	if err := validateForm(&form, placementMessages, "Invalid placement"); err != nil {
		return nil, err
	}

	placement := &models.Placement{
		StudentID: form.StudentID,
		Company:   form.Company,
		Role:      form.Role,
	}
	if err := parsePlacementDetails(placement, form.Salary, form.DatePlaced); err != nil {
		return nil, err
	}

	if err := s.placements.Create(ctx, placement); err != nil {
		return nil, err
	}
	return placement, nil
}

func (s *academicServiceImpl) UpdatePlacement(ctx context.Context, form dto.UpdatePlacementForm) error {
	if err := validateForm(&form, placementMessages, "Invalid placement"); err != nil {
		return err
	}

	placement := &models.Placement{
		ID:      form.PlacementID,
		Company: form.Company,
		Role:    form.Role,
	}
	if err := parsePlacementDetails(placement, form.Salary, form.DatePlaced); err != nil {
		return err
	}
	return s.placements.Update(ctx, placement)
}

// SetPlacementAccepted makes the placement the student's only accepted
// offer, or clears acceptance for the student when the box is unticked.
func (s *academicServiceImpl) SetPlacementAccepted(ctx context.Context, form dto.PlacementAcceptedForm) error {
	if err := validateForm(&form, placementMessages, "Invalid placement"); err != nil {
		return err
	}
	return s.placements.SetAccepted(ctx, form.StudentID, form.PlacementID, form.Accepted())
}

func (s *academicServiceImpl) DeletePlacement(ctx context.Context, placementID int64) error {
	if placementID <= 0 {
		return apperrors.NewValidationError("Placement is required")
	}
	return s.placements.Delete(ctx, placementID)
}

func parsePlacementDetails(p *models.Placement, salary, datePlaced string) error {
	var err error
	if p.Salary, err = parseOptionalFloat(salary); err != nil {
		return apperrors.NewValidationError("Salary must be a number")
	}
	if p.DatePlaced, err = helpers.ParseFormDate(datePlaced); err != nil {
		return apperrors.NewValidationError("Invalid placement date")
	}
	return nil
}
