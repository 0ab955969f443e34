package dto

import "strings"

// AddMarkForm records a subject score
type AddMarkForm struct {
	StudentID int64   `form:"student_id" validate:"required,gt=0"`
	Subject   string  `form:"subject" validate:"required"`
	Semester  int     `form:"semester" validate:"required,gte=1"`
	Score     float64 `form:"score" validate:"gte=0"`
}

// UpdateMarkForm rewrites a mark
type UpdateMarkForm struct {
	MarkID   int64   `form:"mark_id" validate:"required,gt=0"`
	Subject  string  `form:"subject" validate:"required"`
	Semester int     `form:"semester" validate:"required,gte=1"`
	Score    float64 `form:"score" validate:"gte=0"`
}

// DeleteMarkForm identifies a mark
type DeleteMarkForm struct {
	MarkID int64 `form:"mark_id" validate:"required,gt=0"`
}

// AddPlacementForm records a job offer. Salary and date are optional.
type AddPlacementForm struct {
	StudentID  int64  `form:"student_id" validate:"required,gt=0"`
	Company    string `form:"company" validate:"required"`
	Role       string `form:"role" validate:"required"`
	Salary     string `form:"salary" validate:"omitempty,numeric"`
	DatePlaced string `form:"datePlaced"`
}

// UpdatePlacementForm rewrites the offer details of a placement
type UpdatePlacementForm struct {
	PlacementID int64  `form:"placement_id" validate:"required,gt=0"`
	Company     string `form:"company" validate:"required"`
	Role        string `form:"role" validate:"required"`
	Salary      string `form:"salary" validate:"omitempty,numeric"`
	DatePlaced  string `form:"datePlaced"`
}

// PlacementAcceptedForm toggles acceptance. An unchecked checkbox is not posted.
type PlacementAcceptedForm struct {
	PlacementID int64  `form:"placement_id" validate:"required,gt=0"`
	StudentID   int64  `form:"student_id" validate:"required,gt=0"`
	IsAccepted  string `form:"is_accepted"`
}

// Accepted reports whether the checkbox was ticked
func (f PlacementAcceptedForm) Accepted() bool {
	return f.IsAccepted != ""
}

// DeletePlacementForm identifies a placement
type DeletePlacementForm struct {
	PlacementID int64 `form:"placement_id" validate:"required,gt=0"`
}

func (f *AddMarkForm) Normalize() {
	f.Subject = strings.TrimSpace(f.Subject)
}

func (f *UpdateMarkForm) Normalize() {
	f.Subject = strings.TrimSpace(f.Subject)
}

func (f *AddPlacementForm) Normalize() {
	f.Company = strings.TrimSpace(f.Company)
	f.Role = strings.TrimSpace(f.Role)
	f.Salary = strings.TrimSpace(f.Salary)
	f.DatePlaced = strings.TrimSpace(f.DatePlaced)
}

func (f *UpdatePlacementForm) Normalize() {
	f.Company = strings.TrimSpace(f.Company)
	f.Role = strings.TrimSpace(f.Role)
	f.Salary = strings.TrimSpace(f.Salary)
	f.DatePlaced = strings.TrimSpace(f.DatePlaced)
}
