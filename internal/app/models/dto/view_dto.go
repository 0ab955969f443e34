package dto

import (
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/stats"
)

// Flash carries the outcome flags of the previous form post
type Flash struct {
	Success string
	Error   string
}

// LoginView renders the login page
type LoginView struct {
	Flash
}

// StudentDashboardView renders a student's own dashboard. Student is nil
// when the account has no student record.
type StudentDashboardView struct {
	Flash
	Username        string
	Student         *models.Student
	Marks           []*models.Mark
	Placements      []*models.Placement
	Department      *models.Department
	CurrentSemester int
}

// AdminDashboardView renders the student list
type AdminDashboardView struct {
	Flash
	Username    string
	Students    []*models.Student
	Departments []*models.Department
}

// StudentDetailView renders one student for an admin
type StudentDetailView struct {
	Flash
	Student         *models.Student
	Marks           []*models.Mark
	Placements      []*models.Placement
	Department      *models.Department
	Departments     []*models.Department
	CurrentSemester int
	Stats           stats.Summary
}

// StaffView renders the staff page
type StaffView struct {
	Flash
	Staff []*models.Staff
}

// FacultyView renders the faculty page
type FacultyView struct {
	Flash
	Faculty []*models.Faculty
}
