package dto

import "strings"

// FacultyForm creates or, with ID, updates a faculty member
type FacultyForm struct {
	ID         int64  `form:"id"`
	Name       string `form:"name" validate:"required"`
	Department string `form:"department"`
	Email      string `form:"email" validate:"omitempty,loose_email"`
	Phone      string `form:"phone"`
}

// StaffForm creates or, with ID, updates a staff member
type StaffForm struct {
	ID    int64  `form:"id"`
	Name  string `form:"name" validate:"required"`
	Role  string `form:"role"`
	Email string `form:"email" validate:"omitempty,loose_email"`
	Phone string `form:"phone"`
}

// Normalize trims every text field, so a blank email or phone is empty
func (f *FacultyForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Department = strings.TrimSpace(f.Department)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
}

// Normalize trims every text field, so a blank email or phone is empty
func (f *StaffForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Role = strings.TrimSpace(f.Role)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
}
