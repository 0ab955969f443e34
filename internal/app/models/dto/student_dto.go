package dto

import "strings"

// AddStudentForm creates a login account and its student record
type AddStudentForm struct {
	Username    string `form:"username" validate:"required,username"`
	Password    string `form:"password" validate:"required,min=6,bcrypt_max"`
	Name        string `form:"name" validate:"required"`
	Email       string `form:"email" validate:"omitempty,loose_email"`
	Address     string `form:"address"`
	DateOfBirth string `form:"dateOfBirth"`
	DeptID      string `form:"deptId" validate:"omitempty,number"`
}

// UpdateStudentForm is a partial edit: nil fields were not posted.
// Posted but blank fields are ignored too, except deptId, where blank
// clears the department.
type UpdateStudentForm struct {
	ID          int64   `form:"id" validate:"required,gt=0"`
	Name        *string `form:"name"`
	Email       *string `form:"email"`
	Address     *string `form:"address"`
	DateOfBirth *string `form:"dateOfBirth"`
	DeptID      *string `form:"deptId"`
}

// DeleteByIDForm identifies a student, staff or faculty record
type DeleteByIDForm struct {
	ID int64 `form:"id" validate:"required,gt=0"`
}

// PersonalInfoForm is a student's edit of their own profile
type PersonalInfoForm struct {
	Username        string `form:"username" validate:"required,username"`
	Name            string `form:"name" validate:"required"`
	Email           string `form:"email" validate:"required,loose_email"`
	Password        string `form:"password" validate:"omitempty,min=6,bcrypt_max"`
	ConfirmPassword string `form:"confirmPassword"`
	Address         string `form:"address"`
	DateOfBirth     string `form:"dateOfBirth"`
}

// Normalize trims the text fields. The password is taken as typed.
func (f *AddStudentForm) Normalize() {
	f.Username = strings.TrimSpace(f.Username)
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Address = strings.TrimSpace(f.Address)
	f.DateOfBirth = strings.TrimSpace(f.DateOfBirth)
	f.DeptID = strings.TrimSpace(f.DeptID)
}

// Normalize trims the text fields. Passwords are taken as typed.
func (f *PersonalInfoForm) Normalize() {
	f.Username = strings.TrimSpace(f.Username)
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Address = strings.TrimSpace(f.Address)
	f.DateOfBirth = strings.TrimSpace(f.DateOfBirth)
}
