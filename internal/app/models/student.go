package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID          int64      `json:"id" db:"student_id"`
	UserID      int64      `json:"userId" db:"user_id"`
	Name        string     `json:"name" db:"name"`
	Address     *string    `json:"address,omitempty" db:"address"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Email       *string    `json:"email,omitempty" db:"email"`
	// DeptID is nil when unassigned or when the schema has no dept_id column
	DeptID *int64 `json:"deptId,omitempty" db:"dept_id"`

	// Joined columns, populated by list and detail queries
	Username        string  `json:"username,omitempty"`
	DepartmentName  *string `json:"departmentName,omitempty"`
	FacultyHeadName *string `json:"facultyHeadName,omitempty"`
}

// StudentPatch carries the fields of a partial student update. Nil fields
// are left unchanged. DeptIDSet distinguishes "clear the department"
// (DeptIDSet with a nil DeptID) from "leave it alone".
type StudentPatch struct {
	Name        *string
	Email       *string
	Address     *string
	DateOfBirth *time.Time
	DeptID      *int64
	DeptIDSet   bool
}

// Empty reports whether the patch would write nothing
func (p StudentPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Address == nil && p.DateOfBirth == nil && !p.DeptIDSet
}

// ProfileUpdate is a student's edit of their own account and record
type ProfileUpdate struct {
	Username string
	// PasswordHash is nil when the password is kept
	PasswordHash *string
	Name         string
	Email        string
	Address      *string
	DateOfBirth  *time.Time
}
