package models

// Department represents a department, optionally headed by a faculty member
type Department struct {
	ID            int64  `json:"id" db:"dept_id"`
	Name          string `json:"name" db:"dept_name"`
	HeadFacultyID *int64 `json:"headFacultyId,omitempty" db:"head_faculty_id"`

	FacultyHeadName *string `json:"facultyHeadName,omitempty"`
}
