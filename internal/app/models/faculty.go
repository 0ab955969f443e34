package models

// Faculty is a teaching staff member
type Faculty struct {
	ID         int64   `json:"id" db:"faculty_id"`
	Name       string  `json:"name" db:"name"`
	Department string  `json:"department" db:"department"`
	Email      *string `json:"email,omitempty" db:"email"`
	Phone      *string `json:"phone,omitempty" db:"phone"`
}
