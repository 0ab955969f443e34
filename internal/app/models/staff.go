package models

// Staff is a non-teaching employee
type Staff struct {
	ID    int64   `json:"id" db:"staff_id"`
	Name  string  `json:"name" db:"name"`
	Role  string  `json:"role" db:"role"`
	Email *string `json:"email,omitempty" db:"email"`
	Phone *string `json:"phone,omitempty" db:"phone"`
}
