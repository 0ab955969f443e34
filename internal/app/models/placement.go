package models

import "time"

// Placement is a job offer recorded for a student. At most one placement
// per student is accepted.
type Placement struct {
	ID         int64      `json:"id" db:"placement_id"`
	StudentID  int64      `json:"studentId" db:"student_id"`
	Company    string     `json:"company" db:"company"`
	Role       string     `json:"role" db:"role"`
	Salary     *float64   `json:"salary,omitempty" db:"salary"`
	DatePlaced *time.Time `json:"datePlaced,omitempty" db:"date_placed"`
	IsAccepted bool       `json:"isAccepted" db:"is_accepted"`
}
