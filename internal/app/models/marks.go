package models

// Mark is one subject score of a student in a semester
type Mark struct {
	ID        int64   `json:"id" db:"mark_id"`
	StudentID int64   `json:"studentId" db:"student_id"`
	Subject   string  `json:"subject" db:"subject"`
	Semester  int     `json:"semester" db:"semester"`
	Score     float64 `json:"score" db:"score"`
}
