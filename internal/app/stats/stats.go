// Package stats computes the figures shown on the student dashboards.
package stats

import (
	"math"

	"github.com/yigit/collegeportal/internal/app/models"
)

// Summary is the block of figures on the student detail page
type Summary struct {
	TotalMarks      int
	AverageScore    float64
	TotalPlacements int
	CurrentSemester int
}

// CurrentSemester is the highest semester with a mark, 0 without marks.
func CurrentSemester(marks []*models.Mark) int {
	current := 0
	for _, m := range marks {
		if m.Semester > current {
			current = m.Semester
		}
	}
	return current
}

// AverageScore is the mean score rounded half-up to two decimals, 0 without marks.
func AverageScore(marks []*models.Mark) float64 {
	if len(marks) == 0 {
		return 0
	}
	var sum float64
	for _, m := range marks {
		sum += m.Score
	}
	return roundHalfUp(sum/float64(len(marks)), 2)
}

// TotalPlacements counts placement records, accepted or not.
func TotalPlacements(placements []*models.Placement) int {
	return len(placements)
}

// Summarize bundles the detail page figures.
func Summarize(marks []*models.Mark, placements []*models.Placement) Summary {
	return Summary{
		TotalMarks:      len(marks),
		AverageScore:    AverageScore(marks),
		TotalPlacements: TotalPlacements(placements),
		CurrentSemester: CurrentSemester(marks),
	}
}

func roundHalfUp(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Floor(v*p+0.5) / p
}
