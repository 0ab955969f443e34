package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/collegeportal/internal/app/models"
)

func marks(pairs ...[2]float64) []*models.Mark {
	out := make([]*models.Mark, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, &models.Mark{Semester: int(p[0]), Score: p[1]})
	}
	return out
}

func TestCurrentSemester(t *testing.T) {
	tests := []struct {
		name  string
		marks []*models.Mark
		want  int
	}{
		{"no marks", nil, 0},
		{"single", marks([2]float64{2, 70}), 2},
		{"unordered", marks([2]float64{1, 70}, [2]float64{3, 60}, [2]float64{2, 90}), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentSemester(tt.marks))
		})
	}
}

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name  string
		marks []*models.Mark
		want  float64
	}{
		{"no marks", nil, 0},
		{"whole", marks([2]float64{1, 80}, [2]float64{1, 90}), 85},
		{"repeating", marks([2]float64{1, 80}, [2]float64{1, 85}, [2]float64{1, 91}), 85.33},
		{"half rounds up", marks([2]float64{1, 70.125}, [2]float64{1, 70.125}), 70.13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AverageScore(tt.marks), 1e-9)
		})
	}
}

func TestSummarize(t *testing.T) {
	placements := []*models.Placement{{IsAccepted: true}, {}}

	got := Summarize(marks([2]float64{1, 80}, [2]float64{2, 90}), placements)
	assert.Equal(t, Summary{TotalMarks: 2, AverageScore: 85, TotalPlacements: 2, CurrentSemester: 2}, got)

	assert.Equal(t, Summary{}, Summarize(nil, nil))
}
