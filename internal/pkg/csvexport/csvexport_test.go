package csvexport

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, header []string, rows [][]Field) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Write(&sb, header, rows))
	return sb.String()
}

func TestWriteQuotesTextAndLeavesIDsBare(t *testing.T) {
	dob := time.Date(2001, time.March, 9, 0, 0, 0, 0, time.UTC)
	email := "jane@example.com"

	got := render(t,
		[]string{"ID", "Name", "Email", "DateOfBirth", "Address"},
		[][]Field{
			{ID(7), Text(`Jane "Jay" Doe`), OptText(&email), Date(&dob, DefaultDateLayout), OptText(nil)},
			{ID(8), Text("Smith, John"), OptText(nil), Date(nil, DefaultDateLayout), Text("")},
		},
	)

	want := "ID,Name,Email,DateOfBirth,Address\n" +
		`7,"Jane ""Jay"" Doe","jane@example.com","3/9/2001",""` + "\n" +
		`8,"Smith, John","","",""` + "\n"
	assert.Equal(t, want, got)
}

func TestWriteHeaderOnly(t *testing.T) {
	assert.Equal(t, "ID,Name,Role,Email,Phone\n", render(t, []string{"ID", "Name", "Role", "Email", "Phone"}, nil))
}

func TestDateLayout(t *testing.T) {
	d := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"default when empty", "", `"12/31/2024"`},
		{"iso", "2006-01-02", `"2024-12-31"`},
		{"european", "02.01.2006", `"31.12.2024"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(&d, tt.layout).render())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePropagatesWriterErrors(t *testing.T) {
	err := Write(failingWriter{}, []string{"ID"}, [][]Field{{ID(1)}})
	assert.EqualError(t, err, "disk full")
}
