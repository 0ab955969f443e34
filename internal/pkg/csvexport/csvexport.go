// Package csvexport writes the admin CSV downloads. Unlike encoding/csv it
// quotes every text field, empty ones included, and leaves ids bare, so
// spreadsheet imports keep leading zeros and never split on embedded commas.
package csvexport

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
)

// DefaultDateLayout is the US short date, e.g. 3/9/2001
const DefaultDateLayout = "1/2/2006"

// Field is one rendered cell
type Field struct {
	value  string
	quoted bool
}

// ID is a bare numeric cell
func ID(id int64) Field {
	return Field{value: strconv.FormatInt(id, 10)}
}

// Text is a quoted cell
func Text(s string) Field {
	return Field{value: s, quoted: true}
}

// OptText is a quoted cell, empty for nil
func OptText(s *string) Field {
	if s == nil {
		return Text("")
	}
	return Text(*s)
}

// Date is a quoted date cell in layout, empty for nil
func Date(t *time.Time, layout string) Field {
	if t == nil {
		return Text("")
	}
	if layout == "" {
		layout = DefaultDateLayout
	}
	return Text(t.Format(layout))
}

func (f Field) render() string {
	if !f.quoted {
		return f.value
	}
	return `"` + strings.ReplaceAll(f.value, `"`, `""`) + `"`
}

// Write writes the header line followed by one line per row. Header names
// are written as given.
func Write(w io.Writer, header []string, rows [][]Field) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(header, ",") + "\n"); err != nil {
		return err
	}

	cells := make([]string, 0, len(header))
	for _, row := range rows {
		cells = cells[:0]
		for _, f := range row {
			cells = append(cells, f.render())
		}
		if _, err := bw.WriteString(strings.Join(cells, ",") + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
