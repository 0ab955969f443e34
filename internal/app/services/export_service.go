package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yigit/collegeportal/internal/pkg/csvexport"
	"github.com/yigit/collegeportal/internal/pkg/logger"
)

// Column headers of the CSV downloads
var (
	studentColumns = []string{"ID", "Name", "Email", "DateOfBirth", "Address", "StudentID", "Username", "Department"}
	staffColumns   = []string{"ID", "Name", "Role", "Email", "Phone"}
	facultyColumns = []string{"ID", "Name", "Department", "Email", "Phone"}
)

// ExportService renders the admin CSV downloads. Each method returns the
// complete file so a failed query never produces a truncated download.
type ExportService interface {
	Students(ctx context.Context) ([]byte, error)
	Staff(ctx context.Context) ([]byte, error)
	Faculty(ctx context.Context) ([]byte, error)
}

type exportServiceImpl struct {
	students   StudentStore
	staff      StaffStore
	faculty    FacultyStore
	dateLayout string
}

// NewExportService creates a new ExportService. dateLayout formats dates
// of birth; empty means csvexport.DefaultDateLayout.
func NewExportService(students StudentStore, staff StaffStore, faculty FacultyStore, dateLayout string) ExportService {
	if dateLayout == "" {
		dateLayout = csvexport.DefaultDateLayout
	}
	return &exportServiceImpl{
		students:   students,
		staff:      staff,
		faculty:    faculty,
		dateLayout: dateLayout,
	}
}

// Students exports every student. The first column repeats the student id
// and StudentID carries it again, matching the sheet layout admins import.
func (s *exportServiceImpl) Students(ctx context.Context) ([]byte, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]csvexport.Field, 0, len(students))
	for _, st := range students {
		rows = append(rows, []csvexport.Field{
			csvexport.ID(st.ID),
			csvexport.Text(st.Name),
			csvexport.OptText(st.Email),
			csvexport.Date(st.DateOfBirth, s.dateLayout),
			csvexport.OptText(st.Address),
			csvexport.ID(st.ID),
			csvexport.Text(st.Username),
			csvexport.OptText(st.DepartmentName),
		})
	}
	return s.render("students", studentColumns, rows)
}

func (s *exportServiceImpl) Staff(ctx context.Context) ([]byte, error) {
	members, err := s.staff.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]csvexport.Field, 0, len(members))
	for _, m := range members {
		rows = append(rows, []csvexport.Field{
			csvexport.ID(m.ID),
			csvexport.Text(m.Name),
			csvexport.Text(m.Role),
			csvexport.OptText(m.Email),
			csvexport.OptText(m.Phone),
		})
	}
	return s.render("staff", staffColumns, rows)
}

func (s *exportServiceImpl) Faculty(ctx context.Context) ([]byte, error) {
	members, err := s.faculty.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]csvexport.Field, 0, len(members))
	for _, m := range members {
		rows = append(rows, []csvexport.Field{
			csvexport.ID(m.ID),
			csvexport.Text(m.Name),
			csvexport.Text(m.Department),
			csvexport.OptText(m.Email),
			csvexport.OptText(m.Phone),
		})
	}
	return s.render("faculty", facultyColumns, rows)
}

func (s *exportServiceImpl) render(name string, header []string, rows [][]csvexport.Field) ([]byte, error) {
	var buf bytes.Buffer
	if err := csvexport.Write(&buf, header, rows); err != nil {
		return nil, fmt.Errorf("error rendering %s export: %w", name, err)
	}
	logger.Debug().Str("export", name).Int("rows", len(rows)).Msg("Export rendered")
	return buf.Bytes(), nil
}
