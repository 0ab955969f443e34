package inmem

import (
	"context"
	"sort"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

// DepartmentStore is the in-memory department store
type DepartmentStore struct {
	db *DB
}

// NewDepartmentStore creates a DepartmentStore over db
func NewDepartmentStore(db *DB) *DepartmentStore {
	return &DepartmentStore{db: db}
}

func (s *DepartmentStore) withHead(d *models.Department) *models.Department {
	c := copyDepartment(d)
	if d.HeadFacultyID != nil {
		if f, ok := s.db.faculty[*d.HeadFacultyID]; ok {
			c.FacultyHeadName = ptr(f.Name)
		}
	}
	return c
}

// List returns departments ordered by name
func (s *DepartmentStore) List(_ context.Context) ([]*models.Department, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	departments := []*models.Department{}
	for _, id := range sortedKeys(s.db.departments) {
		departments = append(departments, s.withHead(s.db.departments[id]))
	}
	sort.SliceStable(departments, func(i, j int) bool { return departments[i].Name < departments[j].Name })
	return departments, nil
}

func (s *DepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	d, ok := s.db.departments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return s.withHead(d), nil
}

func (s *DepartmentStore) Create(_ context.Context, department *models.Department) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	department.ID = s.db.nextID()
	s.db.departments[department.ID] = copyDepartment(department)
	return nil
}

// MarksStore is the in-memory marks store
type MarksStore struct {
	db *DB
}

// NewMarksStore creates a MarksStore over db
func NewMarksStore(db *DB) *MarksStore {
	return &MarksStore{db: db}
}

// ListByStudent returns marks ordered by semester, then subject
func (s *MarksStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Mark, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	marks := []*models.Mark{}
	for _, id := range sortedKeys(s.db.marks) {
		if m := s.db.marks[id]; m.StudentID == studentID {
			c := *m
			marks = append(marks, &c)
		}
	}
	sort.SliceStable(marks, func(i, j int) bool {
		if marks[i].Semester != marks[j].Semester {
			return marks[i].Semester < marks[j].Semester
		}
		return marks[i].Subject < marks[j].Subject
	})
	return marks, nil
}

func (s *MarksStore) Create(_ context.Context, mark *models.Mark) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	mark.ID = s.db.nextID()
	c := *mark
	s.db.marks[mark.ID] = &c
	return nil
}

func (s *MarksStore) Update(_ context.Context, mark *models.Mark) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	m, ok := s.db.marks[mark.ID]
	if !ok {
		return apperrors.NewNotFoundError("Mark not found")
	}
	m.Subject, m.Semester, m.Score = mark.Subject, mark.Semester, mark.Score
	return nil
}

func (s *MarksStore) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	delete(s.db.marks, id)
	return nil
}

// PlacementStore is the in-memory placement store
type PlacementStore struct {
	db *DB
}

// NewPlacementStore creates a PlacementStore over db
func NewPlacementStore(db *DB) *PlacementStore {
	return &PlacementStore{db: db}
}

// ListByStudent returns placements newest first, undated ones last
func (s *PlacementStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Placement, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	placements := []*models.Placement{}
	for _, id := range sortedKeys(s.db.placements) {
		if p := s.db.placements[id]; p.StudentID == studentID {
			c := *p
			placements = append(placements, &c)
		}
	}
	sort.SliceStable(placements, func(i, j int) bool {
		a, b := placements[i].DatePlaced, placements[j].DatePlaced
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return a.After(*b)
	})
	return placements, nil
}

func (s *PlacementStore) Create(_ context.Context, placement *models.Placement) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	placement.ID = s.db.nextID()
	placement.IsAccepted = false
	c := *placement
	s.db.placements[placement.ID] = &c
	return nil
}

func (s *PlacementStore) Update(_ context.Context, placement *models.Placement) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p, ok := s.db.placements[placement.ID]
	if !ok {
		return apperrors.NewNotFoundError("Placement not found")
	}
	p.Company, p.Role, p.Salary, p.DatePlaced = placement.Company, placement.Role, placement.Salary, placement.DatePlaced
	return nil
}

// SetAccepted clears every acceptance of the student, then sets the flag
// of placementID. The placement has to belong to the student.
func (s *PlacementStore) SetAccepted(_ context.Context, studentID, placementID int64, accepted bool) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	target, ok := s.db.placements[placementID]
	if !ok || target.StudentID != studentID {
		return apperrors.NewNotFoundError("Placement not found")
	}
	for _, p := range s.db.placements {
		if p.StudentID == studentID {
			p.IsAccepted = false
		}
	}
	target.IsAccepted = accepted
	return nil
}

func (s *PlacementStore) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	delete(s.db.placements, id)
	return nil
}
