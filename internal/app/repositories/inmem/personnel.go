package inmem

import (
	"context"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

// FacultyStore is the in-memory faculty store
type FacultyStore struct {
	db *DB
}

// NewFacultyStore creates a FacultyStore over db
func NewFacultyStore(db *DB) *FacultyStore {
	return &FacultyStore{db: db}
}

func (s *FacultyStore) list(newestFirst bool) []*models.Faculty {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	keys := sortedKeys(s.db.faculty)
	out := make([]*models.Faculty, 0, len(keys))
	for i := range keys {
		id := keys[i]
		if newestFirst {
			id = keys[len(keys)-1-i]
		}
		c := *s.db.faculty[id]
		out = append(out, &c)
	}
	return out
}

func (s *FacultyStore) List(_ context.Context) ([]*models.Faculty, error) {
	return s.list(false), nil
}

func (s *FacultyStore) ListNewestFirst(_ context.Context) ([]*models.Faculty, error) {
	return s.list(true), nil
}

func (s *FacultyStore) Create(_ context.Context, faculty *models.Faculty) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	faculty.ID = s.db.nextID()
	c := *faculty
	s.db.faculty[faculty.ID] = &c
	return nil
}

func (s *FacultyStore) Update(_ context.Context, faculty *models.Faculty) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.faculty[faculty.ID]; !ok {
		return apperrors.NewNotFoundError("Faculty member not found")
	}
	c := *faculty
	s.db.faculty[faculty.ID] = &c
	return nil
}

func (s *FacultyStore) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	delete(s.db.faculty, id)
	return nil
}

// StaffStore is the in-memory staff store
type StaffStore struct {
	db *DB
}

// NewStaffStore creates a StaffStore over db
func NewStaffStore(db *DB) *StaffStore {
	return &StaffStore{db: db}
}

func (s *StaffStore) list(newestFirst bool) []*models.Staff {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	keys := sortedKeys(s.db.staff)
	out := make([]*models.Staff, 0, len(keys))
	for i := range keys {
		id := keys[i]
		if newestFirst {
			id = keys[len(keys)-1-i]
		}
		c := *s.db.staff[id]
		out = append(out, &c)
	}
	return out
}

func (s *StaffStore) List(_ context.Context) ([]*models.Staff, error) {
	return s.list(false), nil
}

func (s *StaffStore) ListNewestFirst(_ context.Context) ([]*models.Staff, error) {
	return s.list(true), nil
}

func (s *StaffStore) Create(_ context.Context, staff *models.Staff) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	staff.ID = s.db.nextID()
	c := *staff
	s.db.staff[staff.ID] = &c
	return nil
}

func (s *StaffStore) Update(_ context.Context, staff *models.Staff) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.staff[staff.ID]; !ok {
		return apperrors.NewNotFoundError("Staff member not found")
	}
	c := *staff
	s.db.staff[staff.ID] = &c
	return nil
}

func (s *StaffStore) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	delete(s.db.staff, id)
	return nil
}
