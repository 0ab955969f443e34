// Package inmem holds map-backed stores with the same semantics as the
// PostgreSQL repositories, for service and handler tests.
package inmem

import (
	"sort"
	"sync"

	"github.com/yigit/collegeportal/internal/app/models"
)

// DB is the shared state of every in-memory store. Stores created from the
// same DB see each other's writes, so deleting a student removes their
// marks and placements.
type DB struct {
	mu sync.RWMutex

	users       map[int64]*models.User
	students    map[int64]*models.Student
	departments map[int64]*models.Department
	marks       map[int64]*models.Mark
	placements  map[int64]*models.Placement
	faculty     map[int64]*models.Faculty
	staff       map[int64]*models.Staff

	seq int64
}

// NewDB creates an empty database
func NewDB() *DB {
	return &DB{
		users:       map[int64]*models.User{},
		students:    map[int64]*models.Student{},
		departments: map[int64]*models.Department{},
		marks:       map[int64]*models.Mark{},
		placements:  map[int64]*models.Placement{},
		faculty:     map[int64]*models.Faculty{},
		staff:       map[int64]*models.Staff{},
	}
}

// nextID hands out ids from one counter shared by all tables.
// Callers hold the write lock.
func (db *DB) nextID() int64 {
	db.seq++
	return db.seq
}

// AddDepartment inserts a department and returns a copy, for test setup
func (db *DB) AddDepartment(name string, headFacultyID *int64) *models.Department {
	db.mu.Lock()
	defer db.mu.Unlock()

	d := &models.Department{ID: db.nextID(), Name: name, HeadFacultyID: headFacultyID}
	db.departments[d.ID] = d
	return copyDepartment(d)
}

// sortedKeys returns the keys of m in ascending order
func sortedKeys[T any](m map[int64]T) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func copyDepartment(d *models.Department) *models.Department {
	c := *d
	return &c
}

func ptr[T any](v T) *T {
	return &v
}
