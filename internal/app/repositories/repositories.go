package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/collegeportal/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	StudentRepository    *StudentRepository
	DepartmentRepository *DepartmentRepository
	MarksRepository      *MarksRepository
	PlacementRepository  *PlacementRepository
	FacultyRepository    *FacultyRepository
	StaffRepository      *StaffRepository
}

// NewRepositories initializes all repositories over one connection handle,
// normally the pgx pool.
func NewRepositories(conn db.DB) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(conn),
		StudentRepository:    NewStudentRepository(conn),
		DepartmentRepository: NewDepartmentRepository(conn),
		MarksRepository:      NewMarksRepository(conn),
		PlacementRepository:  NewPlacementRepository(conn),
		FacultyRepository:    NewFacultyRepository(conn),
		StaffRepository:      NewStaffRepository(conn),
	}
}

// statementBuilder is the squirrel builder every repository shares
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
