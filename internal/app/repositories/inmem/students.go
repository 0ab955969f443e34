package inmem

import (
	"context"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

// StudentStore is the in-memory student store
type StudentStore struct {
	db *DB
}

// NewStudentStore creates a StudentStore over db
func NewStudentStore(db *DB) *StudentStore {
	return &StudentStore{db: db}
}

// joined copies st and fills the joined columns. Callers hold a lock.
func (db *DB) joined(st *models.Student) *models.Student {
	c := *st
	c.Username, c.DepartmentName, c.FacultyHeadName = "", nil, nil
	if u, ok := db.users[st.UserID]; ok {
		c.Username = u.Username
	}
	if st.DeptID != nil {
		if d, ok := db.departments[*st.DeptID]; ok {
			c.DepartmentName = ptr(d.Name)
			if d.HeadFacultyID != nil {
				if f, ok := db.faculty[*d.HeadFacultyID]; ok {
					c.FacultyHeadName = ptr(f.Name)
				}
			}
		}
	}
	return &c
}

func (s *StudentStore) List(_ context.Context) ([]*models.Student, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	students := []*models.Student{}
	for _, id := range sortedKeys(s.db.students) {
		students = append(students, s.db.joined(s.db.students[id]))
	}
	return students, nil
}

func (s *StudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	st, ok := s.db.students[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return s.db.joined(st), nil
}

func (s *StudentStore) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, id := range sortedKeys(s.db.students) {
		if st := s.db.students[id]; st.UserID == userID {
			return s.db.joined(st), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// Create inserts the account and the student. Nothing is written when
// either unique check fails.
func (s *StudentStore) Create(_ context.Context, user *models.User, student *models.Student) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if student.Email != nil && s.db.emailTaken(*student.Email, 0) {
		return apperrors.NewDuplicateValueError("email", apperrors.MsgEmailTaken)
	}
	user.UserType = models.RoleStudent
	if err := s.db.insertUser(user); err != nil {
		return err
	}

	student.ID = s.db.nextID()
	student.UserID = user.ID
	c := *student
	s.db.students[student.ID] = &c
	return nil
}

func (s *StudentStore) Update(_ context.Context, id int64, patch models.StudentPatch) error {
	if patch.Empty() {
		return nil
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	st, ok := s.db.students[id]
	if !ok {
		return apperrors.NewNotFoundError("Student not found")
	}
	if patch.Email != nil && s.db.emailTaken(*patch.Email, st.UserID) {
		return apperrors.NewDuplicateValueError("email", apperrors.MsgEmailTaken)
	}

	if patch.Name != nil {
		st.Name = *patch.Name
	}
	if patch.Email != nil {
		st.Email = ptr(*patch.Email)
	}
	if patch.Address != nil {
		st.Address = ptr(*patch.Address)
	}
	if patch.DateOfBirth != nil {
		st.DateOfBirth = ptr(*patch.DateOfBirth)
	}
	if patch.DeptIDSet {
		st.DeptID = nil
		if patch.DeptID != nil {
			st.DeptID = ptr(*patch.DeptID)
		}
	}
	return nil
}

// Delete removes the student, their marks and placements, and the account
func (s *StudentStore) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	st, ok := s.db.students[id]
	if !ok {
		return nil
	}
	for mid, m := range s.db.marks {
		if m.StudentID == id {
			delete(s.db.marks, mid)
		}
	}
	for pid, p := range s.db.placements {
		if p.StudentID == id {
			delete(s.db.placements, pid)
		}
	}
	delete(s.db.students, id)
	delete(s.db.users, st.UserID)
	return nil
}

func (s *StudentStore) EmailTaken(_ context.Context, email string, excludeUserID int64) (bool, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.db.emailTaken(email, excludeUserID), nil
}

func (s *StudentStore) UpdateProfile(_ context.Context, userID int64, update models.ProfileUpdate) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if s.db.usernameTaken(update.Username, userID) {
		return 0, apperrors.NewDuplicateValueError("username", apperrors.MsgUsernameTaken)
	}
	if s.db.emailTaken(update.Email, userID) {
		return 0, apperrors.NewDuplicateValueError("email", apperrors.MsgEmailTaken)
	}

	if u, ok := s.db.users[userID]; ok {
		u.Username = update.Username
		if update.PasswordHash != nil {
			u.Password = *update.PasswordHash
		}
	}

	var affected int64
	for _, st := range s.db.students {
		if st.UserID != userID {
			continue
		}
		st.Name = update.Name
		st.Email = ptr(update.Email)
		st.Address = update.Address
		st.DateOfBirth = update.DateOfBirth
		affected++
	}
	return affected, nil
}

func (db *DB) emailTaken(email string, excludeUserID int64) bool {
	for _, st := range db.students {
		if st.UserID != excludeUserID && st.Email != nil && *st.Email == email {
			return true
		}
	}
	return false
}
