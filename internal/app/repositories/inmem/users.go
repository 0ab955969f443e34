package inmem

import (
	"context"

	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

// UserStore is the in-memory login account store
type UserStore struct {
	db *DB
}

// NewUserStore creates a UserStore over db
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, id := range sortedKeys(s.db.users) {
		if u := s.db.users[id]; u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *UserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	u, ok := s.db.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (s *UserStore) UsernameTaken(_ context.Context, username string, excludeUserID int64) (bool, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.db.usernameTaken(username, excludeUserID), nil
}

func (s *UserStore) CountByType(_ context.Context, role models.RoleType) (int, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	count := 0
	for _, u := range s.db.users {
		if u.UserType == role {
			count++
		}
	}
	return count, nil
}

func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.db.insertUser(user)
}

func (db *DB) usernameTaken(username string, excludeUserID int64) bool {
	for id, u := range db.users {
		if id != excludeUserID && u.Username == username {
			return true
		}
	}
	return false
}

// insertUser enforces the unique username. Callers hold the write lock.
func (db *DB) insertUser(user *models.User) error {
	if db.usernameTaken(user.Username, 0) {
		return apperrors.NewDuplicateValueError("username", apperrors.MsgUsernameTaken)
	}
	user.ID = db.nextID()
	c := *user
	db.users[user.ID] = &c
	return nil
}
