package services

import (
	"context"
	"errors"
	"fmt"

	appAuth "github.com/yigit/collegeportal/internal/app/auth"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	pkgAuth "github.com/yigit/collegeportal/internal/pkg/auth"
	"github.com/yigit/collegeportal/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, username, password string) (*appAuth.Identity, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	users UserStore
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore) AuthService {
	return &authServiceImpl{users: users}
}

// Login checks a username and password. Unknown users and wrong passwords
// both yield ErrInvalidCredentials after the same bcrypt work.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*appAuth.Identity, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			pkgAuth.CheckPasswordUnknownUser(password)
			return nil, apperrors.ErrInvalidCredentials
		}
		logger.Error().Err(err).Msg("Error looking up user during login")
		return nil, fmt.Errorf("error during login: %w", err)
	}

	if !pkgAuth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &appAuth.Identity{
		UserID:   user.ID,
		UserType: user.UserType,
		Username: user.Username,
	}, nil
}
