package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	pkgAuth "github.com/yigit/collegeportal/internal/pkg/auth"
)

// DefaultDepartments are created when the departments table is empty
var DefaultDepartments = []string{
	"Computer Science",
	"Electrical Engineering",
	"Mechanical Engineering",
	"Business Administration",
}

// UserStore is what seeding needs from the user repository
type UserStore interface {
	CountByType(ctx context.Context, role appModels.RoleType) (int, error)
	Create(ctx context.Context, user *appModels.User) error
}

// DepartmentStore is what seeding needs from the department repository
type DepartmentStore interface {
	List(ctx context.Context) ([]*appModels.Department, error)
	Create(ctx context.Context, department *appModels.Department) error
}

// Options holds the default admin credentials
type Options struct {
	AdminUsername string
	AdminPassword string
}

// CreateDefaultData creates the default departments and the admin account
// if they don't exist. Failures are collected, not fatal.
func CreateDefaultData(ctx context.Context, users UserStore, departments DepartmentStore, opts Options, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Departments/Admin)...")
	var finalErr error

	existing, err := departments.List(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing departments")
		finalErr = errors.Join(finalErr, err)
	} else if len(existing) == 0 {
		for _, name := range DefaultDepartments {
			if err := departments.Create(ctx, &appModels.Department{Name: name}); err != nil {
				lgr.Error().Err(err).Str("department", name).Msg("Error creating department")
				finalErr = errors.Join(finalErr, err)
			}
		}
		lgr.Info().Int("count", len(DefaultDepartments)).Msg("Default departments created")
	}

	if err := createAdmin(ctx, users, opts, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

func createAdmin(ctx context.Context, users UserStore, opts Options, lgr zerolog.Logger) error {
	count, err := users.CountByType(ctx, appModels.RoleAdmin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting admin users")
		return err
	}
	if count > 0 {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}

	if opts.AdminUsername == "" || opts.AdminPassword == "" {
		lgr.Warn().Msg("No admin account exists and no seed credentials are configured")
		return nil
	}

	hashedPassword, err := pkgAuth.HashPassword(opts.AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Username: opts.AdminUsername,
		Password: hashedPassword,
		UserType: appModels.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateValue) {
			lgr.Warn().Str("username", opts.AdminUsername).Msg("Seed admin username is taken by a non-admin account")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", admin.ID).Str("username", admin.Username).Msg("Default admin user created successfully")
	return nil
}
