package services

import (
	"context"
	"errors"
	"fmt"

	appAuth "github.com/yigit/collegeportal/internal/app/auth"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/app/stats"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	pkgAuth "github.com/yigit/collegeportal/internal/pkg/auth"
	"github.com/yigit/collegeportal/internal/pkg/helpers"
	"github.com/yigit/collegeportal/internal/pkg/logger"
	"github.com/yigit/collegeportal/internal/pkg/validation"
)

// msgPasswordTooLong is shown for passwords bcrypt cannot hash
const msgPasswordTooLong = "Password cannot be longer than 72 characters"

// StudentService defines the interface for student-related operations
type StudentService interface {
	Dashboard(ctx context.Context, identity appAuth.Identity) (*dto.StudentDashboardView, error)
	AdminDashboard(ctx context.Context) (*dto.AdminDashboardView, error)
	StudentDetail(ctx context.Context, studentID int64) (*dto.StudentDetailView, error)
	AddStudent(ctx context.Context, form dto.AddStudentForm) (*models.Student, error)
	UpdateStudent(ctx context.Context, form dto.UpdateStudentForm) error
	DeleteStudent(ctx context.Context, studentID int64) error
	UpdatePersonalInfo(ctx context.Context, identity appAuth.Identity, form dto.PersonalInfoForm) (*ProfileResult, error)
}

// ProfileResult reports the outcome of a profile update
type ProfileResult struct {
	Username string
	// Changed is false when no student row matched
	Changed bool
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	users       UserStore
	students    StudentStore
	departments DepartmentStore
	marks       MarksStore
	placements  PlacementStore
}

// NewStudentService creates a new StudentService
func NewStudentService(users UserStore, students StudentStore, departments DepartmentStore, marks MarksStore, placements PlacementStore) StudentService {
	return &studentServiceImpl{
		users:       users,
		students:    students,
		departments: departments,
		marks:       marks,
		placements:  placements,
	}
}

// Dashboard assembles a student's own view. A login without a student record
// gets an empty view rather than an error.
func (s *studentServiceImpl) Dashboard(ctx context.Context, identity appAuth.Identity) (*dto.StudentDashboardView, error) {
	view := &dto.StudentDashboardView{
		Username:   identity.Username,
		Marks:      []*models.Mark{},
		Placements: []*models.Placement{},
	}

	student, err := s.students.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return view, nil
		}
		return view, err
	}
	view.Student = student

	if view.Marks, err = s.marks.ListByStudent(ctx, student.ID); err != nil {
		return view, err
	}
	if view.Placements, err = s.placements.ListByStudent(ctx, student.ID); err != nil {
		return view, err
	}
	if view.Department, err = s.department(ctx, student.DeptID); err != nil {
		return view, err
	}

	view.CurrentSemester = stats.CurrentSemester(view.Marks)
	return view, nil
}

// AdminDashboard lists every student and department
func (s *studentServiceImpl) AdminDashboard(ctx context.Context) (*dto.AdminDashboardView, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AdminDashboardView{Students: students, Departments: departments}, nil
}

// StudentDetail assembles one student with marks, placements and figures
func (s *studentServiceImpl) StudentDetail(ctx context.Context, studentID int64) (*dto.StudentDetailView, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Student not found")
		}
		return nil, err
	}

	view := &dto.StudentDetailView{Student: student}
	if view.Marks, err = s.marks.ListByStudent(ctx, student.ID); err != nil {
		return nil, err
	}
	if view.Placements, err = s.placements.ListByStudent(ctx, student.ID); err != nil {
		return nil, err
	}
	if view.Department, err = s.department(ctx, student.DeptID); err != nil {
		return nil, err
	}
	if view.Departments, err = s.departments.List(ctx); err != nil {
		return nil, err
	}

	view.Stats = stats.Summarize(view.Marks, view.Placements)
	view.CurrentSemester = view.Stats.CurrentSemester
	return view, nil
}

// department resolves an optional department reference. A dangling
// reference is treated as no department.
func (s *studentServiceImpl) department(ctx context.Context, deptID *int64) (*models.Department, error) {
	if deptID == nil {
		return nil, nil
	}
	d, err := s.departments.GetByID(ctx, *deptID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return d, err
}

// AddStudent creates the login account and the student record together
func (s *studentServiceImpl) AddStudent(ctx context.Context, form dto.AddStudentForm) (*models.Student, error) {
	err := validateForm(&form, []fieldMessage{
		{"Username", "Username is required and can only contain letters, numbers, and underscores"},
		{"Password.bcrypt_max", msgPasswordTooLong},
		{"Password", "Password must be at least 6 characters long"},
		{"Name", "Name is required"},
		{"Email", "Please enter a valid email address"},
		{"DeptID", "Invalid department"},
	}, "Invalid student details")
	if err != nil {
		return nil, err
	}

	dob, err := helpers.ParseFormDate(form.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid date of birth")
	}
	deptID, err := parseOptionalID(form.DeptID)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid department")
	}

	username := form.Username
	taken, err := s.users.UsernameTaken(ctx, username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewDuplicateValueError("username", apperrors.MsgUsernameTaken)
	}

	hash, err := pkgAuth.HashPassword(form.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password for new student")
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Username: username, Password: hash, UserType: models.RoleStudent}
	student := &models.Student{
		Name:        form.Name,
		Address:     helpers.NullableString(form.Address),
		DateOfBirth: dob,
		Email:       helpers.NullableString(form.Email),
		DeptID:      deptID,
	}
	if err := s.students.Create(ctx, user, student); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentID", student.ID).Str("username", username).Msg("Student created")
	return student, nil
}

// UpdateStudent applies an admin's partial edit
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, form dto.UpdateStudentForm) error {
	if form.ID <= 0 {
		return apperrors.NewValidationError("Student is required")
	}

	patch := models.StudentPatch{
		Name:    nonBlank(form.Name),
		Email:   nonBlank(form.Email),
		Address: nonBlank(form.Address),
	}
	if patch.Email != nil && !validation.CompiledPatterns.Email.MatchString(*patch.Email) {
		return apperrors.NewValidationError("Please enter a valid email address")
	}
	if v := nonBlank(form.DateOfBirth); v != nil {
		dob, err := helpers.ParseFormDate(*v)
		if err != nil {
			return apperrors.NewValidationError("Invalid date of birth")
		}
		patch.DateOfBirth = dob
	}
	if form.DeptID != nil {
		deptID, err := parseOptionalID(*form.DeptID)
		if err != nil {
			return apperrors.NewValidationError("Invalid department")
		}
		patch.DeptID = deptID
		patch.DeptIDSet = true
	}

	return s.students.Update(ctx, form.ID, patch)
}

// DeleteStudent removes a student with everything that belongs to them
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, studentID int64) error {
	if studentID <= 0 {
		return apperrors.NewValidationError("Student is required")
	}
	return s.students.Delete(ctx, studentID)
}

// UpdatePersonalInfo applies a student's edit of their own profile
func (s *studentServiceImpl) UpdatePersonalInfo(ctx context.Context, identity appAuth.Identity, form dto.PersonalInfoForm) (*ProfileResult, error) {
	if err := validateProfile(&form); err != nil {
		return nil, err
	}

	current, err := s.students.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Student record not found")
		}
		return nil, err
	}

	username := form.Username
	email := form.Email

	taken, err := s.users.UsernameTaken(ctx, username, identity.UserID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewDuplicateValueError("username", apperrors.MsgUsernameTaken)
	}

	if email != helpers.StringValue(current.Email) {
		taken, err := s.students.EmailTaken(ctx, email, identity.UserID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewDuplicateValueError("email", apperrors.MsgEmailTaken)
		}
	}

	dob, err := helpers.ParseFormDate(form.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid date of birth")
	}

	update := models.ProfileUpdate{
		Username:    username,
		Name:        form.Name,
		Email:       email,
		Address:     helpers.NullableString(form.Address),
		DateOfBirth: dob,
	}
	if form.Password != "" {
		hash, err := pkgAuth.HashPassword(form.Password)
		if err != nil {
			logger.Error().Err(err).Msg("Error hashing password for profile update")
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		update.PasswordHash = &hash
	}

	affected, err := s.students.UpdateProfile(ctx, identity.UserID, update)
	if err != nil {
		return nil, err
	}
	return &ProfileResult{Username: username, Changed: affected > 0}, nil
}

// validateProfile normalizes form and applies the profile rules in a fixed
// order: required fields, username format, password length, password
// confirmation, email format.
func validateProfile(form *dto.PersonalInfoForm) error {
	form.Normalize()
	if form.Username == "" || form.Name == "" || form.Email == "" {
		return apperrors.NewValidationError("Username, name and email are required")
	}

	failures := validation.Failures(validation.Struct(form))
	if _, bad := failures["Username"]; bad {
		return apperrors.NewValidationError("Username can only contain letters, numbers, and underscores")
	}
	switch failures["Password"] {
	case "":
	case "bcrypt_max":
		return apperrors.NewValidationError(msgPasswordTooLong)
	default:
		return apperrors.NewValidationError("Password must be at least 6 characters long")
	}
	if form.Password != "" && form.Password != form.ConfirmPassword {
		return apperrors.NewValidationError("Passwords do not match")
	}
	if _, bad := failures["Email"]; bad {
		return apperrors.NewValidationError("Please enter a valid email address")
	}
	return nil
}

// nonBlank returns the trimmed value of a posted field, nil when the field
// was absent or blank
func nonBlank(v *string) *string {
	if v == nil {
		return nil
	}
	return helpers.NullableString(*v)
}
