package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appAuth "github.com/yigit/collegeportal/internal/app/auth"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/app/repositories/inmem"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	pkgAuth "github.com/yigit/collegeportal/internal/pkg/auth"
)

type fixture struct {
	db          *inmem.DB
	users       *inmem.UserStore
	students    *inmem.StudentStore
	departments *inmem.DepartmentStore
	marks       *inmem.MarksStore
	placements  *inmem.PlacementStore
	faculty     *inmem.FacultyStore
	staff       *inmem.StaffStore
}

func newFixture() *fixture {
	db := inmem.NewDB()
	return &fixture{
		db:          db,
		users:       inmem.NewUserStore(db),
		students:    inmem.NewStudentStore(db),
		departments: inmem.NewDepartmentStore(db),
		marks:       inmem.NewMarksStore(db),
		placements:  inmem.NewPlacementStore(db),
		faculty:     inmem.NewFacultyStore(db),
		staff:       inmem.NewStaffStore(db),
	}
}

func (f *fixture) studentService() StudentService {
	return NewStudentService(f.users, f.students, f.departments, f.marks, f.placements)
}

func (f *fixture) academicService() AcademicService {
	return NewAcademicService(f.marks, f.placements)
}

func (f *fixture) addStudent(t *testing.T, username, email string) *models.Student {
	t.Helper()
	st, err := f.studentService().AddStudent(context.Background(), dto.AddStudentForm{
		Username: username,
		Password: "secret1",
		Name:     strings.ToUpper(username[:1]) + username[1:],
		Email:    email,
	})
	require.NoError(t, err)
	return st
}

func identityOf(t *testing.T, f *fixture, st *models.Student) appAuth.Identity {
	t.Helper()
	u, err := f.users.GetByID(context.Background(), st.UserID)
	require.NoError(t, err)
	return appAuth.Identity{UserID: u.ID, UserType: u.UserType, Username: u.Username}
}

func TestLogin(t *testing.T) {
	f := newFixture()
	hash, err := pkgAuth.HashPassword("admin123")
	require.NoError(t, err)
	require.NoError(t, f.users.Create(context.Background(), &models.User{Username: "admin", Password: hash, UserType: models.RoleAdmin}))

	svc := NewAuthService(f.users)

	identity, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, identity.UserType)
	assert.Equal(t, "admin", identity.Username)

	_, err = svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "admin123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAddStudentValidation(t *testing.T) {
	tests := []struct {
		name string
		form dto.AddStudentForm
		want string
	}{
		{
			name: "username with spaces",
			form: dto.AddStudentForm{Username: "jane doe", Password: "secret1", Name: "Jane"},
			want: "Username is required and can only contain letters, numbers, and underscores",
		},
		{
			name: "short password",
			form: dto.AddStudentForm{Username: "jane", Password: "abc", Name: "Jane"},
			want: "Password must be at least 6 characters long",
		},
		{
			name: "password too long for bcrypt",
			form: dto.AddStudentForm{Username: "jane", Password: strings.Repeat("p", 73), Name: "Jane"},
			want: "Password cannot be longer than 72 characters",
		},
		{
			name: "missing name",
			form: dto.AddStudentForm{Username: "jane", Password: "secret1"},
			want: "Name is required",
		},
		{
			name: "blank name",
			form: dto.AddStudentForm{Username: "jane", Password: "secret1", Name: "   "},
			want: "Name is required",
		},
		{
			name: "bad email",
			form: dto.AddStudentForm{Username: "jane", Password: "secret1", Name: "Jane", Email: "jane@"},
			want: "Please enter a valid email address",
		},
		{
			name: "bad date",
			form: dto.AddStudentForm{Username: "jane", Password: "secret1", Name: "Jane", DateOfBirth: "09/03/2001"},
			want: "Invalid date of birth",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newFixture().studentService().AddStudent(context.Background(), tt.form)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, tt.want, apperrors.UserMessage(err, ""))
		})
	}
}

func TestAddStudentDuplicateUsername(t *testing.T) {
	f := newFixture()
	f.addStudent(t, "jane", "jane@college.edu")

	_, err := f.studentService().AddStudent(context.Background(), dto.AddStudentForm{
		Username: "jane", Password: "secret1", Name: "Other Jane",
	})
	require.ErrorIs(t, err, apperrors.ErrDuplicateValue)
	assert.Equal(t, apperrors.MsgUsernameTaken, apperrors.UserMessage(err, ""))
}

func TestAddStudentCreatesStudentLogin(t *testing.T) {
	f := newFixture()
	physics := f.db.AddDepartment("Physics", nil)

	svc := f.studentService()
	st, err := svc.AddStudent(context.Background(), dto.AddStudentForm{
		Username:    "jane",
		Password:    "secret1",
		Name:        "Jane",
		DateOfBirth: "2001-03-09",
		DeptID:      "1",
	})
	require.NoError(t, err)
	require.NotNil(t, st.DeptID)
	assert.Equal(t, physics.ID, *st.DeptID)

	identity, err := NewAuthService(f.users).Login(context.Background(), "jane", "secret1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, identity.UserType)

	view, err := svc.AdminDashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Students, 1)
	assert.Equal(t, "jane", view.Students[0].Username)
	assert.Equal(t, "Physics", *view.Students[0].DepartmentName)
	assert.Len(t, view.Departments, 1)
}

func TestAddStudentStoresTrimmedValues(t *testing.T) {
	f := newFixture()
	svc := f.studentService()

	st, err := svc.AddStudent(context.Background(), dto.AddStudentForm{
		Username: " ann ",
		Password: "secret1",
		Name:     "  Ann Lee ",
		Email:    "   ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", st.Name)
	assert.Nil(t, st.Email)

	_, err = NewAuthService(f.users).Login(context.Background(), "ann", "secret1")
	require.NoError(t, err)
}

func TestUpdateStudentPartial(t *testing.T) {
	f := newFixture()
	physics := f.db.AddDepartment("Physics", nil)
	st := f.addStudent(t, "jane", "jane@college.edu")
	svc := f.studentService()

	deptID := "1"
	blank := "  "
	newName := "Jane Doe"
	require.NoError(t, svc.UpdateStudent(context.Background(), dto.UpdateStudentForm{
		ID:     st.ID,
		Name:   &newName,
		Email:  &blank,
		DeptID: &deptID,
	}))

	got, err := f.students.GetByID(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@college.edu", *got.Email)
	assert.Equal(t, physics.ID, *got.DeptID)

	empty := ""
	require.NoError(t, svc.UpdateStudent(context.Background(), dto.UpdateStudentForm{ID: st.ID, DeptID: &empty}))
	got, err = f.students.GetByID(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DeptID)
	assert.Equal(t, "Jane Doe", got.Name)
}

func TestUpdateStudentErrors(t *testing.T) {
	f := newFixture()
	svc := f.studentService()
	name := "Ghost"

	err := svc.UpdateStudent(context.Background(), dto.UpdateStudentForm{ID: 99, Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	st := f.addStudent(t, "jane", "")
	email := "not-an-email"
	err = svc.UpdateStudent(context.Background(), dto.UpdateStudentForm{ID: st.ID, Email: &email})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteStudentRemovesEverything(t *testing.T) {
	f := newFixture()
	st := f.addStudent(t, "jane", "")
	other := f.addStudent(t, "john", "")
	academic := f.academicService()

	_, err := academic.AddMark(context.Background(), dto.AddMarkForm{StudentID: st.ID, Subject: "Math", Semester: 1, Score: 80})
	require.NoError(t, err)
	_, err = academic.AddMark(context.Background(), dto.AddMarkForm{StudentID: other.ID, Subject: "Math", Semester: 1, Score: 70})
	require.NoError(t, err)
	_, err = academic.AddPlacement(context.Background(), dto.AddPlacementForm{StudentID: st.ID, Company: "Acme", Role: "Dev"})
	require.NoError(t, err)

	require.NoError(t, f.studentService().DeleteStudent(context.Background(), st.ID))

	_, err = f.students.GetByID(context.Background(), st.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = f.users.GetByUsername(context.Background(), "jane")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	marks, _ := f.marks.ListByStudent(context.Background(), st.ID)
	assert.Empty(t, marks)
	placements, _ := f.placements.ListByStudent(context.Background(), st.ID)
	assert.Empty(t, placements)
	marks, _ = f.marks.ListByStudent(context.Background(), other.ID)
	assert.Len(t, marks, 1)

	// Deleting again is a no-op
	assert.NoError(t, f.studentService().DeleteStudent(context.Background(), st.ID))
}

func TestDashboard(t *testing.T) {
	f := newFixture()
	svc := f.studentService()

	t.Run("account without student record", func(t *testing.T) {
		view, err := svc.Dashboard(context.Background(), appAuth.Identity{UserID: 42, UserType: models.RoleStudent, Username: "ghost"})
		require.NoError(t, err)
		assert.Nil(t, view.Student)
		assert.Empty(t, view.Marks)
		assert.Equal(t, 0, view.CurrentSemester)
	})

	t.Run("current semester is the highest with marks", func(t *testing.T) {
		st := f.addStudent(t, "jane", "")
		academic := f.academicService()
		for _, m := range []dto.AddMarkForm{
			{StudentID: st.ID, Subject: "Physics", Semester: 3, Score: 75},
			{StudentID: st.ID, Subject: "Algebra", Semester: 1, Score: 90},
			{StudentID: st.ID, Subject: "Chemistry", Semester: 3, Score: 60},
		} {
			_, err := academic.AddMark(context.Background(), m)
			require.NoError(t, err)
		}

		view, err := svc.Dashboard(context.Background(), identityOf(t, f, st))
		require.NoError(t, err)
		assert.Equal(t, 3, view.CurrentSemester)
		require.Len(t, view.Marks, 3)
		assert.Equal(t, "Algebra", view.Marks[0].Subject)
		assert.Equal(t, "Chemistry", view.Marks[1].Subject)
	})
}

func TestStudentDetail(t *testing.T) {
	f := newFixture()
	svc := f.studentService()

	_, err := svc.StudentDetail(context.Background(), 404)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Student not found", apperrors.UserMessage(err, ""))

	st := f.addStudent(t, "jane", "")
	academic := f.academicService()
	for _, score := range []float64{80, 85, 90.5} {
		_, err := academic.AddMark(context.Background(), dto.AddMarkForm{StudentID: st.ID, Subject: "Math", Semester: 2, Score: score})
		require.NoError(t, err)
	}
	_, err = academic.AddPlacement(context.Background(), dto.AddPlacementForm{StudentID: st.ID, Company: "Acme", Role: "Dev", Salary: "50000"})
	require.NoError(t, err)

	view, err := svc.StudentDetail(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Stats.TotalMarks)
	assert.Equal(t, 85.17, view.Stats.AverageScore)
	assert.Equal(t, 1, view.Stats.TotalPlacements)
	assert.Equal(t, 2, view.CurrentSemester)
	require.NotNil(t, view.Placements[0].Salary)
	assert.Equal(t, 50000.0, *view.Placements[0].Salary)
}

func TestUpdatePersonalInfoValidationOrder(t *testing.T) {
	valid := dto.PersonalInfoForm{Username: "jane", Name: "Jane", Email: "jane@college.edu"}

	tests := []struct {
		name   string
		modify func(*dto.PersonalInfoForm)
		want   string
	}{
		{"missing name", func(f *dto.PersonalInfoForm) { f.Name = " " }, "Username, name and email are required"},
		{"bad username", func(f *dto.PersonalInfoForm) { f.Username = "jane!"; f.Password = "x" }, "Username can only contain letters, numbers, and underscores"},
		{"short password", func(f *dto.PersonalInfoForm) { f.Password = "abc"; f.ConfirmPassword = "xyz" }, "Password must be at least 6 characters long"},
		{"long password", func(f *dto.PersonalInfoForm) { f.Password = strings.Repeat("p", 73); f.ConfirmPassword = f.Password }, "Password cannot be longer than 72 characters"},
		{"mismatch", func(f *dto.PersonalInfoForm) { f.Password = "secret1"; f.ConfirmPassword = "secret2"; f.Email = "bad" }, "Passwords do not match"},
		{"bad email", func(f *dto.PersonalInfoForm) { f.Email = "jane@college" }, "Please enter a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.modify(&form)
			err := validateProfile(&form)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, tt.want, apperrors.UserMessage(err, ""))
		})
	}

	assert.NoError(t, validateProfile(&valid))

	padded := dto.PersonalInfoForm{Username: " jane ", Name: " Jane ", Email: " jane@college.edu "}
	require.NoError(t, validateProfile(&padded))
	assert.Equal(t, "jane", padded.Username)
	assert.Equal(t, "jane@college.edu", padded.Email)
}

func TestUpdatePersonalInfo(t *testing.T) {
	f := newFixture()
	jane := f.addStudent(t, "jane", "jane@college.edu")
	f.addStudent(t, "john", "john@college.edu")
	svc := f.studentService()
	identity := identityOf(t, f, jane)

	_, err := svc.UpdatePersonalInfo(context.Background(), identity, dto.PersonalInfoForm{
		Username: "john", Name: "Jane", Email: "jane@college.edu",
	})
	require.ErrorIs(t, err, apperrors.ErrDuplicateValue)
	assert.Equal(t, apperrors.MsgUsernameTaken, apperrors.UserMessage(err, ""))

	_, err = svc.UpdatePersonalInfo(context.Background(), identity, dto.PersonalInfoForm{
		Username: "jane", Name: "Jane", Email: "john@college.edu",
	})
	require.ErrorIs(t, err, apperrors.ErrDuplicateValue)
	assert.Equal(t, apperrors.MsgEmailTaken, apperrors.UserMessage(err, ""))

	result, err := svc.UpdatePersonalInfo(context.Background(), identity, dto.PersonalInfoForm{
		Username:        "jane_d",
		Name:            "Jane Doe",
		Email:           "jane@college.edu",
		Password:        "newsecret",
		ConfirmPassword: "newsecret",
		DateOfBirth:     "2001-03-09",
	})
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, "jane_d", result.Username)

	_, err = NewAuthService(f.users).Login(context.Background(), "jane_d", "newsecret")
	assert.NoError(t, err)

	got, err := f.students.GetByID(context.Background(), jane.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "2001-03-09", got.DateOfBirth.Format("2006-01-02"))
}

func TestUpdatePersonalInfoKeepsPasswordWhenBlank(t *testing.T) {
	f := newFixture()
	jane := f.addStudent(t, "jane", "jane@college.edu")

	_, err := f.studentService().UpdatePersonalInfo(context.Background(), identityOf(t, f, jane), dto.PersonalInfoForm{
		Username: "jane", Name: "Jane", Email: "jane@college.edu",
	})
	require.NoError(t, err)

	_, err = NewAuthService(f.users).Login(context.Background(), "jane", "secret1")
	assert.NoError(t, err)
}
