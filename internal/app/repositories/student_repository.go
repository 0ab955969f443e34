package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/db"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/dberrors"
	"github.com/yigit/collegeportal/internal/pkg/logger"
)

// StudentRepository handles student records together with their login accounts.
// dept_id is optional in older schemas; every statement naming it has a
// fallback without it.
type StudentRepository struct {
	db db.DB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(conn db.DB) *StudentRepository {
	return &StudentRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// studentSelect selects students with their username, and with department
// and head-of-department names when withDept is set. Both shapes scan the
// same way.
func (r *StudentRepository) studentSelect(withDept bool) squirrel.SelectBuilder {
	if withDept {
		return r.sb.Select(
			"s.student_id", "s.user_id", "s.name", "s.address", "s.date_of_birth", "s.email",
			"s.dept_id", "u.username", "d.dept_name", "f.name",
		).
			From("students s").
			Join("users u ON u.id = s.user_id").
			LeftJoin("departments d ON d.dept_id = s.dept_id").
			LeftJoin("faculty f ON f.faculty_id = d.head_faculty_id")
	}
	return r.sb.Select(
		"s.student_id", "s.user_id", "s.name", "s.address", "s.date_of_birth", "s.email",
		"NULL::bigint", "u.username", "NULL::text", "NULL::text",
	).
		From("students s").
		Join("users u ON u.id = s.user_id")
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Address, &s.DateOfBirth, &s.Email,
		&s.DeptID, &s.Username, &s.DepartmentName, &s.FacultyHeadName)
	return s, err
}

func (r *StudentRepository) find(ctx context.Context, op string, where interface{}) ([]*models.Student, error) {
	var students []*models.Student

	attempt := func(withDept bool) statement {
		return func(ctx context.Context, q db.DB) error {
			sql, args, err := r.studentSelect(withDept).Where(where).OrderBy("s.student_id").ToSql()
			if err != nil {
				return fmt.Errorf("failed to build %s query: %w", op, err)
			}

			rows, err := q.Query(ctx, sql, args...)
			if err != nil {
				return err
			}
			defer rows.Close()

			found := []*models.Student{}
			for rows.Next() {
				s, err := scanStudent(rows)
				if err != nil {
					return fmt.Errorf("error scanning student row: %w", err)
				}
				found = append(found, s)
			}
			if err := rows.Err(); err != nil {
				return err
			}
			students = found
			return nil
		}
	}

	if err := withColumnFallback(ctx, r.db, op, attempt(true), attempt(false)); err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error querying students")
		return nil, fmt.Errorf("error querying students: %w", dberrors.Classify(err))
	}
	return students, nil
}

// List returns every student with username and department, ordered by id
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	return r.find(ctx, "list students", nil)
}

// GetByID retrieves a student by student id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	students, err := r.find(ctx, "get student", squirrel.Eq{"s.student_id": id})
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return students[0], nil
}

// GetByUserID retrieves the student record of a login account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	students, err := r.find(ctx, "get student by user", squirrel.Eq{"s.user_id": userID})
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return students[0], nil
}

// Create inserts the login account and the student record in one
// transaction and sets both IDs. user.UserType is forced to student.
func (r *StudentRepository) Create(ctx context.Context, user *models.User, student *models.Student) error {
	user.UserType = models.RoleStudent

	insert := func(withDept bool) statement {
		return func(ctx context.Context, q db.DB) error {
			columns := []string{"user_id", "name", "address", "date_of_birth", "email"}
			values := []interface{}{student.UserID, student.Name, student.Address, student.DateOfBirth, student.Email}
			if withDept {
				columns = append(columns, "dept_id")
				values = append(values, student.DeptID)
			}

			sql, args, err := r.sb.Insert("students").
				Columns(columns...).
				Values(values...).
				Suffix("RETURNING student_id").
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build create student query: %w", err)
			}
			return q.QueryRow(ctx, sql, args...).Scan(&student.ID)
		}
	}

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := insertUser(ctx, r.sb, tx, user); err != nil {
			return err
		}
		student.UserID = user.ID

		attempts := []statement{insert(false)}
		if student.DeptID != nil {
			attempts = []statement{insert(true), insert(false)}
		}
		return withColumnFallback(ctx, tx, "create student", attempts...)
	})
	if err != nil {
		err = duplicateError(err)
		if !apperrors.Is(err, apperrors.ErrDuplicateValue) {
			logger.Error().Err(err).Str("username", user.Username).Msg("Error creating student")
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// Update writes the non-nil fields of patch. A dept_id change is dropped
// when the column does not exist; if nothing else was set the update
// becomes a no-op.
func (r *StudentRepository) Update(ctx context.Context, id int64, patch models.StudentPatch) error {
	if patch.Empty() {
		return nil
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if patch.DateOfBirth != nil {
		fields["date_of_birth"] = *patch.DateOfBirth
	}

	update := func(set map[string]interface{}) statement {
		return func(ctx context.Context, q db.DB) error {
			sql, args, err := r.sb.Update("students").
				SetMap(set).
				Where(squirrel.Eq{"student_id": id}).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build update student query: %w", err)
			}
			tag, err := q.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return apperrors.NewNotFoundError("Student not found")
			}
			return nil
		}
	}

	var attempts []statement
	if patch.DeptIDSet {
		withDept := make(map[string]interface{}, len(fields)+1)
		for k, v := range fields {
			withDept[k] = v
		}
		withDept["dept_id"] = patch.DeptID
		attempts = append(attempts, update(withDept))
	}
	if len(fields) > 0 {
		attempts = append(attempts, update(fields))
	} else {
		attempts = append(attempts, noop)
	}

	if err := withColumnFallback(ctx, r.db, "update student", attempts...); err != nil {
		err = duplicateError(err)
		if !apperrors.Is(err, apperrors.ErrDuplicateValue, apperrors.ErrNotFound) {
			logger.Error().Err(err).Int64("studentID", id).Msg("Error updating student")
		}
		return fmt.Errorf("error updating student: %w", dberrors.Classify(err))
	}
	return nil
}

// Delete removes a student's marks, placements, the student row and the
// login account, in that order, in one transaction. An unknown id is a no-op.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Select("user_id").From("students").Where(squirrel.Eq{"student_id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build student owner query: %w", err)
		}
		var userID int64
		if err := tx.QueryRow(ctx, sql, args...).Scan(&userID); err != nil {
			if isNoRows(err) {
				return nil
			}
			return err
		}

		deletes := []squirrel.DeleteBuilder{
			r.sb.Delete("marks").Where(squirrel.Eq{"student_id": id}),
			r.sb.Delete("placements").Where(squirrel.Eq{"student_id": id}),
			r.sb.Delete("students").Where(squirrel.Eq{"student_id": id}),
			r.sb.Delete("users").Where(squirrel.Eq{"id": userID}),
		}
		for _, d := range deletes {
			sql, args, err := d.ToSql()
			if err != nil {
				return fmt.Errorf("failed to build delete query: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error deleting student")
		return fmt.Errorf("error deleting student: %w", dberrors.Classify(err))
	}
	return nil
}

// EmailTaken reports whether a student other than the one owned by
// excludeUserID uses email. Pass 0 to check against every student.
func (r *StudentRepository) EmailTaken(ctx context.Context, email string, excludeUserID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS(").
		From("students").
		Where(squirrel.Eq{"email": email}).
		Where(squirrel.NotEq{"user_id": excludeUserID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build email check query: %w", err)
	}

	var taken bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&taken); err != nil {
		logger.Error().Err(err).Msg("Error checking student email")
		return false, fmt.Errorf("error checking email: %w", dberrors.Classify(err))
	}
	return taken, nil
}

// UpdateProfile applies a student's own edit to the users and students rows
// in one transaction. It returns the number of student rows matched.
func (r *StudentRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (int64, error) {
	var affected int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		userSet := map[string]interface{}{"username": update.Username}
		if update.PasswordHash != nil {
			userSet["password"] = *update.PasswordHash
		}
		sql, args, err := r.sb.Update("users").SetMap(userSet).Where(squirrel.Eq{"id": userID}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update user query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		sql, args, err = r.sb.Update("students").
			SetMap(map[string]interface{}{
				"name":          update.Name,
				"email":         update.Email,
				"address":       update.Address,
				"date_of_birth": update.DateOfBirth,
			}).
			Where(squirrel.Eq{"user_id": userID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update student profile query: %w", err)
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		err = duplicateError(err)
		if !apperrors.Is(err, apperrors.ErrDuplicateValue) {
			logger.Error().Err(err).Int64("userID", userID).Msg("Error updating profile")
		}
		return 0, fmt.Errorf("error updating profile: %w", dberrors.Classify(err))
	}
	return affected, nil
}
