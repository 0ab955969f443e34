package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/db"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/dberrors"
	"github.com/yigit/collegeportal/internal/pkg/logger"
)

// MarksRepository handles subject marks
type MarksRepository struct {
	db db.DB
	sb squirrel.StatementBuilderType
}

// NewMarksRepository creates a new MarksRepository
func NewMarksRepository(conn db.DB) *MarksRepository {
	return &MarksRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// ListByStudent returns a student's marks ordered by semester
func (r *MarksRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Mark, error) {
	var marks []*models.Mark

	err := withColumnFallback(ctx, r.db, "list marks", perKey(markKeys, func(key string) statement {
		return func(ctx context.Context, q db.DB) error {
			sql, args, err := r.sb.Select(key, "student_id", "subject", "semester", "score").
				From("marks").
				Where(squirrel.Eq{"student_id": studentID}).
				OrderBy("semester ASC", "subject ASC").
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build list marks query: %w", err)
			}

			rows, err := q.Query(ctx, sql, args...)
			if err != nil {
				return err
			}
			defer rows.Close()

			found := []*models.Mark{}
			for rows.Next() {
				m := &models.Mark{}
				if err := rows.Scan(&m.ID, &m.StudentID, &m.Subject, &m.Semester, &m.Score); err != nil {
					return fmt.Errorf("error scanning mark row: %w", err)
				}
				found = append(found, m)
			}
			if err := rows.Err(); err != nil {
				return err
			}
			marks = found
			return nil
		}
	})...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error listing marks")
		return nil, fmt.Errorf("error listing marks: %w", dberrors.Classify(err))
	}
	return marks, nil
}

// Create inserts a mark and sets its ID
func (r *MarksRepository) Create(ctx context.Context, mark *models.Mark) error {
	err := withColumnFallback(ctx, r.db, "create mark", perKey(markKeys, func(key string) statement {
		return func(ctx context.Context, q db.DB) error {
			sql, args, err := r.sb.Insert("marks").
				Columns("student_id", "subject", "semester", "score").
				Values(mark.StudentID, mark.Subject, mark.Semester, mark.Score).
				Suffix("RETURNING " + key).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build create mark query: %w", err)
			}
			return q.QueryRow(ctx, sql, args...).Scan(&mark.ID)
		}
	})...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", mark.StudentID).Msg("Error creating mark")
		return fmt.Errorf("error creating mark: %w", dberrors.Classify(err))
	}
	return nil
}

// Update rewrites subject, semester and score of an existing mark
func (r *MarksRepository) Update(ctx context.Context, mark *models.Mark) error {
	err := withColumnFallback(ctx, r.db, "update mark", perKey(markKeys, func(key string) statement {
		return func(ctx context.Context, q db.DB) error {
			sql, args, err := r.sb.Update("marks").
				SetMap(map[string]interface{}{
					"subject":  mark.Subject,
					"semester": mark.Semester,
					"score":    mark.Score,
				}).
				Where(squirrel.Eq{key: mark.ID}).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build update mark query: %w", err)
			}
			tag, err := q.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return apperrors.NewNotFoundError("Mark not found")
			}
			return nil
		}
	})...)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			logger.Error().Err(err).Int64("markID", mark.ID).Msg("Error updating mark")
		}
		return fmt.Errorf("error updating mark: %w", dberrors.Classify(err))
	}
	return nil
}

// Delete removes a mark. An unknown id is a no-op.
func (r *MarksRepository) Delete(ctx context.Context, id int64) error {
	err := withColumnFallback(ctx, r.db, "delete mark", perKey(markKeys, func(key string) statement {
		return func(ctx context.Context, q db.DB) error {
			sql, args, err := r.sb.Delete("marks").Where(squirrel.Eq{key: id}).ToSql()
			if err != nil {
				return fmt.Errorf("failed to build delete mark query: %w", err)
			}
			_, err = q.Exec(ctx, sql, args...)
			return err
		}
	})...)
	if err != nil {
		logger.Error().Err(err).Int64("markID", id).Msg("Error deleting mark")
		return fmt.Errorf("error deleting mark: %w", dberrors.Classify(err))
	}
	return nil
}
