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

// PlacementRepository handles placement records
type PlacementRepository struct {
	db db.DB
	sb squirrel.StatementBuilderType
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(conn db.DB) *PlacementRepository {
	return &PlacementRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// ListByStudent returns a student's placements, most recent first
func (r *PlacementRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Placement, error) {
	var placements []*models.Placement

	err := withColumnFallback(ctx, r.db, "list placements", perKey(placementKeys, func(key string) statement {
		return func(ctx context.Context, q db.DB) error {
			sql, args, err := r.sb.Select(key, "student_id", "company", "role", "salary", "date_placed", "is_accepted").
				From("placements").
				Where(squirrel.Eq{"student_id": studentID}).
				OrderBy("date_placed DESC NULLS LAST", key+" DESC").
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build list placements query: %w", err)
			}

			rows, err := q.Query(ctx, sql, args...)
			if err != nil {
				return err
			}
			defer rows.Close()

			found := []*models.Placement{}
			for rows.Next() {
				p := &models.Placement{}
				if err := rows.Scan(&p.ID, &p.StudentID, &p.Company, &p.Role, &p.Salary, &p.DatePlaced, &p.IsAccepted); err != nil {
					return fmt.Errorf("error scanning placement row: %w", err)
				}
				found = append(found, p)
			}
			if err := rows.Err(); err != nil {
				return err
			}
			placements = found
			return nil
		}
	})...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error listing placements")
		return nil, fmt.Errorf("error listing placements: %w", dberrors.Classify(err))
	}
	return placements, nil
}

// Create inserts a placement, not accepted, and sets its ID
func (r *PlacementRepository) Create(ctx context.Context, placement *models.Placement) error {
	err := withColumnFallback(ctx, r.db, "create placement", perKey(placementKeys, func(key string) statement {
		return func(ctx context.Context, q db.DB) error {
			sql, args, err := r.sb.Insert("placements").
				Columns("student_id", "company", "role", "salary", "date_placed", "is_accepted").
				Values(placement.StudentID, placement.Company, placement.Role, placement.Salary, placement.DatePlaced, false).
				Suffix("RETURNING " + key).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build create placement query: %w", err)
			}
			return q.QueryRow(ctx, sql, args...).Scan(&placement.ID)
		}
	})...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", placement.StudentID).Msg("Error creating placement")
		return fmt.Errorf("error creating placement: %w", dberrors.Classify(err))
	}
	placement.IsAccepted = false
	return nil
}

// Update rewrites the offer details of a placement. Acceptance is changed
// only through SetAccepted.
func (r *PlacementRepository) Update(ctx context.Context, placement *models.Placement) error {
	err := withColumnFallback(ctx, r.db, "update placement", perKey(placementKeys, func(key string) statement {
		return func(ctx context.Context, q db.DB) error {
			sql, args, err := r.sb.Update("placements").
				SetMap(map[string]interface{}{
					"company":     placement.Company,
					"role":        placement.Role,
					"salary":      placement.Salary,
					"date_placed": placement.DatePlaced,
				}).
				Where(squirrel.Eq{key: placement.ID}).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build update placement query: %w", err)
			}
			tag, err := q.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return apperrors.NewNotFoundError("Placement not found")
			}
			return nil
		}
	})...)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			logger.Error().Err(err).Int64("placementID", placement.ID).Msg("Error updating placement")
		}
		return fmt.Errorf("error updating placement: %w", dberrors.Classify(err))
	}
	return nil
}

// SetAccepted clears the accepted flag on every placement of the student and,
// when accepted is set, raises it on placementID. The placement must belong
// to the student. Both steps share one transaction.
func (r *PlacementRepository) SetAccepted(ctx context.Context, studentID, placementID int64, accepted bool) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Update("placements").
			Set("is_accepted", false).
			Where(squirrel.Eq{"student_id": studentID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build clear accepted query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		if !accepted {
			return nil
		}

		return withColumnFallback(ctx, tx, "accept placement", perKey(placementKeys, func(key string) statement {
			return func(ctx context.Context, q db.DB) error {
				sql, args, err := r.sb.Update("placements").
					Set("is_accepted", true).
					Where(squirrel.Eq{key: placementID, "student_id": studentID}).
					ToSql()
				if err != nil {
					return fmt.Errorf("failed to build accept placement query: %w", err)
				}
				tag, err := q.Exec(ctx, sql, args...)
				if err != nil {
					return err
				}
				if tag.RowsAffected() == 0 {
					return apperrors.NewNotFoundError("Placement not found")
				}
				return nil
			}
		})...)
	})
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			logger.Error().Err(err).Int64("studentID", studentID).Int64("placementID", placementID).Msg("Error setting accepted placement")
		}
		return fmt.Errorf("error setting accepted placement: %w", dberrors.Classify(err))
	}
	return nil
}

// Delete removes a placement. An unknown id is a no-op.
func (r *PlacementRepository) Delete(ctx context.Context, id int64) error {
	err := withColumnFallback(ctx, r.db, "delete placement", perKey(placementKeys, func(key string) statement {
		return func(ctx context.Context, q db.DB) error {
			sql, args, err := r.sb.Delete("placements").Where(squirrel.Eq{key: id}).ToSql()
			if err != nil {
				return fmt.Errorf("failed to build delete placement query: %w", err)
			}
			_, err = q.Exec(ctx, sql, args...)
			return err
		}
	})...)
	if err != nil {
		logger.Error().Err(err).Int64("placementID", id).Msg("Error deleting placement")
		return fmt.Errorf("error deleting placement: %w", dberrors.Classify(err))
	}
	return nil
}
