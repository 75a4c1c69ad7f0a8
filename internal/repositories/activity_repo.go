package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sooquk/sooquk-dashboard/internal/entities"
)

type ActivityFilter struct {
	Resource string
	Limit    int
	Offset   int
}

type ActivityRepository interface {
	Insert(ctx context.Context, activity entities.Activity) error
	List(ctx context.Context, filter ActivityFilter) ([]entities.Activity, error)
	Count(ctx context.Context, resource string) (int64, error)
}

type activityRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewActivityRepository(db *sql.DB, log *logrus.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log,
	}
}

const insertActivity = `INSERT INTO activity_log (id, user_id, user_name, role, action, resource, resource_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO NOTHING`

// Insert is idempotent on the activity ID so redelivered events are harmless.
func (r *activityRepository) Insert(ctx context.Context, a entities.Activity) error {
	_, err := r.db.ExecContext(ctx, insertActivity,
		a.ID,
		a.UserID,
		a.UserName,
		a.Role,
		a.Action,
		a.Resource,
		a.ResourceID,
		a.CreatedAt,
	)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"activity_id": a.ID,
			"resource":    a.Resource,
			"error":       err,
		}).Error("Failed to insert activity")
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

const listActivity = `SELECT id, user_id, user_name, role, action, resource, resource_id, created_at
FROM activity_log
WHERE ($1 = '' OR resource = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

func (r *activityRepository) List(ctx context.Context, f ActivityFilter) ([]entities.Activity, error) {
	rows, err := r.db.QueryContext(ctx, listActivity, f.Resource, f.Limit, f.Offset)
	if err != nil {
		r.log.WithField("error", err).Error("Failed to query activity")
		return nil, fmt.Errorf("failed to query activity: %w", err)
	}
	defer rows.Close()

	activities := make([]entities.Activity, 0, f.Limit)
	for rows.Next() {
		var a entities.Activity
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.UserName,
			&a.Role,
			&a.Action,
			&a.Resource,
			&a.ResourceID,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity: %w", err)
	}

	return activities, nil
}

const countActivity = `SELECT COUNT(*) FROM activity_log WHERE ($1 = '' OR resource = $1)`

func (r *activityRepository) Count(ctx context.Context, resource string) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, countActivity, resource).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count activity: %w", err)
	}
	return total, nil
}
