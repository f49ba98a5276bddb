package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rahmanabdur1/productivity-app/internal/domain"
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
	"github.com/rahmanabdur1/productivity-app/internal/domain/repository"
)

var _ repository.ActivityMetricRepository = (*ActivityMetricRepo)(nil)

const activityMetricSelect = `
	SELECT m.id, m.user_id, m.metric_type, m.value, m.recorded_at, u.username
	FROM activity_metrics m
	JOIN users u ON u.id = m.user_id`

// ActivityMetricRepo implements the ActivityMetricRepository port over PostgreSQL.
type ActivityMetricRepo struct {
	q Querier
}

// NewActivityMetricRepository builds the persistence adapter for activity metrics.
func NewActivityMetricRepository(q Querier) *ActivityMetricRepo {
	return &ActivityMetricRepo{q: q}
}

// Create persists a new metric sample.
func (r *ActivityMetricRepo) Create(metric *entity.ActivityMetric) error {
	query := `
		INSERT INTO activity_metrics (id, user_id, metric_type, value, recorded_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		metric.ID, metric.UserID, metric.MetricType, metric.Value, metric.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity metric: %w", err)
	}
	return nil
}

// GetByID fetches a visible metric, (nil, nil) when missing or out of scope.
func (r *ActivityMetricRepo) GetByID(scope access.Scope, id string) (*entity.ActivityMetric, error) {
	where, args := sampleVisibilityWhere(scope, "m.user_id")
	query := fmt.Sprintf(`%s WHERE %s AND m.id = $%d`, activityMetricSelect, where, len(args)+1)
	args = append(args, id)

	var m entity.ActivityMetric
	err := scanActivityMetric(r.q.QueryRow(context.Background(), query, args...), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity metric: %w", err)
	}
	return &m, nil
}

// List returns the visible metrics, newest first.
func (r *ActivityMetricRepo) List(scope access.Scope, limit, offset int) ([]*entity.ActivityMetric, error) {
	where, args := sampleVisibilityWhere(scope, "m.user_id")
	query := fmt.Sprintf(`%s WHERE %s ORDER BY m.recorded_at DESC, m.id LIMIT %d OFFSET %d`,
		activityMetricSelect, where, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity metrics: %w", err)
	}
	defer rows.Close()

	var list []*entity.ActivityMetric
	for rows.Next() {
		var m entity.ActivityMetric
		if err := scanActivityMetric(rows, &m); err != nil {
			return nil, fmt.Errorf("scan activity metric: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update rewrites the mutable columns of a metric.
func (r *ActivityMetricRepo) Update(metric *entity.ActivityMetric) error {
	query := `
		UPDATE activity_metrics
		SET metric_type = $2, value = $3, recorded_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		metric.ID, metric.MetricType, metric.Value, metric.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("update activity metric: %w", err)
	}
	return nil
}

// Delete removes a metric row, ErrNotFound when absent.
func (r *ActivityMetricRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM activity_metrics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete activity metric: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanActivityMetric(row pgx.Row, m *entity.ActivityMetric) error {
	return row.Scan(
		&m.ID, &m.UserID, &m.MetricType, &m.Value, &m.RecordedAt, &m.UserUsername,
	)
}
