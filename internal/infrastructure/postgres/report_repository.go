package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implements the read-only aggregation queries. All duration sums
// are computed in SQL and scanned straight into decimal.Decimal via the
// NUMERIC codec registered on the pool.
type ReportRepo struct {
	q Querier
}

// NewReportRepository builds the aggregation adapter.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ProjectTimeSpentSeconds sums elapsed seconds over the project's closed logs.
func (r *ReportRepo) ProjectTimeSpentSeconds(ctx context.Context, projectID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(EXTRACT(EPOCH FROM (end_time - start_time))), 0)::numeric
		FROM time_logs
		WHERE project_id = $1 AND end_time IS NOT NULL`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, projectID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum project time: %w", err)
	}
	return total, nil
}

// DailyWorkingHours buckets the user's closed-log hours by the calendar day of
// the log's start. The range is inclusive on both ends.
func (r *ReportRepo) DailyWorkingHours(ctx context.Context, userID string, start, end time.Time) ([]repository.DayBucket, error) {
	query := `
		SELECT (date_trunc('day', start_time))::date AS day,
		       (SUM(EXTRACT(EPOCH FROM (end_time - start_time))) / 3600.0)::numeric
		FROM time_logs
		WHERE user_id = $1 AND end_time IS NOT NULL
		  AND start_time >= $2 AND start_time < $3 + interval '1 day'
		GROUP BY day
		ORDER BY day`
	return r.queryBuckets(ctx, query, userID, start, end)
}

// DailyAppUsageHours buckets the user's app-usage hours by sample day.
func (r *ReportRepo) DailyAppUsageHours(ctx context.Context, userID string, start, end time.Time) ([]repository.DayBucket, error) {
	query := `
		SELECT (date_trunc('day', recorded_at))::date AS day,
		       (SUM(duration_seconds) / 3600.0)::numeric
		FROM app_usages
		WHERE user_id = $1
		  AND recorded_at >= $2 AND recorded_at < $3 + interval '1 day'
		GROUP BY day
		ORDER BY day`
	return r.queryBuckets(ctx, query, userID, start, end)
}

// AppUsageTotals groups the caller-visible samples by application name, most
// used first.
func (r *ReportRepo) AppUsageTotals(ctx context.Context, scope access.Scope, start, end time.Time) ([]repository.AppUsageTotal, error) {
	where, args := sampleVisibilityWhere(scope, "a.user_id")
	query := fmt.Sprintf(`
		SELECT a.app_name,
		       (SUM(a.duration_seconds) / 3600.0)::numeric AS total_hours
		FROM app_usages a
		WHERE %s
		  AND a.recorded_at >= $%d AND a.recorded_at < $%d + interval '1 day'
		GROUP BY a.app_name
		ORDER BY total_hours DESC, a.app_name`, where, len(args)+1, len(args)+2)
	args = append(args, start, end)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sum app usage: %w", err)
	}
	defer rows.Close()

	var totals []repository.AppUsageTotal
	for rows.Next() {
		var t repository.AppUsageTotal
		if err := rows.Scan(&t.AppName, &t.TotalUsageHours); err != nil {
			return nil, fmt.Errorf("scan app usage total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func (r *ReportRepo) queryBuckets(ctx context.Context, query string, args ...any) ([]repository.DayBucket, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("bucket by day: %w", err)
	}
	defer rows.Close()

	var buckets []repository.DayBucket
	for rows.Next() {
		var b repository.DayBucket
		if err := rows.Scan(&b.Day, &b.Hours); err != nil {
			return nil, fmt.Errorf("scan day bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}
