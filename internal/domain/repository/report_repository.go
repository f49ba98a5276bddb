package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
)

// DayBucket is one calendar day's aggregated hours. Day carries only the date
// part (midnight UTC as stored).
type DayBucket struct {
	Day   time.Time
	Hours decimal.Decimal
}

// AppUsageTotal is the per-application total over a date range.
type AppUsageTotal struct {
	AppName         string
	TotalUsageHours decimal.Decimal
}

// ReportRepository exposes the read-only aggregation queries. Only closed
// time logs (end_time set) count toward any duration sum; date ranges are
// inclusive on both ends.
type ReportRepository interface {
	// ProjectTimeSpentSeconds sums elapsed seconds over the project's closed logs.
	ProjectTimeSpentSeconds(ctx context.Context, projectID string) (decimal.Decimal, error)

	// DailyWorkingHours buckets the user's closed-log hours by the calendar
	// day of the log's start. Days without rows are absent from the result.
	DailyWorkingHours(ctx context.Context, userID string, start, end time.Time) ([]DayBucket, error)

	// DailyAppUsageHours buckets the user's app-usage hours by sample day.
	DailyAppUsageHours(ctx context.Context, userID string, start, end time.Time) ([]DayBucket, error)

	// AppUsageTotals groups the caller-visible samples by application name,
	// sorted by total hours descending.
	AppUsageTotals(ctx context.Context, scope access.Scope, start, end time.Time) ([]AppUsageTotal, error)
}
