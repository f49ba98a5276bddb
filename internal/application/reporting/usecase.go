// Package reporting computes the derived summaries: per-project progress,
// per-user daily working/app-usage hours and the grouped app-usage totals.
// Everything is read-only over the ReportRepository port.
//
// Rounding rule for every exported figure: two decimal places, half away
// from zero (decimal.Round).
package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/domain"
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/repository"
)

const (
	dateLayout = "2006-01-02"

	defaultDailySummaryDays = 7  // daily summary window when no range is given
	defaultAppSummaryDays   = 30 // app-usage summary window when no range is given
	secondsPerHour          = 3600
)

// ReportUseCase runs the aggregation queries and shapes the responses.
type ReportUseCase struct {
	projectRepo repository.ProjectRepository
	reportRepo  repository.ReportRepository
	now         func() time.Time
}

// NewReportUseCase builds the use case with its read ports.
func NewReportUseCase(projectRepo repository.ProjectRepository, reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{projectRepo: projectRepo, reportRepo: reportRepo, now: time.Now}
}

// ProgressReport sums the closed time logs of a project and compares the
// total against the estimated-hours budget. Open logs contribute nothing;
// a budget of zero yields a progress of zero rather than a division by zero.
// The project must be visible to the caller.
func (uc *ReportUseCase) ProgressReport(ctx context.Context, scope access.Scope, projectID string) (*dto.ProgressReportResponse, error) {
	project, err := uc.projectRepo.GetByID(scope, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	seconds, err := uc.reportRepo.ProjectTimeSpentSeconds(ctx, projectID)
	if err != nil {
		return nil, err
	}
	hours := seconds.Div(decimal.NewFromInt(secondsPerHour))

	progress := decimal.Zero
	if project.EstimatedHours.Sign() > 0 {
		progress = hours.Div(project.EstimatedHours).Mul(decimal.NewFromInt(100))
	}

	return &dto.ProgressReportResponse{
		ProjectID:           project.ID,
		ProjectName:         project.Name,
		EstimatedHours:      project.EstimatedHours.InexactFloat64(),
		TotalTimeSpentHours: hours.Round(2).InexactFloat64(),
		ProgressPercentage:  progress.Round(2).InexactFloat64(),
		Status:              project.Status,
	}, nil
}

// DailySummary returns one record per calendar day in the inclusive
// [start, end] range for the caller's own rows, defaulting to the last 7
// days ending today. Days without rows still appear, with zero hours.
func (uc *ReportUseCase) DailySummary(ctx context.Context, scope access.Scope, startStr, endStr string) ([]dto.DailySummaryRecord, error) {
	start, end, err := uc.parseRange(startStr, endStr, defaultDailySummaryDays)
	if err != nil {
		return nil, err
	}

	working, err := uc.reportRepo.DailyWorkingHours(ctx, scope.UserID, start, end)
	if err != nil {
		return nil, err
	}
	appUsage, err := uc.reportRepo.DailyAppUsageHours(ctx, scope.UserID, start, end)
	if err != nil {
		return nil, err
	}

	workingByDay := bucketMap(working)
	appUsageByDay := bucketMap(appUsage)

	var records []dto.DailySummaryRecord
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		wh := workingByDay[key]
		auh := appUsageByDay[key]
		records = append(records, dto.DailySummaryRecord{
			Date:              key,
			WorkingHours:      wh.Round(2).InexactFloat64(),
			AppUsageHours:     auh.Round(2).InexactFloat64(),
			ProductivityScore: ProductivityScore(wh, auh).InexactFloat64(),
		})
	}
	return records, nil
}

// AppUsageSummary groups the caller-visible samples by application, sorted
// by total hours descending, defaulting to the last 30 days ending today.
func (uc *ReportUseCase) AppUsageSummary(ctx context.Context, scope access.Scope, startStr, endStr string) ([]dto.AppUsageSummaryRecord, error) {
	start, end, err := uc.parseRange(startStr, endStr, defaultAppSummaryDays)
	if err != nil {
		return nil, err
	}
	totals, err := uc.reportRepo.AppUsageTotals(ctx, scope, start, end)
	if err != nil {
		return nil, err
	}
	records := make([]dto.AppUsageSummaryRecord, 0, len(totals))
	for _, t := range totals {
		records = append(records, dto.AppUsageSummaryRecord{
			AppName:         t.AppName,
			TotalUsageHours: t.TotalUsageHours.Round(2).InexactFloat64(),
		})
	}
	return records, nil
}

// parseRange validates an optional YYYY-MM-DD pair. The pair only applies
// when both bounds are present; a lone bound falls back to the trailing
// window of defaultDays ending today, like a missing pair. A malformed date
// or an inverted range is a validation error.
func (uc *ReportUseCase) parseRange(startStr, endStr string, defaultDays int) (time.Time, time.Time, error) {
	if startStr == "" || endStr == "" {
		end := truncateToDay(uc.now())
		start := end.AddDate(0, 0, -(defaultDays - 1))
		return start, end, nil
	}
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrValidation
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrValidation
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, domain.ErrValidation
	}
	return start, end, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func bucketMap(buckets []repository.DayBucket) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(buckets))
	for _, b := range buckets {
		m[b.Day.Format(dateLayout)] = b.Hours
	}
	return m
}
