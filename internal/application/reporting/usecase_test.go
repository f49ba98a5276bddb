package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahmanabdur1/productivity-app/internal/domain"
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
	"github.com/rahmanabdur1/productivity-app/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func (f *fakeProjectRepo) Create(*entity.Project) error { return nil }
func (f *fakeProjectRepo) Update(*entity.Project) error { return nil }
func (f *fakeProjectRepo) GetByID(_ access.Scope, id string) (*entity.Project, error) {
	return f.projects[id], nil
}
func (f *fakeProjectRepo) List(access.Scope, int, int) ([]*entity.Project, error) {
	return nil, nil
}

type fakeReportRepo struct {
	projectSeconds decimal.Decimal
	working        []repository.DayBucket
	appUsage       []repository.DayBucket
	totals         []repository.AppUsageTotal
}

func (f *fakeReportRepo) ProjectTimeSpentSeconds(context.Context, string) (decimal.Decimal, error) {
	return f.projectSeconds, nil
}
func (f *fakeReportRepo) DailyWorkingHours(context.Context, string, time.Time, time.Time) ([]repository.DayBucket, error) {
	return f.working, nil
}
func (f *fakeReportRepo) DailyAppUsageHours(context.Context, string, time.Time, time.Time) ([]repository.DayBucket, error) {
	return f.appUsage, nil
}
func (f *fakeReportRepo) AppUsageTotals(context.Context, access.Scope, time.Time, time.Time) ([]repository.AppUsageTotal, error) {
	return f.totals, nil
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestUseCase(projects *fakeProjectRepo, reports *fakeReportRepo) *ReportUseCase {
	uc := NewReportUseCase(projects, reports)
	uc.now = func() time.Time { return day("2025-06-15") }
	return uc
}

var employeeScope = access.Scope{UserID: "u1", Role: entity.RoleEmployee}

// ──────────────────────────────────────────────────────────────────────────────
// Progress report
// ──────────────────────────────────────────────────────────────────────────────

func TestProgressReport_QuarterDone(t *testing.T) {
	projects := &fakeProjectRepo{projects: map[string]*entity.Project{
		"p1": {ID: "p1", Name: "Website Redesign", EstimatedHours: decimal.NewFromInt(40), Status: "In Progress"},
	}}
	// 10 hours of closed logs against a 40 hour budget.
	reports := &fakeReportRepo{projectSeconds: decimal.NewFromInt(10 * 3600)}
	uc := newTestUseCase(projects, reports)

	out, err := uc.ProgressReport(context.Background(), employeeScope, "p1")
	require.NoError(t, err)

	assert.Equal(t, "Website Redesign", out.ProjectName)
	assert.InDelta(t, 10.0, out.TotalTimeSpentHours, 1e-9)
	assert.InDelta(t, 25.0, out.ProgressPercentage, 1e-9)
	assert.Equal(t, "In Progress", out.Status)
}

func TestProgressReport_ZeroEstimate(t *testing.T) {
	projects := &fakeProjectRepo{projects: map[string]*entity.Project{
		"p1": {ID: "p1", Name: "Backlog", EstimatedHours: decimal.Zero, Status: "Planning"},
	}}
	reports := &fakeReportRepo{projectSeconds: decimal.NewFromInt(7200)}
	uc := newTestUseCase(projects, reports)

	out, err := uc.ProgressReport(context.Background(), employeeScope, "p1")
	require.NoError(t, err)

	assert.InDelta(t, 2.0, out.TotalTimeSpentHours, 1e-9)
	assert.Zero(t, out.ProgressPercentage, "zero budget must not divide")
}

func TestProgressReport_RoundsToTwoDecimals(t *testing.T) {
	projects := &fakeProjectRepo{projects: map[string]*entity.Project{
		"p1": {ID: "p1", Name: "X", EstimatedHours: decimal.NewFromInt(3), Status: "In Progress"},
	}}
	// 4000s = 1.1111...h; 1.1111/3*100 = 37.037...%
	reports := &fakeReportRepo{projectSeconds: decimal.NewFromInt(4000)}
	uc := newTestUseCase(projects, reports)

	out, err := uc.ProgressReport(context.Background(), employeeScope, "p1")
	require.NoError(t, err)

	assert.InDelta(t, 1.11, out.TotalTimeSpentHours, 1e-9)
	assert.InDelta(t, 37.04, out.ProgressPercentage, 1e-9)
}

func TestProgressReport_InvisibleProjectReadsAsMissing(t *testing.T) {
	uc := newTestUseCase(&fakeProjectRepo{projects: map[string]*entity.Project{}}, &fakeReportRepo{})

	_, err := uc.ProgressReport(context.Background(), employeeScope, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Daily summary
// ──────────────────────────────────────────────────────────────────────────────

func TestDailySummary_OneRecordPerDayIncludingEmptyDays(t *testing.T) {
	reports := &fakeReportRepo{
		working: []repository.DayBucket{
			{Day: day("2025-06-02"), Hours: decimal.NewFromInt(8)},
		},
		appUsage: []repository.DayBucket{
			{Day: day("2025-06-03"), Hours: decimal.NewFromInt(4)},
		},
	}
	uc := newTestUseCase(&fakeProjectRepo{}, reports)

	out, err := uc.DailySummary(context.Background(), employeeScope, "2025-06-01", "2025-06-04")
	require.NoError(t, err)
	require.Len(t, out, 4, "inclusive range: one record per calendar day")

	assert.Equal(t, "2025-06-01", out[0].Date)
	assert.Zero(t, out[0].WorkingHours)
	assert.Zero(t, out[0].ProductivityScore)

	assert.Equal(t, "2025-06-02", out[1].Date)
	assert.InDelta(t, 8.0, out[1].WorkingHours, 1e-9)
	assert.InDelta(t, 70.0, out[1].ProductivityScore, 1e-9, "full working day, no app usage")

	assert.Equal(t, "2025-06-03", out[2].Date)
	assert.InDelta(t, 4.0, out[2].AppUsageHours, 1e-9)
	assert.InDelta(t, 15.0, out[2].ProductivityScore, 1e-9, "half of the app-usage weight")

	assert.Equal(t, "2025-06-04", out[3].Date)
	assert.Zero(t, out[3].WorkingHours)
}

func TestDailySummary_DefaultRangeIsSevenDays(t *testing.T) {
	uc := newTestUseCase(&fakeProjectRepo{}, &fakeReportRepo{})

	out, err := uc.DailySummary(context.Background(), employeeScope, "", "")
	require.NoError(t, err)
	require.Len(t, out, 7)
	assert.Equal(t, "2025-06-09", out[0].Date)
	assert.Equal(t, "2025-06-15", out[6].Date, "window ends today")
}

func TestDailySummary_RangeValidation(t *testing.T) {
	uc := newTestUseCase(&fakeProjectRepo{}, &fakeReportRepo{})

	cases := []struct{ name, start, end string }{
		{"inverted range", "2025-06-10", "2025-06-01"},
		{"malformed start", "junk", "2025-06-10"},
		{"malformed end", "2025-06-01", "junk"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.DailySummary(context.Background(), employeeScope, tc.start, tc.end)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestDailySummary_LoneBoundFallsBackToDefault(t *testing.T) {
	uc := newTestUseCase(&fakeProjectRepo{}, &fakeReportRepo{})

	cases := []struct{ name, start, end string }{
		{"start only", "2025-06-01", ""},
		{"end only", "", "2025-06-10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := uc.DailySummary(context.Background(), employeeScope, tc.start, tc.end)
			require.NoError(t, err)
			require.Len(t, out, 7, "a lone bound is ignored like a missing pair")
			assert.Equal(t, "2025-06-09", out[0].Date)
			assert.Equal(t, "2025-06-15", out[6].Date)
		})
	}
}

func TestDailySummary_SingleDayRange(t *testing.T) {
	reports := &fakeReportRepo{
		working:  []repository.DayBucket{{Day: day("2025-06-02"), Hours: decimal.NewFromInt(2)}},
		appUsage: []repository.DayBucket{{Day: day("2025-06-02"), Hours: decimal.NewFromInt(2)}},
	}
	uc := newTestUseCase(&fakeProjectRepo{}, reports)

	out, err := uc.DailySummary(context.Background(), employeeScope, "2025-06-02", "2025-06-02")
	require.NoError(t, err)
	require.Len(t, out, 1)
	// 70*(2/8) + 30*(2/8) = 25
	assert.InDelta(t, 25.0, out[0].ProductivityScore, 1e-9)
}

// ──────────────────────────────────────────────────────────────────────────────
// App-usage summary
// ──────────────────────────────────────────────────────────────────────────────

func TestAppUsageSummary_KeepsRepositoryOrder(t *testing.T) {
	reports := &fakeReportRepo{
		totals: []repository.AppUsageTotal{
			{AppName: "VS Code", TotalUsageHours: decimal.NewFromFloat(12.5)},
			{AppName: "Chrome", TotalUsageHours: decimal.NewFromFloat(7.25)},
			{AppName: "Slack", TotalUsageHours: decimal.NewFromFloat(1.125)},
		},
	}
	uc := newTestUseCase(&fakeProjectRepo{}, reports)

	out, err := uc.AppUsageSummary(context.Background(), employeeScope, "", "")
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "VS Code", out[0].AppName)
	assert.InDelta(t, 12.5, out[0].TotalUsageHours, 1e-9)
	assert.Equal(t, "Slack", out[2].AppName)
	assert.InDelta(t, 1.13, out[2].TotalUsageHours, 1e-9, "rounded half away from zero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Productivity score
// ──────────────────────────────────────────────────────────────────────────────

func TestProductivityScore(t *testing.T) {
	cases := []struct {
		name     string
		working  float64
		appUsage float64
		want     float64
	}{
		{"empty day", 0, 0, 0},
		{"full day both", 8, 8, 100},
		{"capped above target", 12, 10, 100},
		{"half working only", 4, 0, 35},
		{"half both", 4, 4, 50},
		{"app usage only", 0, 8, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProductivityScore(decimal.NewFromFloat(tc.working), decimal.NewFromFloat(tc.appUsage))
			assert.InDelta(t, tc.want, got.InexactFloat64(), 1e-9)
		})
	}
}

func TestProductivityScore_Deterministic(t *testing.T) {
	a := ProductivityScore(decimal.NewFromFloat(5.5), decimal.NewFromFloat(3.25))
	b := ProductivityScore(decimal.NewFromFloat(5.5), decimal.NewFromFloat(3.25))
	assert.True(t, a.Equal(b))
}
