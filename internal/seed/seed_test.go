package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
	"github.com/rahmanabdur1/productivity-app/internal/seed"
	"github.com/rahmanabdur1/productivity-app/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory repositories
// ──────────────────────────────────────────────────────────────────────────────

type memUsers struct {
	users []*entity.User
}

func (m *memUsers) Create(u *entity.User) error { m.users = append(m.users, u); return nil }
func (m *memUsers) GetByID(id string) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUsers) GetByUsername(username string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUsers) List(access.Scope, int, int) ([]*entity.User, error) { return m.users, nil }
func (m *memUsers) Update(*entity.User) error                          { return nil }

type memTeams struct {
	teams []*entity.Team
}

func (m *memTeams) Create(t *entity.Team) error { m.teams = append(m.teams, t); return nil }
func (m *memTeams) GetByID(_ access.Scope, id string) (*entity.Team, error) {
	for _, t := range m.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (m *memTeams) List(access.Scope, int, int) ([]*entity.Team, error) { return m.teams, nil }
func (m *memTeams) Update(*entity.Team) error                           { return nil }

type memProjects struct {
	projects []*entity.Project
}

func (m *memProjects) Create(p *entity.Project) error { m.projects = append(m.projects, p); return nil }
func (m *memProjects) GetByID(_ access.Scope, id string) (*entity.Project, error) {
	for _, p := range m.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (m *memProjects) List(access.Scope, int, int) ([]*entity.Project, error) {
	return m.projects, nil
}
func (m *memProjects) Update(*entity.Project) error { return nil }

type memTimeLogs struct {
	logs []*entity.TimeLog
}

func (m *memTimeLogs) Create(l *entity.TimeLog) error { m.logs = append(m.logs, l); return nil }
func (m *memTimeLogs) GetByID(_ access.Scope, id string) (*entity.TimeLog, error) {
	for _, l := range m.logs {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

// List honors the owner filter the seeder relies on to detect existing
// activity per employee.
func (m *memTimeLogs) List(scope access.Scope, limit, _ int) ([]*entity.TimeLog, error) {
	var out []*entity.TimeLog
	for _, l := range m.logs {
		if scope.Role == entity.RoleAdmin || l.UserID == scope.UserID {
			out = append(out, l)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
func (m *memTimeLogs) Update(*entity.TimeLog) error { return nil }
func (m *memTimeLogs) Delete(string) error          { return nil }

type memAppUsages struct {
	usages []*entity.AppUsage
}

func (m *memAppUsages) Create(u *entity.AppUsage) error { m.usages = append(m.usages, u); return nil }
func (m *memAppUsages) GetByID(access.Scope, string) (*entity.AppUsage, error) {
	return nil, nil
}
func (m *memAppUsages) List(access.Scope, int, int) ([]*entity.AppUsage, error) {
	return m.usages, nil
}
func (m *memAppUsages) Update(*entity.AppUsage) error { return nil }
func (m *memAppUsages) Delete(string) error           { return nil }

type memMetrics struct {
	metrics []*entity.ActivityMetric
}

func (m *memMetrics) Create(x *entity.ActivityMetric) error {
	m.metrics = append(m.metrics, x)
	return nil
}
func (m *memMetrics) GetByID(access.Scope, string) (*entity.ActivityMetric, error) {
	return nil, nil
}
func (m *memMetrics) List(access.Scope, int, int) ([]*entity.ActivityMetric, error) {
	return m.metrics, nil
}
func (m *memMetrics) Update(*entity.ActivityMetric) error { return nil }
func (m *memMetrics) Delete(string) error                 { return nil }

type fixture struct {
	users    *memUsers
	teams    *memTeams
	projects *memProjects
	timeLogs *memTimeLogs
	usages   *memAppUsages
	metrics  *memMetrics
	seeder   *seed.Seeder
}

func newFixture() *fixture {
	f := &fixture{
		users:    &memUsers{},
		teams:    &memTeams{},
		projects: &memProjects{},
		timeLogs: &memTimeLogs{},
		usages:   &memAppUsages{},
		metrics:  &memMetrics{},
	}
	f.seeder = seed.New(f.users, f.teams, f.projects, f.timeLogs, f.usages, f.metrics,
		logger.New(logger.Config{Level: "error"}))
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_PopulatesDemoData(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.seeder.Run(context.Background()))

	assert.Len(t, f.users.users, len(seed.DefaultUsers))
	assert.Len(t, f.teams.teams, 1)
	assert.Len(t, f.projects.projects, 2)

	// 3 employees x 7 days.
	assert.Len(t, f.timeLogs.logs, 21)
	assert.Len(t, f.usages.usages, 21*len(seed.SampleApps))
	assert.Len(t, f.metrics.metrics, 21)

	team := f.teams.teams[0]
	assert.Equal(t, "Development Team", team.Name)
	require.NotNil(t, team.HeadID)
	assert.Len(t, team.Members, 3)

	for _, p := range f.projects.projects {
		require.NotNil(t, p.ManagerID)
		require.NotNil(t, p.TeamID)
		assert.Equal(t, team.ID, *p.TeamID)
	}

	for _, l := range f.timeLogs.logs {
		require.NotNil(t, l.EndTime, "seeded logs are closed")
		assert.True(t, l.EndTime.After(l.StartTime))
	}
}

func TestRun_IsIdempotent(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.seeder.Run(context.Background()))

	usersBefore := len(f.users.users)
	logsBefore := len(f.timeLogs.logs)
	usagesBefore := len(f.usages.usages)

	require.NoError(t, f.seeder.Run(context.Background()))

	assert.Len(t, f.users.users, usersBefore)
	assert.Len(t, f.teams.teams, 1)
	assert.Len(t, f.projects.projects, 2)
	assert.Len(t, f.timeLogs.logs, logsBefore)
	assert.Len(t, f.usages.usages, usagesBefore)
}

func TestSampleDataStaysInRange(t *testing.T) {
	for dayIdx := 0; dayIdx < 7; dayIdx++ {
		for userIdx := 0; userIdx < 3; userIdx++ {
			m := seed.SampleWorkMinutes(dayIdx, userIdx)
			assert.GreaterOrEqual(t, m, 360)
			assert.Less(t, m, 540)

			k := seed.SampleKeystrokes(dayIdx, userIdx)
			assert.GreaterOrEqual(t, k, 5000)
			assert.Less(t, k, 15000)

			for appIdx := range seed.SampleApps {
				s := seed.SampleUsageSeconds(dayIdx, userIdx, appIdx)
				assert.GreaterOrEqual(t, s, 1800)
				assert.LessOrEqual(t, s, 9000)
			}
		}
	}
}

func TestSampleDataIsDeterministic(t *testing.T) {
	assert.Equal(t, seed.SampleWorkMinutes(2, 1), seed.SampleWorkMinutes(2, 1))
	assert.Equal(t, seed.SampleUsageSeconds(3, 0, 4), seed.SampleUsageSeconds(3, 0, 4))
	assert.Equal(t, seed.SampleKeystrokes(6, 2), seed.SampleKeystrokes(6, 2))
}
