// Package seed populates a fresh database with a working demo data set: one
// admin, one team head, one project manager, three employees, a team, two
// projects and a week of sample activity. Every step is get-or-create, so
// running it twice changes nothing.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rahmanabdur1/productivity-app/internal/application/auth"
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
	"github.com/rahmanabdur1/productivity-app/internal/domain/repository"
	"github.com/rahmanabdur1/productivity-app/pkg/logger"
)

// adminScope bypasses the role filters for seeding lookups.
var adminScope = access.Scope{Role: entity.RoleAdmin}

// userSpec is one user to ensure.
type userSpec struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// DefaultUsers is the demo account set.
var DefaultUsers = []userSpec{
	{"admin", "admin@example.com", "admin123", "Admin", "User", entity.RoleAdmin},
	{"teamhead", "teamhead@example.com", "password123", "Team", "Head", entity.RoleTeamHead},
	{"projectmanager", "pm@example.com", "password123", "Project", "Manager", entity.RoleProjectManager},
	{"employee1", "employee1@example.com", "password123", "Employee", "One", entity.RoleEmployee},
	{"employee2", "employee2@example.com", "password123", "Employee", "Two", entity.RoleEmployee},
	{"employee3", "employee3@example.com", "password123", "Employee", "Three", entity.RoleEmployee},
}

// SampleApps are the applications used for the demo usage samples.
var SampleApps = []string{"VS Code", "Chrome", "Slack", "Email", "Terminal"}

// Seeder wires the repositories needed to populate the demo data.
type Seeder struct {
	users    repository.UserRepository
	teams    repository.TeamRepository
	projects repository.ProjectRepository
	timeLogs repository.TimeLogRepository
	usages   repository.AppUsageRepository
	metrics  repository.ActivityMetricRepository
	log      *logger.Logger
	now      func() time.Time
}

// New builds a Seeder.
func New(
	users repository.UserRepository,
	teams repository.TeamRepository,
	projects repository.ProjectRepository,
	timeLogs repository.TimeLogRepository,
	usages repository.AppUsageRepository,
	metrics repository.ActivityMetricRepository,
	log *logger.Logger,
) *Seeder {
	return &Seeder{
		users:    users,
		teams:    teams,
		projects: projects,
		timeLogs: timeLogs,
		usages:   usages,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

// Run ensures the whole demo data set exists.
func (s *Seeder) Run(ctx context.Context) error {
	byUsername := make(map[string]*entity.User, len(DefaultUsers))
	for _, spec := range DefaultUsers {
		user, err := s.ensureUser(spec)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", spec.Username, err)
		}
		byUsername[spec.Username] = user
	}

	team, err := s.ensureTeam("Development Team", byUsername["teamhead"],
		byUsername["employee1"], byUsername["employee2"], byUsername["employee3"])
	if err != nil {
		return fmt.Errorf("seed team: %w", err)
	}

	website, err := s.ensureProject("Website Redesign",
		"Complete overhaul of the company website", 80, byUsername["projectmanager"], team)
	if err != nil {
		return fmt.Errorf("seed project: %w", err)
	}
	mobile, err := s.ensureProject("Mobile App Development",
		"New mobile application for iOS and Android", 120, byUsername["projectmanager"], team)
	if err != nil {
		return fmt.Errorf("seed project: %w", err)
	}

	employees := []*entity.User{byUsername["employee1"], byUsername["employee2"], byUsername["employee3"]}
	projects := []*entity.Project{website, mobile}
	for i, employee := range employees {
		if err := s.ensureActivity(employee, projects[i%len(projects)], i); err != nil {
			return fmt.Errorf("seed activity for %s: %w", employee.Username, err)
		}
	}

	s.log.Info().Int("users", len(DefaultUsers)).Msg("seed complete")
	return nil
}

func (s *Seeder) ensureUser(spec userSpec) (*entity.User, error) {
	existing, err := s.users.GetByUsername(spec.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	hash, err := auth.HashPassword(spec.Password)
	if err != nil {
		return nil, err
	}
	now := s.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     spec.Username,
		Email:        spec.Email,
		PasswordHash: hash,
		FirstName:    spec.FirstName,
		LastName:     spec.LastName,
		Role:         spec.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("created user")
	return user, nil
}

func (s *Seeder) ensureTeam(name string, head *entity.User, members ...*entity.User) (*entity.Team, error) {
	teams, err := s.teams.List(adminScope, 500, 0)
	if err != nil {
		return nil, err
	}
	for _, t := range teams {
		if t.Name == name {
			return t, nil
		}
	}
	team := &entity.Team{
		ID:     uuid.New().String(),
		Name:   name,
		HeadID: &head.ID,
	}
	for _, m := range members {
		team.Members = append(team.Members, entity.TeamMember{UserID: m.ID, Username: m.Username})
	}
	if err := s.teams.Create(team); err != nil {
		return nil, err
	}
	s.log.Info().Str("team", name).Int("members", len(members)).Msg("created team")
	return team, nil
}

func (s *Seeder) ensureProject(name, description string, estimatedHours int64, manager *entity.User, team *entity.Team) (*entity.Project, error) {
	projects, err := s.projects.List(adminScope, 500, 0)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.Name == name {
			return p, nil
		}
	}
	start := truncateToDay(s.now()).AddDate(0, 0, -30)
	end := start.AddDate(0, 0, 90)
	project := &entity.Project{
		ID:             uuid.New().String(),
		Name:           name,
		Description:    description,
		ManagerID:      &manager.ID,
		TeamID:         &team.ID,
		EstimatedHours: decimal.NewFromInt(estimatedHours),
		StartDate:      &start,
		EndDate:        &end,
		Status:         "In Progress",
	}
	if err := s.projects.Create(project); err != nil {
		return nil, err
	}
	s.log.Info().Str("project", name).Msg("created project")
	return project, nil
}

// ensureActivity adds a week of logs, usage samples and metrics for one
// employee. Skipped entirely when the employee already has any time log.
func (s *Seeder) ensureActivity(employee *entity.User, project *entity.Project, userIdx int) error {
	scope := access.Scope{UserID: employee.ID, Role: employee.Role}
	existing, err := s.timeLogs.List(scope, 1, 0)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	today := truncateToDay(s.now())
	for dayIdx := 0; dayIdx < 7; dayIdx++ {
		day := today.AddDate(0, 0, -dayIdx)
		start := day.Add(9 * time.Hour)
		end := start.Add(time.Duration(SampleWorkMinutes(dayIdx, userIdx)) * time.Minute)
		now := s.now()
		log := &entity.TimeLog{
			ID:          uuid.New().String(),
			UserID:      employee.ID,
			StartTime:   start,
			EndTime:     &end,
			Description: fmt.Sprintf("Work on %s", project.Name),
			ProjectID:   &project.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.timeLogs.Create(log); err != nil {
			return err
		}

		for appIdx, appName := range SampleApps {
			usage := &entity.AppUsage{
				ID:              uuid.New().String(),
				UserID:          employee.ID,
				AppName:         appName,
				DurationSeconds: SampleUsageSeconds(dayIdx, userIdx, appIdx),
				RecordedAt:      start.Add(time.Duration(appIdx) * time.Hour),
			}
			if err := s.usages.Create(usage); err != nil {
				return err
			}
		}

		metric := &entity.ActivityMetric{
			ID:         uuid.New().String(),
			UserID:     employee.ID,
			MetricType: "keyboard_strokes",
			Value:      float64(SampleKeystrokes(dayIdx, userIdx)),
			RecordedAt: start.Add(4 * time.Hour),
		}
		if err := s.metrics.Create(metric); err != nil {
			return err
		}
	}
	s.log.Info().Str("username", employee.Username).Msg("created sample activity")
	return nil
}

// SampleWorkMinutes returns a deterministic daily working duration between
// six and nine hours.
func SampleWorkMinutes(dayIdx, userIdx int) int {
	return 360 + ((dayIdx*47 + userIdx*31) % 180)
}

// SampleUsageSeconds returns a deterministic per-application usage between
// 30 minutes and 2.5 hours.
func SampleUsageSeconds(dayIdx, userIdx, appIdx int) int {
	return 1800 + ((dayIdx*67+userIdx*53+appIdx*41)%72)*100
}

// SampleKeystrokes returns a deterministic daily keystroke count.
func SampleKeystrokes(dayIdx, userIdx int) int {
	return 5000 + (dayIdx*997+userIdx*613)%10000
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
