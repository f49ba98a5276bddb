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

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// projectSelect joins the manager username and team name for display.
const projectSelect = `
	SELECT p.id, p.name, p.description, p.manager_id, p.team_id,
	       p.estimated_hours, p.start_date, p.end_date, p.status,
	       mu.username, t.name
	FROM projects p
	LEFT JOIN users mu ON mu.id = p.manager_id
	LEFT JOIN teams t ON t.id = p.team_id`

// ProjectRepo implements the ProjectRepository port over PostgreSQL.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository builds the persistence adapter for projects.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// projectVisibilityWhere returns the row filter for the caller's role.
func projectVisibilityWhere(scope access.Scope) (string, []any) {
	switch scope.Role {
	case entity.RoleAdmin:
		return `TRUE`, nil
	case entity.RoleProjectManager:
		return `p.manager_id = $1`, []any{scope.UserID}
	case entity.RoleTeamHead:
		// Projects of the teams the caller heads.
		return `p.team_id IN (SELECT th.id FROM teams th WHERE th.head_id = $1)`,
			[]any{scope.UserID}
	default:
		// Employees: projects of the teams the caller belongs to.
		return `p.team_id IN (SELECT tm.team_id FROM team_members tm WHERE tm.user_id = $1)`,
			[]any{scope.UserID}
	}
}

// Create persists a new project. A taken name maps to ErrDuplicate.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (id, name, description, manager_id, team_id,
			estimated_hours, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, project.Description, project.ManagerID,
		project.TeamID, project.EstimatedHours, project.StartDate,
		project.EndDate, project.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID fetches a visible project, (nil, nil) when missing or out of scope.
func (r *ProjectRepo) GetByID(scope access.Scope, id string) (*entity.Project, error) {
	where, args := projectVisibilityWhere(scope)
	query := fmt.Sprintf(`%s WHERE %s AND p.id = $%d`, projectSelect, where, len(args)+1)
	args = append(args, id)

	var p entity.Project
	err := scanProject(r.q.QueryRow(context.Background(), query, args...), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// List returns the projects visible to the caller, ordered by name.
func (r *ProjectRepo) List(scope access.Scope, limit, offset int) ([]*entity.Project, error) {
	where, args := projectVisibilityWhere(scope)
	query := fmt.Sprintf(`%s WHERE %s ORDER BY p.name LIMIT %d OFFSET %d`,
		projectSelect, where, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update rewrites the mutable columns of a project.
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE projects
		SET name = $2, description = $3, manager_id = $4, team_id = $5,
		    estimated_hours = $6, start_date = $7, end_date = $8, status = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Name, project.Description, project.ManagerID,
		project.TeamID, project.EstimatedHours, project.StartDate,
		project.EndDate, project.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

func scanProject(row pgx.Row, p *entity.Project) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.ManagerID, &p.TeamID,
		&p.EstimatedHours, &p.StartDate, &p.EndDate, &p.Status,
		&p.ManagerUsername, &p.TeamName,
	)
}
