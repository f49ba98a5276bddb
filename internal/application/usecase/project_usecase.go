package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/domain"
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
	"github.com/rahmanabdur1/productivity-app/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ProjectUseCase applies the business rules for projects. Writes are
// admin-only; read visibility is handled by the repository's role filters.
type ProjectUseCase struct {
	repo    repository.ProjectRepository
	deleter repository.DeletionRepository
}

// NewProjectUseCase builds the use case with its persistence ports.
func NewProjectUseCase(repo repository.ProjectRepository, deleter repository.DeletionRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, deleter: deleter}
}

// Create registers a new project. Admin-only. The estimated-hours budget must
// be non-negative; dates use YYYY-MM-DD.
func (uc *ProjectUseCase) Create(scope access.Scope, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if !scope.CanManageProjects() {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" || in.EstimatedHours < 0 {
		return nil, domain.ErrValidation
	}
	startDate, err := parseDatePtr(in.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr(in.EndDate)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.DefaultProjectStatus
	}
	project := &entity.Project{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		ManagerID:      in.Manager,
		TeamID:         in.Team,
		EstimatedHours: decimal.NewFromFloat(in.EstimatedHours),
		StartDate:      startDate,
		EndDate:        endDate,
		Status:         status,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return uc.GetByID(scope, project.ID)
}

// List returns the projects visible to the caller.
func (uc *ProjectUseCase) List(scope access.Scope, limit, offset int) ([]dto.ProjectResponse, error) {
	limit, offset = dto.ClampPage(limit, offset)
	projects, err := uc.repo.List(scope, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, *toProjectResponse(p))
	}
	return out, nil
}

// GetByID returns a project if visible to the caller.
func (uc *ProjectUseCase) GetByID(scope access.Scope, id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// Update patches a project. Admin-only.
func (uc *ProjectUseCase) Update(scope access.Scope, id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if !scope.CanManageProjects() {
		return nil, domain.ErrForbidden
	}
	project, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrValidation
		}
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Manager != nil {
		if *in.Manager == "" {
			project.ManagerID = nil
		} else {
			project.ManagerID = in.Manager
		}
	}
	if in.Team != nil {
		if *in.Team == "" {
			project.TeamID = nil
		} else {
			project.TeamID = in.Team
		}
	}
	if in.EstimatedHours != nil {
		if *in.EstimatedHours < 0 {
			return nil, domain.ErrValidation
		}
		project.EstimatedHours = decimal.NewFromFloat(*in.EstimatedHours)
	}
	if in.StartDate != nil {
		d, err := parseDatePtr(in.StartDate)
		if err != nil {
			return nil, err
		}
		project.StartDate = d
	}
	if in.EndDate != nil {
		d, err := parseDatePtr(in.EndDate)
		if err != nil {
			return nil, err
		}
		project.EndDate = d
	}
	if in.Status != nil {
		project.Status = *in.Status
	}
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return uc.GetByID(scope, id)
}

// Delete removes a project, nulling out the project reference on its time
// logs. Admin-only.
func (uc *ProjectUseCase) Delete(ctx context.Context, scope access.Scope, id string) error {
	if !scope.CanManageProjects() {
		return domain.ErrForbidden
	}
	return uc.deleter.DeleteProject(ctx, id)
}

// parseDatePtr parses an optional YYYY-MM-DD string; an empty string clears
// the date, a malformed one is a validation error.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, domain.ErrValidation
	}
	return &d, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Manager:         p.ManagerID,
		ManagerUsername: p.ManagerUsername,
		Team:            p.TeamID,
		TeamName:        p.TeamName,
		EstimatedHours:  p.EstimatedHours.InexactFloat64(),
		StartDate:       formatDatePtr(p.StartDate),
		EndDate:         formatDatePtr(p.EndDate),
		Status:          p.Status,
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
