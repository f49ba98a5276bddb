package repository

import (
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
)

// ProjectRepository is the persistence port for Project.
type ProjectRepository interface {
	Create(project *entity.Project) error
	// GetByID returns (nil, nil) when the row is missing or not visible to
	// the caller.
	GetByID(scope access.Scope, id string) (*entity.Project, error)
	// List applies the role visibility matrix: admin sees every project, a
	// project manager the projects they manage, a team head the projects of
	// teams they lead, an employee the projects of teams they belong to.
	List(scope access.Scope, limit, offset int) ([]*entity.Project, error)
	Update(project *entity.Project) error
}
