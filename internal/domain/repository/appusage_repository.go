package repository

import (
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
)

// AppUsageRepository is the persistence port for AppUsage samples.
type AppUsageRepository interface {
	Create(usage *entity.AppUsage) error
	// GetByID returns (nil, nil) when the row is missing or not visible to
	// the caller.
	GetByID(scope access.Scope, id string) (*entity.AppUsage, error)
	// List applies the role visibility matrix, newest sample first. A project
	// manager sees samples of users with time logged on their managed
	// projects (AppUsage carries no project reference of its own).
	List(scope access.Scope, limit, offset int) ([]*entity.AppUsage, error)
	Update(usage *entity.AppUsage) error
	Delete(id string) error
}
