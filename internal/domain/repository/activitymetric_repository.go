package repository

import (
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
)

// ActivityMetricRepository is the persistence port for ActivityMetric samples.
// Visibility follows the same matrix as AppUsage.
type ActivityMetricRepository interface {
	Create(metric *entity.ActivityMetric) error
	// GetByID returns (nil, nil) when the row is missing or not visible to
	// the caller.
	GetByID(scope access.Scope, id string) (*entity.ActivityMetric, error)
	List(scope access.Scope, limit, offset int) ([]*entity.ActivityMetric, error)
	Update(metric *entity.ActivityMetric) error
	Delete(id string) error
}
