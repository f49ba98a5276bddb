package repository

import (
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
)

// TimeLogRepository is the persistence port for TimeLog.
type TimeLogRepository interface {
	Create(log *entity.TimeLog) error
	// GetByID returns (nil, nil) when the row is missing or not visible to
	// the caller.
	GetByID(scope access.Scope, id string) (*entity.TimeLog, error)
	// List applies the role visibility matrix and orders by start time
	// descending: admin sees everything, a team head the logs of their team
	// members, a project manager the logs attached to their managed projects,
	// an employee their own logs.
	List(scope access.Scope, limit, offset int) ([]*entity.TimeLog, error)
	Update(log *entity.TimeLog) error
	Delete(id string) error
}
