package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/domain"
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
	"github.com/rahmanabdur1/productivity-app/internal/domain/repository"
)

// TimeLogUseCase applies the business rules for time logs. The owner is
// always stamped from the caller's token; team heads and project managers see
// other users' logs through the repository filters but may never write them.
type TimeLogUseCase struct {
	repo repository.TimeLogRepository
}

// NewTimeLogUseCase builds the use case with its persistence port.
func NewTimeLogUseCase(repo repository.TimeLogRepository) *TimeLogUseCase {
	return &TimeLogUseCase{repo: repo}
}

// Create opens (or records) a time log owned by the caller. An end time
// before the start time is a validation error.
func (uc *TimeLogUseCase) Create(scope access.Scope, in dto.CreateTimeLogRequest) (*dto.TimeLogResponse, error) {
	if in.StartTime.IsZero() {
		return nil, domain.ErrValidation
	}
	if in.EndTime != nil && in.EndTime.Before(in.StartTime) {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	log := &entity.TimeLog{
		ID:          uuid.New().String(),
		UserID:      scope.UserID,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Description: in.ActivityDescription,
		ProjectID:   in.Project,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(log); err != nil {
		return nil, err
	}
	return uc.GetByID(scope, log.ID)
}

// List returns the time logs visible to the caller, newest start first.
func (uc *TimeLogUseCase) List(scope access.Scope, limit, offset int) ([]dto.TimeLogResponse, error) {
	limit, offset = dto.ClampPage(limit, offset)
	logs, err := uc.repo.List(scope, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TimeLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, *toTimeLogResponse(l))
	}
	return out, nil
}

// GetByID returns a time log if visible to the caller.
func (uc *TimeLogUseCase) GetByID(scope access.Scope, id string) (*dto.TimeLogResponse, error) {
	log, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, domain.ErrNotFound
	}
	return toTimeLogResponse(log), nil
}

// Update patches a time log. Only the owner or an admin may write; a team
// head or project manager with read visibility gets ErrForbidden. Setting
// the end time closes an open log.
func (uc *TimeLogUseCase) Update(scope access.Scope, id string, in dto.UpdateTimeLogRequest) (*dto.TimeLogResponse, error) {
	log, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.CanWriteOwned(log.UserID) {
		return nil, domain.ErrForbidden
	}
	if in.StartTime != nil {
		log.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		log.EndTime = in.EndTime
	}
	if in.ActivityDescription != nil {
		log.Description = *in.ActivityDescription
	}
	if in.Project != nil {
		if *in.Project == "" {
			log.ProjectID = nil
		} else {
			log.ProjectID = in.Project
		}
	}
	if log.Closed() && log.EndTime.Before(log.StartTime) {
		return nil, domain.ErrValidation
	}
	log.UpdatedAt = time.Now()
	if err := uc.repo.Update(log); err != nil {
		return nil, err
	}
	return uc.GetByID(scope, id)
}

// Delete removes a time log. Only the owner or an admin.
func (uc *TimeLogUseCase) Delete(scope access.Scope, id string) error {
	log, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return err
	}
	if log == nil {
		return domain.ErrNotFound
	}
	if !scope.CanWriteOwned(log.UserID) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toTimeLogResponse(l *entity.TimeLog) *dto.TimeLogResponse {
	if l == nil {
		return nil
	}
	return &dto.TimeLogResponse{
		ID:                  l.ID,
		User:                l.UserID,
		UserUsername:        l.UserUsername,
		StartTime:           l.StartTime,
		EndTime:             l.EndTime,
		DurationSeconds:     l.DurationSeconds(),
		ActivityDescription: l.Description,
		Project:             l.ProjectID,
		ProjectName:         l.ProjectName,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
}
