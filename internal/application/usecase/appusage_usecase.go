package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/domain"
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
	"github.com/rahmanabdur1/productivity-app/internal/domain/repository"
)

// AppUsageUseCase applies the business rules for app-usage samples. Writes
// are owner-or-admin; negative durations are rejected.
type AppUsageUseCase struct {
	repo repository.AppUsageRepository
}

// NewAppUsageUseCase builds the use case with its persistence port.
func NewAppUsageUseCase(repo repository.AppUsageRepository) *AppUsageUseCase {
	return &AppUsageUseCase{repo: repo}
}

// Create records a sample owned by the caller.
func (uc *AppUsageUseCase) Create(scope access.Scope, in dto.CreateAppUsageRequest) (*dto.AppUsageResponse, error) {
	if strings.TrimSpace(in.AppName) == "" || in.DurationSeconds < 0 || in.Timestamp.IsZero() {
		return nil, domain.ErrValidation
	}
	usage := &entity.AppUsage{
		ID:              uuid.New().String(),
		UserID:          scope.UserID,
		AppName:         in.AppName,
		DurationSeconds: in.DurationSeconds,
		RecordedAt:      in.Timestamp,
	}
	if err := uc.repo.Create(usage); err != nil {
		return nil, err
	}
	return uc.GetByID(scope, usage.ID)
}

// List returns the samples visible to the caller, newest first.
func (uc *AppUsageUseCase) List(scope access.Scope, limit, offset int) ([]dto.AppUsageResponse, error) {
	limit, offset = dto.ClampPage(limit, offset)
	usages, err := uc.repo.List(scope, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppUsageResponse, 0, len(usages))
	for _, u := range usages {
		out = append(out, *toAppUsageResponse(u))
	}
	return out, nil
}

// GetByID returns a sample if visible to the caller.
func (uc *AppUsageUseCase) GetByID(scope access.Scope, id string) (*dto.AppUsageResponse, error) {
	usage, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if usage == nil {
		return nil, domain.ErrNotFound
	}
	return toAppUsageResponse(usage), nil
}

// Update patches a sample. Only the owner or an admin.
func (uc *AppUsageUseCase) Update(scope access.Scope, id string, in dto.UpdateAppUsageRequest) (*dto.AppUsageResponse, error) {
	usage, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if usage == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.CanWriteOwned(usage.UserID) {
		return nil, domain.ErrForbidden
	}
	if in.AppName != nil {
		if strings.TrimSpace(*in.AppName) == "" {
			return nil, domain.ErrValidation
		}
		usage.AppName = *in.AppName
	}
	if in.DurationSeconds != nil {
		if *in.DurationSeconds < 0 {
			return nil, domain.ErrValidation
		}
		usage.DurationSeconds = *in.DurationSeconds
	}
	if in.Timestamp != nil {
		usage.RecordedAt = *in.Timestamp
	}
	if err := uc.repo.Update(usage); err != nil {
		return nil, err
	}
	return uc.GetByID(scope, id)
}

// Delete removes a sample. Only the owner or an admin.
func (uc *AppUsageUseCase) Delete(scope access.Scope, id string) error {
	usage, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return err
	}
	if usage == nil {
		return domain.ErrNotFound
	}
	if !scope.CanWriteOwned(usage.UserID) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toAppUsageResponse(u *entity.AppUsage) *dto.AppUsageResponse {
	if u == nil {
		return nil
	}
	return &dto.AppUsageResponse{
		ID:              u.ID,
		User:            u.UserID,
		UserUsername:    u.UserUsername,
		AppName:         u.AppName,
		DurationSeconds: u.DurationSeconds,
		Timestamp:       u.RecordedAt,
	}
}
