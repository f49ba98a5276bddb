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

// ActivityMetricUseCase applies the business rules for activity metric
// samples. Writes are owner-or-admin.
type ActivityMetricUseCase struct {
	repo repository.ActivityMetricRepository
}

// NewActivityMetricUseCase builds the use case with its persistence port.
func NewActivityMetricUseCase(repo repository.ActivityMetricRepository) *ActivityMetricUseCase {
	return &ActivityMetricUseCase{repo: repo}
}

// Create records a metric sample owned by the caller.
func (uc *ActivityMetricUseCase) Create(scope access.Scope, in dto.CreateActivityMetricRequest) (*dto.ActivityMetricResponse, error) {
	if strings.TrimSpace(in.MetricType) == "" || in.Timestamp.IsZero() {
		return nil, domain.ErrValidation
	}
	metric := &entity.ActivityMetric{
		ID:         uuid.New().String(),
		UserID:     scope.UserID,
		MetricType: in.MetricType,
		Value:      in.Value,
		RecordedAt: in.Timestamp,
	}
	if err := uc.repo.Create(metric); err != nil {
		return nil, err
	}
	return uc.GetByID(scope, metric.ID)
}

// List returns the samples visible to the caller, newest first.
func (uc *ActivityMetricUseCase) List(scope access.Scope, limit, offset int) ([]dto.ActivityMetricResponse, error) {
	limit, offset = dto.ClampPage(limit, offset)
	metrics, err := uc.repo.List(scope, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityMetricResponse, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, *toActivityMetricResponse(m))
	}
	return out, nil
}

// GetByID returns a sample if visible to the caller.
func (uc *ActivityMetricUseCase) GetByID(scope access.Scope, id string) (*dto.ActivityMetricResponse, error) {
	metric, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if metric == nil {
		return nil, domain.ErrNotFound
	}
	return toActivityMetricResponse(metric), nil
}

// Update patches a sample. Only the owner or an admin.
func (uc *ActivityMetricUseCase) Update(scope access.Scope, id string, in dto.UpdateActivityMetricRequest) (*dto.ActivityMetricResponse, error) {
	metric, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if metric == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.CanWriteOwned(metric.UserID) {
		return nil, domain.ErrForbidden
	}
	if in.MetricType != nil {
		if strings.TrimSpace(*in.MetricType) == "" {
			return nil, domain.ErrValidation
		}
		metric.MetricType = *in.MetricType
	}
	if in.Value != nil {
		metric.Value = *in.Value
	}
	if in.Timestamp != nil {
		metric.RecordedAt = *in.Timestamp
	}
	if err := uc.repo.Update(metric); err != nil {
		return nil, err
	}
	return uc.GetByID(scope, id)
}

// Delete removes a sample. Only the owner or an admin.
func (uc *ActivityMetricUseCase) Delete(scope access.Scope, id string) error {
	metric, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return err
	}
	if metric == nil {
		return domain.ErrNotFound
	}
	if !scope.CanWriteOwned(metric.UserID) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toActivityMetricResponse(m *entity.ActivityMetric) *dto.ActivityMetricResponse {
	if m == nil {
		return nil
	}
	return &dto.ActivityMetricResponse{
		ID:           m.ID,
		User:         m.UserID,
		UserUsername: m.UserUsername,
		MetricType:   m.MetricType,
		Value:        m.Value,
		Timestamp:    m.RecordedAt,
	}
}
