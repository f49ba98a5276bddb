package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/application/usecase"
	"github.com/rahmanabdur1/productivity-app/internal/domain"
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
)

// fakeTimeLogRepo keeps logs in memory. Admins and team heads see every log,
// everyone else only their own, mirroring the visibility the SQL filters give.
type fakeTimeLogRepo struct {
	logs map[string]*entity.TimeLog
}

func newFakeTimeLogRepo() *fakeTimeLogRepo {
	return &fakeTimeLogRepo{logs: map[string]*entity.TimeLog{}}
}

func (f *fakeTimeLogRepo) Create(l *entity.TimeLog) error { f.logs[l.ID] = l; return nil }

func (f *fakeTimeLogRepo) GetByID(scope access.Scope, id string) (*entity.TimeLog, error) {
	l, ok := f.logs[id]
	if !ok {
		return nil, nil
	}
	switch scope.Role {
	case entity.RoleAdmin, entity.RoleTeamHead:
		return l, nil
	default:
		if l.UserID != scope.UserID {
			return nil, nil
		}
		return l, nil
	}
}

func (f *fakeTimeLogRepo) List(access.Scope, int, int) ([]*entity.TimeLog, error) {
	return nil, nil
}
func (f *fakeTimeLogRepo) Update(l *entity.TimeLog) error { f.logs[l.ID] = l; return nil }
func (f *fakeTimeLogRepo) Delete(id string) error         { delete(f.logs, id); return nil }

var timeLogOwner = access.Scope{UserID: "u1", Role: entity.RoleEmployee}

func TestTimeLogCreate_ClosedLogCarriesDuration(t *testing.T) {
	uc := usecase.NewTimeLogUseCase(newFakeTimeLogRepo())

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	out, err := uc.Create(timeLogOwner, dto.CreateTimeLogRequest{
		StartTime:           start,
		EndTime:             &end,
		ActivityDescription: "Code review",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", out.User)
	assert.InDelta(t, 7200.0, out.DurationSeconds, 1e-9)
}

func TestTimeLogCreate_OpenLogHasZeroDuration(t *testing.T) {
	uc := usecase.NewTimeLogUseCase(newFakeTimeLogRepo())

	out, err := uc.Create(timeLogOwner, dto.CreateTimeLogRequest{
		StartTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Nil(t, out.EndTime)
	assert.Zero(t, out.DurationSeconds)
}

func TestTimeLogCreate_EndBeforeStart(t *testing.T) {
	uc := usecase.NewTimeLogUseCase(newFakeTimeLogRepo())

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(-time.Minute)
	_, err := uc.Create(timeLogOwner, dto.CreateTimeLogRequest{StartTime: start, EndTime: &end})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTimeLogUpdate_ClosingBeforeStart(t *testing.T) {
	uc := usecase.NewTimeLogUseCase(newFakeTimeLogRepo())

	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	out, err := uc.Create(timeLogOwner, dto.CreateTimeLogRequest{StartTime: start})
	require.NoError(t, err)

	end := start.Add(-time.Hour)
	_, err = uc.Update(timeLogOwner, out.ID, dto.UpdateTimeLogRequest{EndTime: &end})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTimeLogUpdate_ReadVisibilityNeverGrantsWrite(t *testing.T) {
	uc := usecase.NewTimeLogUseCase(newFakeTimeLogRepo())

	out, err := uc.Create(timeLogOwner, dto.CreateTimeLogRequest{
		StartTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	head := access.Scope{UserID: "u-head", Role: entity.RoleTeamHead}
	desc := "rewritten"
	_, err = uc.Update(head, out.ID, dto.UpdateTimeLogRequest{ActivityDescription: &desc})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
