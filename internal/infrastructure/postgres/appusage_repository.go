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

var _ repository.AppUsageRepository = (*AppUsageRepo)(nil)

// sampleVisibilityWhere filters per-user samples (app usage, activity metrics)
// by owner. ownerCol is the qualified user-id column of the outer query. A
// project manager sees the samples of users with time logged on their managed
// projects since the samples carry no project reference of their own.
func sampleVisibilityWhere(scope access.Scope, ownerCol string) (string, []any) {
	switch scope.Role {
	case entity.RoleAdmin:
		return `TRUE`, nil
	case entity.RoleTeamHead:
		return fmt.Sprintf(`(%s = $1 OR %s IN (
			SELECT tm.user_id FROM team_members tm
			JOIN teams t ON t.id = tm.team_id
			WHERE t.head_id = $1))`, ownerCol, ownerCol),
			[]any{scope.UserID}
	case entity.RoleProjectManager:
		return fmt.Sprintf(`(%s = $1 OR %s IN (
			SELECT DISTINCT l.user_id FROM time_logs l
			WHERE l.project_id IN (SELECT p.id FROM projects p WHERE p.manager_id = $1)))`,
			ownerCol, ownerCol),
			[]any{scope.UserID}
	default:
		return fmt.Sprintf(`%s = $1`, ownerCol), []any{scope.UserID}
	}
}

// AppUsageRepo implements the AppUsageRepository port over PostgreSQL.
type AppUsageRepo struct {
	q Querier
}

// NewAppUsageRepository builds the persistence adapter for app usage samples.
func NewAppUsageRepository(q Querier) *AppUsageRepo {
	return &AppUsageRepo{q: q}
}

const appUsageSelect = `
	SELECT a.id, a.user_id, a.app_name, a.duration_seconds, a.recorded_at, u.username
	FROM app_usages a
	JOIN users u ON u.id = a.user_id`

// Create persists a new app usage sample.
func (r *AppUsageRepo) Create(usage *entity.AppUsage) error {
	query := `
		INSERT INTO app_usages (id, user_id, app_name, duration_seconds, recorded_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		usage.ID, usage.UserID, usage.AppName, usage.DurationSeconds, usage.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("insert app usage: %w", err)
	}
	return nil
}

// GetByID fetches a visible sample, (nil, nil) when missing or out of scope.
func (r *AppUsageRepo) GetByID(scope access.Scope, id string) (*entity.AppUsage, error) {
	where, args := sampleVisibilityWhere(scope, "a.user_id")
	query := fmt.Sprintf(`%s WHERE %s AND a.id = $%d`, appUsageSelect, where, len(args)+1)
	args = append(args, id)

	var a entity.AppUsage
	err := scanAppUsage(r.q.QueryRow(context.Background(), query, args...), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get app usage: %w", err)
	}
	return &a, nil
}

// List returns the visible samples, newest first.
func (r *AppUsageRepo) List(scope access.Scope, limit, offset int) ([]*entity.AppUsage, error) {
	where, args := sampleVisibilityWhere(scope, "a.user_id")
	query := fmt.Sprintf(`%s WHERE %s ORDER BY a.recorded_at DESC, a.id LIMIT %d OFFSET %d`,
		appUsageSelect, where, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list app usages: %w", err)
	}
	defer rows.Close()

	var list []*entity.AppUsage
	for rows.Next() {
		var a entity.AppUsage
		if err := scanAppUsage(rows, &a); err != nil {
			return nil, fmt.Errorf("scan app usage: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update rewrites the mutable columns of a sample.
func (r *AppUsageRepo) Update(usage *entity.AppUsage) error {
	query := `
		UPDATE app_usages
		SET app_name = $2, duration_seconds = $3, recorded_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		usage.ID, usage.AppName, usage.DurationSeconds, usage.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("update app usage: %w", err)
	}
	return nil
}

// Delete removes a sample row, ErrNotFound when absent.
func (r *AppUsageRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM app_usages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete app usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAppUsage(row pgx.Row, a *entity.AppUsage) error {
	return row.Scan(
		&a.ID, &a.UserID, &a.AppName, &a.DurationSeconds, &a.RecordedAt, &a.UserUsername,
	)
}
