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

var _ repository.TimeLogRepository = (*TimeLogRepo)(nil)

const timeLogSelect = `
	SELECT l.id, l.user_id, l.start_time, l.end_time, l.description,
	       l.project_id, l.created_at, l.updated_at, u.username, p.name
	FROM time_logs l
	JOIN users u ON u.id = l.user_id
	LEFT JOIN projects p ON p.id = l.project_id`

// TimeLogRepo implements the TimeLogRepository port over PostgreSQL.
type TimeLogRepo struct {
	q Querier
}

// NewTimeLogRepository builds the persistence adapter for time logs.
func NewTimeLogRepository(q Querier) *TimeLogRepo {
	return &TimeLogRepo{q: q}
}

// timeLogVisibilityWhere returns the row filter for the caller's role.
func timeLogVisibilityWhere(scope access.Scope) (string, []any) {
	switch scope.Role {
	case entity.RoleAdmin:
		return `TRUE`, nil
	case entity.RoleTeamHead:
		// Logs of every member of the teams the caller heads, own logs included.
		return `(l.user_id = $1 OR l.user_id IN (
			SELECT tm.user_id FROM team_members tm
			JOIN teams t ON t.id = tm.team_id
			WHERE t.head_id = $1))`,
			[]any{scope.UserID}
	case entity.RoleProjectManager:
		// Logs attached to the caller's managed projects, own logs included.
		return `(l.user_id = $1 OR l.project_id IN (
			SELECT p2.id FROM projects p2 WHERE p2.manager_id = $1))`,
			[]any{scope.UserID}
	default:
		return `l.user_id = $1`, []any{scope.UserID}
	}
}

// Create persists a new time log.
func (r *TimeLogRepo) Create(log *entity.TimeLog) error {
	query := `
		INSERT INTO time_logs (id, user_id, start_time, end_time, description,
			project_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.UserID, log.StartTime, log.EndTime, log.Description,
		log.ProjectID, log.CreatedAt, log.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert time log: %w", err)
	}
	return nil
}

// GetByID fetches a visible time log, (nil, nil) when missing or out of scope.
func (r *TimeLogRepo) GetByID(scope access.Scope, id string) (*entity.TimeLog, error) {
	where, args := timeLogVisibilityWhere(scope)
	query := fmt.Sprintf(`%s WHERE %s AND l.id = $%d`, timeLogSelect, where, len(args)+1)
	args = append(args, id)

	var l entity.TimeLog
	err := scanTimeLog(r.q.QueryRow(context.Background(), query, args...), &l)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get time log: %w", err)
	}
	return &l, nil
}

// List returns the visible time logs, newest start first.
func (r *TimeLogRepo) List(scope access.Scope, limit, offset int) ([]*entity.TimeLog, error) {
	where, args := timeLogVisibilityWhere(scope)
	query := fmt.Sprintf(`%s WHERE %s ORDER BY l.start_time DESC, l.id LIMIT %d OFFSET %d`,
		timeLogSelect, where, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list time logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.TimeLog
	for rows.Next() {
		var l entity.TimeLog
		if err := scanTimeLog(rows, &l); err != nil {
			return nil, fmt.Errorf("scan time log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update rewrites the mutable columns of a time log.
func (r *TimeLogRepo) Update(log *entity.TimeLog) error {
	query := `
		UPDATE time_logs
		SET start_time = $2, end_time = $3, description = $4, project_id = $5,
		    updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.StartTime, log.EndTime, log.Description, log.ProjectID,
		log.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update time log: %w", err)
	}
	return nil
}

// Delete removes a time log row, ErrNotFound when absent.
func (r *TimeLogRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM time_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete time log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTimeLog(row pgx.Row, l *entity.TimeLog) error {
	return row.Scan(
		&l.ID, &l.UserID, &l.StartTime, &l.EndTime, &l.Description,
		&l.ProjectID, &l.CreatedAt, &l.UpdatedAt, &l.UserUsername, &l.ProjectName,
	)
}
