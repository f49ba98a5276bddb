package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahmanabdur1/productivity-app/internal/domain"
	"github.com/rahmanabdur1/productivity-app/internal/domain/repository"
)

var _ repository.DeletionRepository = (*DeletionRepo)(nil)

// DeletionRepo applies entity deletion and its referential cleanup in a single
// transaction, so a half-applied cascade can never be observed.
type DeletionRepo struct {
	pool *pgxpool.Pool
}

// NewDeletionRepository builds the transactional deletion adapter.
func NewDeletionRepository(pool *pgxpool.Pool) *DeletionRepo {
	return &DeletionRepo{pool: pool}
}

// DeleteUser removes a user, cascading the user's logs and samples and nulling
// head/manager references that point at them.
func (r *DeletionRepo) DeleteUser(ctx context.Context, id string) error {
	return runInTx(ctx, r.pool, func(tx pgx.Tx) error {
		steps := []string{
			`DELETE FROM time_logs WHERE user_id = $1`,
			`DELETE FROM app_usages WHERE user_id = $1`,
			`DELETE FROM activity_metrics WHERE user_id = $1`,
			`DELETE FROM team_members WHERE user_id = $1`,
			`UPDATE teams SET head_id = NULL WHERE head_id = $1`,
			`UPDATE projects SET manager_id = NULL WHERE manager_id = $1`,
		}
		for _, step := range steps {
			if _, err := tx.Exec(ctx, step, id); err != nil {
				return fmt.Errorf("cascade user delete: %w", err)
			}
		}
		return deleteRow(ctx, tx, `DELETE FROM users WHERE id = $1`, id)
	})
}

// DeleteTeam removes a team, detaching its projects and clearing membership.
func (r *DeletionRepo) DeleteTeam(ctx context.Context, id string) error {
	return runInTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE projects SET team_id = NULL WHERE team_id = $1`, id); err != nil {
			return fmt.Errorf("detach team projects: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, id); err != nil {
			return fmt.Errorf("clear team members: %w", err)
		}
		return deleteRow(ctx, tx, `DELETE FROM teams WHERE id = $1`, id)
	})
}

// DeleteProject removes a project. Time logs survive with a nulled project
// reference.
func (r *DeletionRepo) DeleteProject(ctx context.Context, id string) error {
	return runInTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE time_logs SET project_id = NULL WHERE project_id = $1`, id); err != nil {
			return fmt.Errorf("detach project logs: %w", err)
		}
		return deleteRow(ctx, tx, `DELETE FROM projects WHERE id = $1`, id)
	})
}

func deleteRow(ctx context.Context, tx pgx.Tx, query, id string) error {
	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete row: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
