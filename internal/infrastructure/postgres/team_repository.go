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

var _ repository.TeamRepository = (*TeamRepo)(nil)

// TeamRepo implements the TeamRepository port over PostgreSQL. Usable with a
// pool or a tx (Querier).
type TeamRepo struct {
	q Querier
}

// NewTeamRepository builds the persistence adapter for teams.
func NewTeamRepository(q Querier) *TeamRepo {
	return &TeamRepo{q: q}
}

// teamMembership is the row filter of an employee: teams the caller belongs
// to. The team-head filter is built on top of it, so a head always sees at
// least what a plain member sees.
const teamMembership = `EXISTS (SELECT 1 FROM team_members tm
	WHERE tm.team_id = t.id AND tm.user_id = $1)`

// teamVisibilityWhere returns the row filter for the caller's role. $1 is the
// caller's user id except for admins, who take no filter at all.
func teamVisibilityWhere(scope access.Scope) (string, []any) {
	switch scope.Role {
	case entity.RoleAdmin:
		return `TRUE`, nil
	case entity.RoleTeamHead:
		// Teams the caller heads plus teams the caller belongs to.
		return `(t.head_id = $1 OR ` + teamMembership + `)`, []any{scope.UserID}
	case entity.RoleProjectManager:
		// Teams backing the caller's managed projects.
		return `t.id IN (SELECT p.team_id FROM projects p
			WHERE p.manager_id = $1 AND p.team_id IS NOT NULL)`,
			[]any{scope.UserID}
	default:
		return teamMembership, []any{scope.UserID}
	}
}

// Create persists a team and its membership rows in one transaction. A taken
// name maps to ErrDuplicate.
func (r *TeamRepo) Create(team *entity.Team) error {
	ctx := context.Background()
	return runInTx(ctx, r.q, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO teams (id, name, head_id) VALUES ($1, $2, $3)`,
			team.ID, team.Name, team.HeadID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert team: %w", err)
		}
		return replaceMembers(ctx, tx, team.ID, team.MemberIDs())
	})
}

// GetByID fetches a visible team with head username and members joined in.
func (r *TeamRepo) GetByID(scope access.Scope, id string) (*entity.Team, error) {
	where, args := teamVisibilityWhere(scope)
	query := fmt.Sprintf(`
		SELECT t.id, t.name, t.head_id, u.username
		FROM teams t
		LEFT JOIN users u ON u.id = t.head_id
		WHERE %s AND t.id = $%d`, where, len(args)+1)
	args = append(args, id)

	var t entity.Team
	err := r.q.QueryRow(context.Background(), query, args...).
		Scan(&t.ID, &t.Name, &t.HeadID, &t.HeadUsername)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	if err := r.loadMembers(context.Background(), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns the teams visible to the caller, ordered by name.
func (r *TeamRepo) List(scope access.Scope, limit, offset int) ([]*entity.Team, error) {
	where, args := teamVisibilityWhere(scope)
	query := fmt.Sprintf(`
		SELECT t.id, t.name, t.head_id, u.username
		FROM teams t
		LEFT JOIN users u ON u.id = t.head_id
		WHERE %s
		ORDER BY t.name LIMIT %d OFFSET %d`, where, limit, offset)

	ctx := context.Background()
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var list []*entity.Team
	for rows.Next() {
		var t entity.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.HeadID, &t.HeadUsername); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, t := range list {
		if err := r.loadMembers(ctx, t); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update rewrites the team row and replaces the membership set in one
// transaction, so a failed member write never leaves a half-replaced set.
func (r *TeamRepo) Update(team *entity.Team) error {
	ctx := context.Background()
	return runInTx(ctx, r.q, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`UPDATE teams SET name = $2, head_id = $3 WHERE id = $1`,
			team.ID, team.Name, team.HeadID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("update team: %w", err)
		}
		return replaceMembers(ctx, tx, team.ID, team.MemberIDs())
	})
}

func replaceMembers(ctx context.Context, q Querier, teamID string, memberIDs []string) error {
	if _, err := q.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("clear team members: %w", err)
	}
	for _, userID := range memberIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO team_members (team_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			teamID, userID,
		)
		if err != nil {
			return fmt.Errorf("insert team member: %w", err)
		}
	}
	return nil
}

func (r *TeamRepo) loadMembers(ctx context.Context, t *entity.Team) error {
	rows, err := r.q.Query(ctx, `
		SELECT tm.user_id, u.username
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY u.username`, t.ID)
	if err != nil {
		return fmt.Errorf("load team members: %w", err)
	}
	defer rows.Close()

	t.Members = nil
	for rows.Next() {
		var m entity.TeamMember
		if err := rows.Scan(&m.UserID, &m.Username); err != nil {
			return fmt.Errorf("scan team member: %w", err)
		}
		t.Members = append(t.Members, m)
	}
	return rows.Err()
}
