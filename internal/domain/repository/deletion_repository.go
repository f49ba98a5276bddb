package repository

import "context"

// DeletionRepository applies the referential semantics of entity deletion in
// a single transaction, so the invariants hold even without FK constraints:
//
//   - DeleteUser cascades the user's time logs, app usage and activity
//     metrics, removes the user's memberships and nulls team.head_id /
//     project.manager_id before deleting the row.
//   - DeleteTeam nulls project.team_id and clears the membership rows.
//   - DeleteProject nulls time_logs.project_id (logs survive their project).
//
// Each method returns domain.ErrNotFound when the target row does not exist.
type DeletionRepository interface {
	DeleteUser(ctx context.Context, id string) error
	DeleteTeam(ctx context.Context, id string) error
	DeleteProject(ctx context.Context, id string) error
}
