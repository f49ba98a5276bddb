package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
)

// stubTx records every statement routed through the transaction. Statements
// matching failOn fail, exercising the rollback path.
type stubTx struct {
	pgx.Tx
	execs      []string
	failOn     string
	committed  bool
	rolledBack bool
}

func (t *stubTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, sql)
	if t.failOn != "" && strings.Contains(sql, t.failOn) {
		return pgconn.CommandTag{}, errors.New("statement failed")
	}
	return pgconn.CommandTag{}, nil
}

func (t *stubTx) Commit(context.Context) error   { t.committed = true; return nil }
func (t *stubTx) Rollback(context.Context) error { t.rolledBack = true; return nil }

// stubBeginner hands out a single stub transaction. The embedded Querier is
// nil, so any write bypassing the transaction panics the test.
type stubBeginner struct {
	Querier
	tx *stubTx
}

func (q *stubBeginner) Begin(context.Context) (pgx.Tx, error) { return q.tx, nil }

func twoMemberTeam() *entity.Team {
	head := "u-head"
	return &entity.Team{
		ID:     "t1",
		Name:   "Development Team",
		HeadID: &head,
		Members: []entity.TeamMember{
			{UserID: "u-emp1", Username: "employee1"},
			{UserID: "u-emp2", Username: "employee2"},
		},
	}
}

func TestTeamCreate_WritesRowAndMembersInOneTx(t *testing.T) {
	tx := &stubTx{}
	repo := NewTeamRepository(&stubBeginner{tx: tx})

	require.NoError(t, repo.Create(twoMemberTeam()))

	// team insert, membership clear, one insert per member
	require.Len(t, tx.execs, 4)
	assert.Contains(t, tx.execs[0], "INSERT INTO teams")
	assert.Contains(t, tx.execs[1], "DELETE FROM team_members")
	assert.Contains(t, tx.execs[2], "INSERT INTO team_members")
	assert.Contains(t, tx.execs[3], "INSERT INTO team_members")
	assert.True(t, tx.committed)
}

func TestTeamCreate_MemberInsertFailureRollsBack(t *testing.T) {
	tx := &stubTx{failOn: "INSERT INTO team_members"}
	repo := NewTeamRepository(&stubBeginner{tx: tx})

	err := repo.Create(twoMemberTeam())
	require.Error(t, err)
	assert.False(t, tx.committed, "a half-replaced membership set must never commit")
	assert.True(t, tx.rolledBack)
}

func TestTeamUpdate_ReplacesMembersInSameTx(t *testing.T) {
	tx := &stubTx{}
	repo := NewTeamRepository(&stubBeginner{tx: tx})

	require.NoError(t, repo.Update(twoMemberTeam()))

	require.Len(t, tx.execs, 4)
	assert.Contains(t, tx.execs[0], "UPDATE teams")
	assert.Contains(t, tx.execs[1], "DELETE FROM team_members")
	assert.True(t, tx.committed)
}

func TestTeamUpdate_RowUpdateFailureRollsBack(t *testing.T) {
	tx := &stubTx{failOn: "UPDATE teams"}
	repo := NewTeamRepository(&stubBeginner{tx: tx})

	err := repo.Update(twoMemberTeam())
	require.Error(t, err)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
	require.Len(t, tx.execs, 1, "membership writes must not run after a failed row update")
}
