package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
)

const visCallerID = "00000000-0000-0000-0000-0000000000aa"

func visScope(role string) access.Scope {
	return access.Scope{UserID: visCallerID, Role: role}
}

var visibilityBuilders = map[string]func(access.Scope) (string, []any){
	"teams":     teamVisibilityWhere,
	"projects":  projectVisibilityWhere,
	"timelogs":  timeLogVisibilityWhere,
	"appusages": func(s access.Scope) (string, []any) { return sampleVisibilityWhere(s, "a.user_id") },
	"metrics":   func(s access.Scope) (string, []any) { return sampleVisibilityWhere(s, "m.user_id") },
}

func TestVisibility_AdminIsUnfiltered(t *testing.T) {
	for name, build := range visibilityBuilders {
		where, args := build(visScope(entity.RoleAdmin))
		assert.Equal(t, "TRUE", where, name)
		assert.Empty(t, args, name)
	}
}

func TestVisibility_NonAdminBindsOnlyCallerID(t *testing.T) {
	roles := []string{entity.RoleTeamHead, entity.RoleProjectManager, entity.RoleEmployee}
	for name, build := range visibilityBuilders {
		for _, role := range roles {
			where, args := build(visScope(role))
			require.Equal(t, []any{visCallerID}, args, "%s/%s", name, role)
			assert.Contains(t, where, "$1", "%s/%s", name, role)
			assert.NotContains(t, where, "$2", "%s/%s", name, role)
		}
	}
}

// A team head's filter is the employee filter widened with head-specific
// disjuncts, so for every row type a head supervises the member-visible rows
// stay a subset of the head-visible rows.
func TestVisibility_HeadFilterCoversMemberFilter(t *testing.T) {
	for _, name := range []string{"teams", "timelogs", "appusages", "metrics"} {
		build := visibilityBuilders[name]
		memberWhere, memberArgs := build(visScope(entity.RoleEmployee))
		headWhere, headArgs := build(visScope(entity.RoleTeamHead))

		assert.Contains(t, headWhere, memberWhere, name)
		assert.True(t, strings.HasPrefix(headWhere, "("), name)
		assert.Equal(t, memberArgs, headArgs, name)
	}
}
