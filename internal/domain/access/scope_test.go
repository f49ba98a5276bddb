package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
)

func TestCanManage_AdminOnly(t *testing.T) {
	admin := access.Scope{UserID: "u1", Role: entity.RoleAdmin}
	assert.True(t, admin.CanManageUsers())
	assert.True(t, admin.CanManageTeams())
	assert.True(t, admin.CanManageProjects())

	for _, role := range []string{entity.RoleTeamHead, entity.RoleProjectManager, entity.RoleEmployee} {
		s := access.Scope{UserID: "u1", Role: role}
		assert.False(t, s.CanManageUsers(), role)
		assert.False(t, s.CanManageTeams(), role)
		assert.False(t, s.CanManageProjects(), role)
	}
}

func TestCanReadUser(t *testing.T) {
	admin := access.Scope{UserID: "u1", Role: entity.RoleAdmin}
	assert.True(t, admin.CanReadUser("u2"), "admin reads anyone")

	employee := access.Scope{UserID: "u1", Role: entity.RoleEmployee}
	assert.True(t, employee.CanReadUser("u1"), "everyone reads themselves")
	assert.False(t, employee.CanReadUser("u2"))

	head := access.Scope{UserID: "u1", Role: entity.RoleTeamHead}
	assert.False(t, head.CanReadUser("u2"), "team head has no user-admin reach")
}

func TestCanWriteOwned(t *testing.T) {
	owner := access.Scope{UserID: "u1", Role: entity.RoleEmployee}
	assert.True(t, owner.CanWriteOwned("u1"))
	assert.False(t, owner.CanWriteOwned("u2"))

	admin := access.Scope{UserID: "u9", Role: entity.RoleAdmin}
	assert.True(t, admin.CanWriteOwned("u1"))

	// Read visibility of heads and managers never implies write access.
	head := access.Scope{UserID: "u3", Role: entity.RoleTeamHead}
	pm := access.Scope{UserID: "u4", Role: entity.RoleProjectManager}
	assert.False(t, head.CanWriteOwned("u1"))
	assert.False(t, pm.CanWriteOwned("u1"))
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{entity.RoleAdmin, entity.RoleTeamHead, entity.RoleProjectManager, entity.RoleEmployee} {
		assert.True(t, entity.ValidRole(role), role)
	}
	assert.False(t, entity.ValidRole("superuser"))
	assert.False(t, entity.ValidRole(""))
}
