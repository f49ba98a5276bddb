// Package access holds the per-request authorization scope and the pure
// write-permission rules. Read visibility is role-dependent row filtering and
// lives in the repository SQL; the decisions here cover everything that is a
// yes/no answer given the caller and the target row.
package access

import "github.com/rahmanabdur1/productivity-app/internal/domain/entity"

// Scope identifies the caller for the duration of one request. It is built by
// the auth middleware from the token claims and never re-derived afterwards.
type Scope struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the caller has the admin role.
func (s Scope) IsAdmin() bool { return s.Role == entity.RoleAdmin }

// CanManageUsers: only admins create, update, delete users or change roles.
func (s Scope) CanManageUsers() bool { return s.IsAdmin() }

// CanReadUser: admins read anyone, everyone reads themselves.
func (s Scope) CanReadUser(userID string) bool {
	return s.IsAdmin() || s.UserID == userID
}

// CanManageTeams: team and project writes are admin-only.
func (s Scope) CanManageTeams() bool { return s.IsAdmin() }

// CanManageProjects: team and project writes are admin-only.
func (s Scope) CanManageProjects() bool { return s.IsAdmin() }

// CanWriteOwned: log-type rows (time logs, app usage, activity metrics) are
// writable only by their owner or an admin. Team heads and project managers
// keep read-only visibility through the repository filters.
func (s Scope) CanWriteOwned(ownerID string) bool {
	return s.IsAdmin() || s.UserID == ownerID
}
