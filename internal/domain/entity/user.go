package entity

import "time"

// Valid roles for User. A user has exactly one effective role, stored
// explicitly and embedded into the auth token at login.
const (
	RoleAdmin          = "admin"
	RoleTeamHead       = "team_head"
	RoleProjectManager = "project_manager"
	RoleEmployee       = "employee"
)

// ValidRole reports whether s is one of the four known roles.
func ValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleTeamHead, RoleProjectManager, RoleEmployee:
		return true
	}
	return false
}

// User represents an account in the system.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past the auth use case
	FirstName    string
	LastName     string
	Role         string // admin, team_head, project_manager, employee
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
