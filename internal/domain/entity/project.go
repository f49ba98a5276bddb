package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultProjectStatus initial status for newly created projects.
const DefaultProjectStatus = "Planning"

// Project is a unit of work owned by an optional team and run by an optional
// manager. Both references are nulled, not cascaded, when the target row goes
// away.
type Project struct {
	ID             string
	Name           string // unique
	Description    string
	ManagerID      *string
	TeamID         *string
	EstimatedHours decimal.Decimal // non-negative
	StartDate      *time.Time
	EndDate        *time.Time
	Status         string // free text: Planning, In Progress, Completed, On Hold, ...

	// Read-only display fields, joined from users/teams on load.
	ManagerUsername *string
	TeamName        *string
}
