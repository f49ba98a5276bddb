package repository

import (
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
)

// TeamRepository is the persistence port for Team. Create and Update replace
// the membership set from MemberIDs.
type TeamRepository interface {
	Create(team *entity.Team) error
	// GetByID returns (nil, nil) when the row is missing or not visible to
	// the caller, so hidden rows are indistinguishable from absent ones.
	GetByID(scope access.Scope, id string) (*entity.Team, error)
	// List applies the role visibility matrix: admin sees every team, a team
	// head the teams they lead or belong to, a project manager the teams
	// backing their managed projects, an employee the teams they belong to.
	List(scope access.Scope, limit, offset int) ([]*entity.Team, error)
	Update(team *entity.Team) error
}
