package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/domain"
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
	"github.com/rahmanabdur1/productivity-app/internal/domain/repository"
)

// TeamUseCase applies the business rules for teams. Writes are admin-only;
// read visibility is handled by the repository's role filters.
type TeamUseCase struct {
	repo     repository.TeamRepository
	userRepo repository.UserRepository
	deleter  repository.DeletionRepository
}

// NewTeamUseCase builds the use case with its persistence ports.
func NewTeamUseCase(repo repository.TeamRepository, userRepo repository.UserRepository, deleter repository.DeletionRepository) *TeamUseCase {
	return &TeamUseCase{repo: repo, userRepo: userRepo, deleter: deleter}
}

// Create registers a new team. Admin-only. Members are given as usernames,
// matching the serialized form; unknown usernames are a validation error.
func (uc *TeamUseCase) Create(scope access.Scope, in dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	if !scope.CanManageTeams() {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrValidation
	}
	members, err := uc.resolveMembers(in.Members)
	if err != nil {
		return nil, err
	}
	team := &entity.Team{
		ID:      uuid.New().String(),
		Name:    in.Name,
		HeadID:  in.Head,
		Members: members,
	}
	if err := uc.repo.Create(team); err != nil {
		return nil, err
	}
	return uc.GetByID(scope, team.ID)
}

// List returns the teams visible to the caller.
func (uc *TeamUseCase) List(scope access.Scope, limit, offset int) ([]dto.TeamResponse, error) {
	limit, offset = dto.ClampPage(limit, offset)
	teams, err := uc.repo.List(scope, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, *toTeamResponse(t))
	}
	return out, nil
}

// GetByID returns a team if visible to the caller.
func (uc *TeamUseCase) GetByID(scope access.Scope, id string) (*dto.TeamResponse, error) {
	team, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domain.ErrNotFound
	}
	return toTeamResponse(team), nil
}

// Update patches a team. Admin-only. A non-nil member list replaces the
// whole membership set.
func (uc *TeamUseCase) Update(scope access.Scope, id string, in dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	if !scope.CanManageTeams() {
		return nil, domain.ErrForbidden
	}
	team, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrValidation
		}
		team.Name = *in.Name
	}
	if in.Head != nil {
		if *in.Head == "" {
			team.HeadID = nil
		} else {
			team.HeadID = in.Head
		}
	}
	if in.Members != nil {
		members, err := uc.resolveMembers(*in.Members)
		if err != nil {
			return nil, err
		}
		team.Members = members
	}
	if err := uc.repo.Update(team); err != nil {
		return nil, err
	}
	return uc.GetByID(scope, id)
}

// Delete removes a team, nulling out dependent project references. Admin-only.
func (uc *TeamUseCase) Delete(ctx context.Context, scope access.Scope, id string) error {
	if !scope.CanManageTeams() {
		return domain.ErrForbidden
	}
	return uc.deleter.DeleteTeam(ctx, id)
}

func (uc *TeamUseCase) resolveMembers(usernames []string) ([]entity.TeamMember, error) {
	members := make([]entity.TeamMember, 0, len(usernames))
	for _, name := range usernames {
		user, err := uc.userRepo.GetByUsername(name)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrValidation
		}
		members = append(members, entity.TeamMember{UserID: user.ID, Username: user.Username})
	}
	return members, nil
}

func toTeamResponse(t *entity.Team) *dto.TeamResponse {
	if t == nil {
		return nil
	}
	members := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, m.Username)
	}
	return &dto.TeamResponse{
		ID:           t.ID,
		Name:         t.Name,
		Head:         t.HeadID,
		HeadUsername: t.HeadUsername,
		Members:      members,
	}
}
