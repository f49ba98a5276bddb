package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rahmanabdur1/productivity-app/internal/application/auth"
	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/domain"
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
	"github.com/rahmanabdur1/productivity-app/internal/domain/repository"
)

// UserUseCase applies the business rules for user management. Create, update,
// delete and role changes are admin-only; reads are limited to the caller's
// own row for everyone else.
type UserUseCase struct {
	repo    repository.UserRepository
	deleter repository.DeletionRepository
}

// NewUserUseCase builds the use case with its persistence ports.
func NewUserUseCase(repo repository.UserRepository, deleter repository.DeletionRepository) *UserUseCase {
	return &UserUseCase{repo: repo, deleter: deleter}
}

// Create registers a new user with the employee role. Admin-only.
func (uc *UserUseCase) Create(scope access.Scope, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !scope.CanManageUsers() {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         entity.RoleEmployee,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List returns the users visible to the caller.
func (uc *UserUseCase) List(scope access.Scope, limit, offset int) ([]dto.UserResponse, error) {
	limit, offset = dto.ClampPage(limit, offset)
	users, err := uc.repo.List(scope, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// GetByID returns a user if the caller may see it; hidden rows read as absent.
func (uc *UserUseCase) GetByID(scope access.Scope, id string) (*dto.UserResponse, error) {
	if !scope.CanReadUser(id) {
		return nil, domain.ErrNotFound
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// Me returns the caller's own profile.
func (uc *UserUseCase) Me(scope access.Scope) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(scope.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// Update patches a user. Admin-only. A new password is re-hashed.
func (uc *UserUseCase) Update(scope access.Scope, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !scope.CanManageUsers() {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete removes a user and cascades its owned rows. Admin-only.
func (uc *UserUseCase) Delete(ctx context.Context, scope access.Scope, id string) error {
	if !scope.CanManageUsers() {
		return domain.ErrForbidden
	}
	return uc.deleter.DeleteUser(ctx, id)
}

// SetRole switches a user's stored role. Admin-only; unknown roles are a
// validation error. The new role takes effect on the user's next login.
func (uc *UserUseCase) SetRole(scope access.Scope, id string, in dto.SetRoleRequest) (*dto.UserResponse, error) {
	if !scope.CanManageUsers() {
		return nil, domain.ErrForbidden
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrValidation
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Role = in.Role
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
	}
}
