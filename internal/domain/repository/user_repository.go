package repository

import (
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
)

// UserRepository is the persistence port for User. Get methods return
// (nil, nil) when the row does not exist.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// List returns the users visible to the caller: everyone for admins,
	// only the caller's own row otherwise. Ordered by creation time.
	List(scope access.Scope, limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
}
