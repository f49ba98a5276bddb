package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahmanabdur1/productivity-app/internal/application/auth"
	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/domain"
	"github.com/rahmanabdur1/productivity-app/internal/domain/access"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
	pkgjwt "github.com/rahmanabdur1/productivity-app/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // by username
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.Username] = u
	return nil
}
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return f.users[username], nil
}
func (f *fakeUserRepo) List(access.Scope, int, int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(*entity.User) error                          { return nil }

func newTestAuth(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*entity.User{
		"employee1": {
			ID:           "u1",
			Username:     "employee1",
			Email:        "e1@example.com",
			PasswordHash: hash,
			Role:         entity.RoleEmployee,
			IsActive:     true,
		},
		"ghost": {
			ID:           "u2",
			Username:     "ghost",
			PasswordHash: hash,
			Role:         entity.RoleEmployee,
			IsActive:     false,
		},
	}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "productivity-test",
	})
	return uc, repo
}

func TestLogin_HappyPath(t *testing.T) {
	uc, _ := newTestAuth(t)

	out, err := uc.Login(dto.AuthRequest{Username: "employee1", Password: "correct-horse"})
	require.NoError(t, err)

	assert.Equal(t, "u1", out.UserID)
	assert.Equal(t, "employee1", out.Username)
	assert.Equal(t, "e1@example.com", out.Email)
	assert.Equal(t, entity.RoleEmployee, out.Role)

	// The issued token carries the stored role.
	claims, err := pkgjwt.Parse("test-secret-key-for-unit-tests", out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, claims.Role)
	assert.Equal(t, "u1", claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newTestAuth(t)

	_, err := uc.Login(dto.AuthRequest{Username: "employee1", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	uc, _ := newTestAuth(t)

	_, err := uc.Login(dto.AuthRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"unknown user and wrong password must be indistinguishable")
}

func TestLogin_InactiveUser(t *testing.T) {
	uc, _ := newTestAuth(t)

	_, err := uc.Login(dto.AuthRequest{Username: "ghost", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
