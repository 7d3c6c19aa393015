package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokavera/catalog-admin/internal/dto"
	"github.com/lokavera/catalog-admin/internal/model"
	"github.com/lokavera/catalog-admin/internal/repository"
	"github.com/lokavera/catalog-admin/pkg/apperror"
	"github.com/lokavera/catalog-admin/pkg/hash"
)

func newUserService(t *testing.T) (UserService, repository.UserRepository) {
	t.Helper()
	repo := repository.NewUserRepository(newTestDB(t))
	return NewUserService(repo), repo
}

func seedUser(t *testing.T, repo repository.UserRepository, email string, roles ...string) *model.User {
	t.Helper()

	digest, err := hash.Password("seed-password")
	require.NoError(t, err)

	if len(roles) == 0 {
		roles = []string{model.RoleUser}
	}
	user := &model.User{
		Email:     email,
		Password:  digest,
		FirstName: "Test",
		LastName:  "User",
		IsActive:  true,
		Roles:     model.RoleList(roles),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserFindAllClearsPasswords(t *testing.T) {
	svc, repo := newUserService(t)

	seedUser(t, repo, "a@example.com")
	seedUser(t, repo, "b@example.com")

	users, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}

func TestUserUpdateSelf(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "self@example.com")

	updated, err := svc.Update(ctx, user, user.ID, dto.UpdateUserRequest{
		FirstName: strPtr("Grace"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Grace", updated.FirstName)
	assert.Equal(t, "User", updated.LastName)
	assert.Empty(t, updated.Password)
}

func TestUserUpdateCrossUserForbidden(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	actor := seedUser(t, repo, "actor@example.com")
	target := seedUser(t, repo, "target@example.com")

	_, err := svc.Update(ctx, actor, target.ID, dto.UpdateUserRequest{FirstName: strPtr("Hax")})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestUserUpdateRolesDroppedForNonAdmin(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "plain@example.com")

	// Role escalation is silently ignored, the rest of the patch applies.
	updated, err := svc.Update(ctx, user, user.ID, dto.UpdateUserRequest{
		FirstName: strPtr("Sneaky"),
		Roles:     []string{model.RoleAdmin},
		IsActive:  boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sneaky", updated.FirstName)
	assert.False(t, updated.IsAdmin())
	assert.True(t, updated.IsActive)
}

func TestUserUpdateRolesAppliedForAdmin(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	admin := seedUser(t, repo, "root@example.com", model.RoleAdmin)
	target := seedUser(t, repo, "promote@example.com")

	updated, err := svc.Update(ctx, admin, target.ID, dto.UpdateUserRequest{
		Roles:    []string{model.RoleAdmin, model.RoleUser},
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsAdmin())
	assert.False(t, updated.IsActive)
}

func TestUserUpdateEmailConflict(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	seedUser(t, repo, "taken@example.com")
	user := seedUser(t, repo, "mine@example.com")

	_, err := svc.Update(ctx, user, user.ID, dto.UpdateUserRequest{Email: strPtr("taken@example.com")})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	// Keeping the current email is not a conflict.
	updated, err := svc.Update(ctx, user, user.ID, dto.UpdateUserRequest{Email: strPtr("mine@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "mine@example.com", updated.Email)
}

func TestUserUpdatePasswordRehash(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "rotate@example.com")

	_, err := svc.Update(ctx, user, user.ID, dto.UpdateUserRequest{Password: strPtr("brand-new-pass")})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, hash.Verify("brand-new-pass", stored.Password))
	assert.False(t, hash.Verify("seed-password", stored.Password))
}

func TestUserDelete(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	user := seedUser(t, repo, "bye@example.com")

	require.NoError(t, svc.Delete(ctx, user.ID))

	_, err := svc.FindOne(ctx, user.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// Deleting twice reports the row as gone.
	err = svc.Delete(ctx, user.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
