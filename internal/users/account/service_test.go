// Copyright (c) 2026 YaMDB. All rights reserved.

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamdb/yamdb/internal/platform/apperr"
	"github.com/yamdb/yamdb/internal/platform/dberr"
	"github.com/yamdb/yamdb/internal/platform/sec"
	"github.com/yamdb/yamdb/internal/users/account"
	"github.com/yamdb/yamdb/internal/users/auth"
	"github.com/yamdb/yamdb/pkg/pagination"
	"github.com/yamdb/yamdb/pkg/pointer"
)

// # Test Doubles

// fakeRepo is an in-memory account Repository.
type fakeRepo struct {
	users  map[int64]*auth.User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[int64]*auth.User{}, nextID: 1}
}

func (r *fakeRepo) List(_ context.Context, _ pagination.Params, search string) ([]*auth.User, int, error) {
	result := []*auth.User{}
	for _, user := range r.users {
		copied := *user
		result = append(result, &copied)
	}
	return result, len(result), nil
}

func (r *fakeRepo) FindByID(_ context.Context, id int64) (*auth.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeRepo) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (r *fakeRepo) Create(_ context.Context, user *auth.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return apperr.Conflict("duplicate")
		}
	}
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeRepo) Update(_ context.Context, user *auth.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return dberr.ErrNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, username string) error {
	for id, user := range r.users {
		if user.Username == username {
			delete(r.users, id)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func newService(repo *fakeRepo) *account.Service {
	return account.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// # Administration

/*
TestCreate_AdminAccountIsConfirmed verifies admin-created accounts skip the
email confirmation flow.
*/
func TestCreate_AdminAccountIsConfirmed(t *testing.T) {
	service := newService(newFakeRepo())

	user, err := service.Create(context.Background(), account.CreateInput{
		Username: "editor",
		Email:    "editor@yamdb.io",
		Role:     sec.RoleModerator,
	})

	require.NoError(t, err)
	assert.True(t, user.IsConfirmed)
	assert.Equal(t, sec.RoleModerator, user.Role)
}

/*
TestCreate_DefaultsRole falls back to the user role when none is given.
*/
func TestCreate_DefaultsRole(t *testing.T) {
	service := newService(newFakeRepo())

	user, err := service.Create(context.Background(), account.CreateInput{
		Username: "plain",
		Email:    "plain@yamdb.io",
	})

	require.NoError(t, err)
	assert.Equal(t, sec.RoleUser, user.Role)
}

/*
TestCreate_UnknownRole rejects roles outside the known set.
*/
func TestCreate_UnknownRole(t *testing.T) {
	service := newService(newFakeRepo())

	_, err := service.Create(context.Background(), account.CreateInput{
		Username: "plain",
		Email:    "plain@yamdb.io",
		Role:     sec.UserRole("overlord"),
	})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestCreate_DuplicateIdentity surfaces storage conflicts as a friendly 409.
*/
func TestCreate_DuplicateIdentity(t *testing.T) {
	service := newService(newFakeRepo())

	_, err := service.Create(context.Background(), account.CreateInput{
		Username: "editor", Email: "editor@yamdb.io",
	})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), account.CreateInput{
		Username: "editor", Email: "other@yamdb.io",
	})
	assert.True(t, apperr.IsConflict(err))
}

/*
TestUpdate_PromotesRole lets an administrator change a stored role.
*/
func TestUpdate_PromotesRole(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	created, err := service.Create(context.Background(), account.CreateInput{
		Username: "plain", Email: "plain@yamdb.io",
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), "plain", account.UpdateInput{
		Role: pointer.To(sec.RoleModerator),
	})

	require.NoError(t, err)
	assert.Equal(t, sec.RoleModerator, updated.Role)
	assert.Equal(t, sec.RoleModerator, repo.users[created.ID].Role)
}

// # Self Service

/*
TestUpdateSelf_DropsRoleForNonAdmin verifies a regular user cannot escalate
their own role through the profile endpoint.
*/
func TestUpdateSelf_DropsRoleForNonAdmin(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	created, err := service.Create(context.Background(), account.CreateInput{
		Username: "plain", Email: "plain@yamdb.io",
	})
	require.NoError(t, err)

	updated, err := service.UpdateSelf(context.Background(), created.ID, account.UpdateInput{
		Bio:  pointer.To("I read a lot"),
		Role: pointer.To(sec.RoleAdmin),
	}, false)

	require.NoError(t, err)
	assert.Equal(t, sec.RoleUser, updated.Role, "role change silently dropped")
	assert.Equal(t, "I read a lot", updated.Bio)
}

/*
TestUpdateSelf_AdminMayChangeRole verifies the admin path keeps the role
field.
*/
func TestUpdateSelf_AdminMayChangeRole(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	created, err := service.Create(context.Background(), account.CreateInput{
		Username: "root", Email: "root@yamdb.io", Role: sec.RoleAdmin,
	})
	require.NoError(t, err)

	updated, err := service.UpdateSelf(context.Background(), created.ID, account.UpdateInput{
		Role: pointer.To(sec.RoleModerator),
	}, true)

	require.NoError(t, err)
	assert.Equal(t, sec.RoleModerator, updated.Role)
}

/*
TestUpdateSelf_InvalidEmail rejects malformed email updates.
*/
func TestUpdateSelf_InvalidEmail(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	created, err := service.Create(context.Background(), account.CreateInput{
		Username: "plain", Email: "plain@yamdb.io",
	})
	require.NoError(t, err)

	_, err = service.UpdateSelf(context.Background(), created.ID, account.UpdateInput{
		Email: pointer.To("not-an-email"),
	}, false)

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}
