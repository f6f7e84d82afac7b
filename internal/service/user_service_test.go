package service

import (
	"net/http"
	"testing"

	"skillhub/internal/contract"
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/fault"
	"skillhub/internal/domain/policy"
	"skillhub/internal/utils/uid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (*UserService, *fakeUserRepo, *fakeCognito) {
	repo := newFakeUserRepo()
	cog := &fakeCognito{sub: "sub-uuid-1"}
	return NewUserService(repo, cog, policy.NewUserPolicy()), repo, cog
}

func seedUser(t *testing.T, repo *fakeUserRepo, roles entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:       uid.Generate(),
		SubUUID:  "sub",
		Username: "someone",
		Email:    "someone@example.com",
		Roles:    roles,
	}
	require.NoError(t, repo.Save(user))
	return user
}

func TestGetUserHidesSuspendedFromNonAdmins(t *testing.T) {
	svc, repo, _ := newUserFixture()
	target := seedUser(t, repo, entity.RoleUser)

	asUser, err := svc.GetUser(regularUser(500), target.ID)
	require.NoError(t, err)
	require.True(t, asUser.IsRight())
	assert.Nil(t, asUser.Value().Suspended)

	asAdmin, err := svc.GetUser(adminUser(900), target.ID)
	require.NoError(t, err)
	require.True(t, asAdmin.IsRight())
	assert.NotNil(t, asAdmin.Value().Suspended)
}

func TestUpdateOwnProfile(t *testing.T) {
	svc, repo, _ := newUserFixture()
	target := seedUser(t, repo, entity.RoleUser)

	name := "renamed"
	e, err := svc.UpdateUser(target, target.ID, &contract.UpdateUserRequest{Username: &name})
	require.NoError(t, err)
	require.True(t, e.IsRight())
	assert.Equal(t, "renamed", e.Value().Username)
}

func TestUpdateOtherUserRequiresAdmin(t *testing.T) {
	svc, repo, _ := newUserFixture()
	target := seedUser(t, repo, entity.RoleUser)

	name := "hacked"
	e, err := svc.UpdateUser(regularUser(500), target.ID, &contract.UpdateUserRequest{Username: &name})
	require.NoError(t, err)
	require.True(t, e.IsLeft())
	assert.Equal(t, fault.KindForbidden, e.Err().Kind)
}

func TestAdminsAreImmune(t *testing.T) {
	svc, repo, _ := newUserFixture()
	target := seedUser(t, repo, entity.RoleUser|entity.RoleAdmin)

	suspended := true
	e, err := svc.UpdateUser(adminUser(900), target.ID, &contract.UpdateUserRequest{Suspended: &suspended})
	require.NoError(t, err)
	require.True(t, e.IsLeft())
	assert.Equal(t, fault.KindForbidden, e.Err().Kind)
}

func TestCannotGrantAdminViaUpdate(t *testing.T) {
	svc, repo, _ := newUserFixture()
	target := seedUser(t, repo, entity.RoleUser)

	roles := int64(entity.RoleUser | entity.RoleAdmin)
	e, err := svc.UpdateUser(adminUser(900), target.ID, &contract.UpdateUserRequest{Roles: &roles})
	require.NoError(t, err)
	require.True(t, e.IsLeft())
	assert.Equal(t, fault.KindForbidden, e.Err().Kind)
}

func TestAdminCanSuspendRegularUser(t *testing.T) {
	svc, repo, _ := newUserFixture()
	target := seedUser(t, repo, entity.RoleUser)

	suspended := true
	e, err := svc.UpdateUser(adminUser(900), target.ID, &contract.UpdateUserRequest{Suspended: &suspended})
	require.NoError(t, err)
	require.True(t, e.IsRight())
	require.NotNil(t, e.Value().Suspended)
	assert.True(t, *e.Value().Suspended)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	svc, repo, _ := newUserFixture()
	existing := seedUser(t, repo, entity.RoleUser)

	apierr := svc.CreateUser(&contract.CreateUserRequest{
		Username: "dupe",
		Email:    existing.Email,
		Password: "password123",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}

func TestCreateUserStartsAsUnverifiedMember(t *testing.T) {
	svc, repo, _ := newUserFixture()

	apierr := svc.CreateUser(&contract.CreateUserRequest{
		Username: "newbie",
		Email:    "newbie@example.com",
		Password: "password123",
	})
	require.Nil(t, apierr)

	user, err := repo.FindActiveByEmail("newbie@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleUser, user.Roles)
	assert.False(t, user.EmailVerified)
	assert.Equal(t, "sub-uuid-1", user.SubUUID)
}

func TestLoginSuspendedUserIsForbidden(t *testing.T) {
	svc, repo, _ := newUserFixture()
	target := seedUser(t, repo, entity.RoleUser)
	target.Suspended = true
	require.NoError(t, repo.Save(target))

	_, apierr := svc.Login(&contract.UserLoginRequest{
		Email:    target.Email,
		Password: "password123",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())
}

func TestLoginReturnsTokens(t *testing.T) {
	svc, repo, _ := newUserFixture()
	target := seedUser(t, repo, entity.RoleUser)

	resp, apierr := svc.Login(&contract.UserLoginRequest{
		Email:    target.Email,
		Password: "password123",
	})
	require.Nil(t, apierr)
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.Equal(t, "id-token", resp.IDToken)
}
