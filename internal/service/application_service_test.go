package service

import (
	"testing"

	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/fault"
	"skillhub/internal/domain/pagination"
	"skillhub/internal/domain/policy"
	"skillhub/internal/utils/uid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationFixture(t *testing.T) (*ApplicationService, *fakeApplicationRepo, *fakeProjectRepo, *entity.Project) {
	t.Helper()

	projectRepo := newFakeProjectRepo()
	applicationRepo := newFakeApplicationRepo()
	svc := NewApplicationService(applicationRepo, projectRepo, policy.NewApplicationPolicy())

	project := &entity.Project{
		ID:      uid.Generate(),
		Name:    "distributed cache",
		OwnerID: 100,
	}
	require.NoError(t, projectRepo.Save(project))
	return svc, applicationRepo, projectRepo, project
}

func TestApplyCreatesWaitListedApplication(t *testing.T) {
	svc, _, _, project := newApplicationFixture(t)
	actor := proUser(200)

	e, err := svc.Apply(actor, project.ID)
	require.NoError(t, err)
	require.True(t, e.IsRight())

	resp := e.Value()
	assert.Equal(t, string(entity.StatusWaitListed), resp.Status)
	assert.Equal(t, actor.ID, resp.ApplicantID)
	assert.Equal(t, project.ID, resp.ProjectID)
}

func TestApplyMissingProjectIsNotFound(t *testing.T) {
	svc, _, _, _ := newApplicationFixture(t)

	e, err := svc.Apply(proUser(200), 999)
	require.NoError(t, err)
	require.True(t, e.IsLeft())
	assert.Equal(t, fault.KindNotFound, e.Err().Kind)
}

func TestApplyWithoutProRoleIsForbidden(t *testing.T) {
	svc, _, _, project := newApplicationFixture(t)

	e, err := svc.Apply(regularUser(200), project.ID)
	require.NoError(t, err)
	require.True(t, e.IsLeft())
	assert.Equal(t, fault.KindForbidden, e.Err().Kind)
}

func TestApplyToOwnProjectIsSelfReference(t *testing.T) {
	svc, _, _, project := newApplicationFixture(t)
	owner := proUser(project.OwnerID)

	e, err := svc.Apply(owner, project.ID)
	require.NoError(t, err)
	require.True(t, e.IsLeft())
	assert.Equal(t, fault.KindSelfReference, e.Err().Kind)
}

func TestApplyTwiceIsConflict(t *testing.T) {
	svc, _, _, project := newApplicationFixture(t)
	actor := proUser(200)

	first, err := svc.Apply(actor, project.ID)
	require.NoError(t, err)
	require.True(t, first.IsRight())

	second, err := svc.Apply(actor, project.ID)
	require.NoError(t, err)
	require.True(t, second.IsLeft())
	assert.Equal(t, fault.KindConflict, second.Err().Kind)
}

// The guard order is part of the contract: a suspended-looking actor on a
// missing project must see NotFound, not Forbidden.
func TestApplyGuardOrderNotFoundBeforeForbidden(t *testing.T) {
	svc, _, _, _ := newApplicationFixture(t)

	e, err := svc.Apply(regularUser(200), 999)
	require.NoError(t, err)
	require.True(t, e.IsLeft())
	assert.Equal(t, fault.KindNotFound, e.Err().Kind)
}

func TestQuitRemovesApplication(t *testing.T) {
	svc, applicationRepo, _, project := newApplicationFixture(t)
	actor := proUser(200)

	applied, err := svc.Apply(actor, project.ID)
	require.NoError(t, err)
	require.True(t, applied.IsRight())

	quit, err := svc.Quit(actor, project.ID)
	require.NoError(t, err)
	assert.True(t, quit.IsRight())

	remaining, err := applicationRepo.FindByApplicantAndProject(actor.ID, project.ID)
	require.NoError(t, err)
	assert.Nil(t, remaining)
}

func TestQuitWithoutApplicationIsNotFound(t *testing.T) {
	svc, _, _, project := newApplicationFixture(t)

	e, err := svc.Quit(proUser(200), project.ID)
	require.NoError(t, err)
	require.True(t, e.IsLeft())
	assert.Equal(t, fault.KindNotFound, e.Err().Kind)
}

func TestQuitWorksRegardlessOfStatus(t *testing.T) {
	svc, _, _, project := newApplicationFixture(t)
	actor := proUser(200)
	owner := proUser(project.OwnerID)

	applied, err := svc.Apply(actor, project.ID)
	require.NoError(t, err)
	require.True(t, applied.IsRight())

	accepted, err := svc.Accept(owner, applied.Value().ID)
	require.NoError(t, err)
	require.True(t, accepted.IsRight())

	quit, err := svc.Quit(actor, project.ID)
	require.NoError(t, err)
	assert.True(t, quit.IsRight())
}

func TestAcceptByOwner(t *testing.T) {
	svc, _, _, project := newApplicationFixture(t)
	owner := proUser(project.OwnerID)

	applied, err := svc.Apply(proUser(200), project.ID)
	require.NoError(t, err)
	require.True(t, applied.IsRight())

	e, err := svc.Accept(owner, applied.Value().ID)
	require.NoError(t, err)
	require.True(t, e.IsRight())
	assert.Equal(t, string(entity.StatusAccepted), e.Value().Status)
}

func TestRejectByAdmin(t *testing.T) {
	svc, _, _, project := newApplicationFixture(t)

	applied, err := svc.Apply(proUser(200), project.ID)
	require.NoError(t, err)
	require.True(t, applied.IsRight())

	e, err := svc.Reject(adminUser(300), applied.Value().ID)
	require.NoError(t, err)
	require.True(t, e.IsRight())
	assert.Equal(t, string(entity.StatusRejected), e.Value().Status)
}

func TestDecideByStrangerIsForbidden(t *testing.T) {
	svc, _, _, project := newApplicationFixture(t)

	applied, err := svc.Apply(proUser(200), project.ID)
	require.NoError(t, err)
	require.True(t, applied.IsRight())

	e, err := svc.Accept(proUser(400), applied.Value().ID)
	require.NoError(t, err)
	require.True(t, e.IsLeft())
	assert.Equal(t, fault.KindForbidden, e.Err().Kind)
}

func TestDecideTwiceIsConflict(t *testing.T) {
	svc, _, _, project := newApplicationFixture(t)
	owner := proUser(project.OwnerID)

	applied, err := svc.Apply(proUser(200), project.ID)
	require.NoError(t, err)
	require.True(t, applied.IsRight())

	first, err := svc.Accept(owner, applied.Value().ID)
	require.NoError(t, err)
	require.True(t, first.IsRight())

	second, err := svc.Reject(owner, applied.Value().ID)
	require.NoError(t, err)
	require.True(t, second.IsLeft())
	assert.Equal(t, fault.KindConflict, second.Err().Kind)
}

func TestDecideOnDeletedProjectIsNotFound(t *testing.T) {
	svc, _, projectRepo, project := newApplicationFixture(t)
	owner := proUser(project.OwnerID)

	applied, err := svc.Apply(proUser(200), project.ID)
	require.NoError(t, err)
	require.True(t, applied.IsRight())

	require.NoError(t, projectRepo.Save(project.Deleted(42)))

	e, err := svc.Accept(owner, applied.Value().ID)
	require.NoError(t, err)
	require.True(t, e.IsLeft())
	assert.Equal(t, fault.KindNotFound, e.Err().Kind)
}

func TestGetProjectApplicationsRequiresReviewRights(t *testing.T) {
	svc, _, _, project := newApplicationFixture(t)

	applied, err := svc.Apply(proUser(200), project.ID)
	require.NoError(t, err)
	require.True(t, applied.IsRight())

	denied, err := svc.GetProjectApplications(proUser(400), project.ID, pagination.PageQuery{})
	require.NoError(t, err)
	require.True(t, denied.IsLeft())
	assert.Equal(t, fault.KindForbidden, denied.Err().Kind)

	listed, err := svc.GetProjectApplications(proUser(project.OwnerID), project.ID, pagination.PageQuery{})
	require.NoError(t, err)
	require.True(t, listed.IsRight())
	assert.Len(t, listed.Value().Data, 1)
}

func TestApplyPropagatesInfrastructureErrors(t *testing.T) {
	svc, _, projectRepo, project := newApplicationFixture(t)
	projectRepo.failing = true

	_, err := svc.Apply(proUser(200), project.ID)
	assert.Error(t, err)
}
