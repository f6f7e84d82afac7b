package service

import (
	"testing"

	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/fault"
	"skillhub/internal/utils/uid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnrollmentFixture(t *testing.T) (*EnrollmentService, *entity.Course) {
	t.Helper()

	courseRepo := newFakeCourseRepo()
	svc := NewEnrollmentService(newFakeEnrollmentRepo(), courseRepo)

	course := &entity.Course{
		ID:      uid.Generate(),
		Name:    "intro to go",
		OwnerID: 100,
	}
	require.NoError(t, courseRepo.Save(course))
	return svc, course
}

func TestEnrollAnyRegisteredUser(t *testing.T) {
	svc, course := newEnrollmentFixture(t)
	actor := regularUser(200)

	e, err := svc.Enroll(actor, course.ID)
	require.NoError(t, err)
	require.True(t, e.IsRight())

	resp := e.Value()
	assert.Equal(t, actor.ID, resp.UserID)
	assert.Equal(t, course.ID, resp.CourseID)
}

func TestEnrollMissingCourseIsNotFound(t *testing.T) {
	svc, _ := newEnrollmentFixture(t)

	e, err := svc.Enroll(regularUser(200), 999)
	require.NoError(t, err)
	require.True(t, e.IsLeft())
	assert.Equal(t, fault.KindNotFound, e.Err().Kind)
}

func TestEnrollTwiceIsConflict(t *testing.T) {
	svc, course := newEnrollmentFixture(t)
	actor := regularUser(200)

	first, err := svc.Enroll(actor, course.ID)
	require.NoError(t, err)
	require.True(t, first.IsRight())

	second, err := svc.Enroll(actor, course.ID)
	require.NoError(t, err)
	require.True(t, second.IsLeft())
	assert.Equal(t, fault.KindConflict, second.Err().Kind)
}

func TestWithdrawThenWithdrawAgain(t *testing.T) {
	svc, course := newEnrollmentFixture(t)
	actor := regularUser(200)

	enrolled, err := svc.Enroll(actor, course.ID)
	require.NoError(t, err)
	require.True(t, enrolled.IsRight())

	withdrawn, err := svc.Withdraw(actor, course.ID)
	require.NoError(t, err)
	assert.True(t, withdrawn.IsRight())

	again, err := svc.Withdraw(actor, course.ID)
	require.NoError(t, err)
	require.True(t, again.IsLeft())
	assert.Equal(t, fault.KindNotFound, again.Err().Kind)
}
