package service

import (
	"errors"
	"os"
	"sort"
	"testing"

	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/pagination"
	cognitoclient "skillhub/internal/infrastructure/aws/cognito"
	"skillhub/internal/utils/uid"
)

func TestMain(m *testing.M) {
	uid.Init(1)
	os.Exit(m.Run())
}

// In-memory repositories backing the service tests. They mimic the
// SQLite implementations: absent or soft-deleted rows come back as
// (nil, nil), never as an error.

type fakeProjectRepo struct {
	projects map[int64]*entity.Project
	failing  bool
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[int64]*entity.Project)}
}

func (r *fakeProjectRepo) FindByID(id int64) (*entity.Project, error) {
	if r.failing {
		return nil, errors.New("storage offline")
	}

	project, ok := r.projects[id]
	if !ok || project.DeletedAt != nil {
		return nil, nil
	}
	clone := *project
	return &clone, nil
}

func (r *fakeProjectRepo) FindMany(q pagination.PageQuery) ([]*entity.Project, error) {
	if r.failing {
		return nil, errors.New("storage offline")
	}

	var out []*entity.Project
	for _, project := range r.projects {
		if project.DeletedAt == nil {
			clone := *project
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *fakeProjectRepo) Save(project *entity.Project) error {
	if r.failing {
		return errors.New("storage offline")
	}

	clone := *project
	r.projects[project.ID] = &clone
	return nil
}

type fakeApplicationRepo struct {
	applications map[int64]*entity.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[int64]*entity.Application)}
}

func (r *fakeApplicationRepo) FindByID(id int64) (*entity.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, nil
	}
	clone := *application
	return &clone, nil
}

func (r *fakeApplicationRepo) FindByApplicantAndProject(applicantID, projectID int64) (*entity.Application, error) {
	for _, application := range r.applications {
		if application.ApplicantID == applicantID && application.ProjectID == projectID {
			clone := *application
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeApplicationRepo) FindManyByProject(projectID int64, q pagination.PageQuery) ([]*entity.Application, error) {
	var out []*entity.Application
	for _, application := range r.applications {
		if application.ProjectID == projectID {
			clone := *application
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *fakeApplicationRepo) Save(application *entity.Application) error {
	clone := *application
	r.applications[application.ID] = &clone
	return nil
}

func (r *fakeApplicationRepo) Delete(application *entity.Application) error {
	delete(r.applications, application.ID)
	return nil
}

type fakeCourseRepo struct {
	courses map[int64]*entity.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int64]*entity.Course)}
}

func (r *fakeCourseRepo) FindByID(id int64) (*entity.Course, error) {
	course, ok := r.courses[id]
	if !ok || course.DeletedAt != nil {
		return nil, nil
	}
	clone := *course
	return &clone, nil
}

func (r *fakeCourseRepo) FindMany(q pagination.PageQuery) ([]*entity.Course, error) {
	var out []*entity.Course
	for _, course := range r.courses {
		if course.DeletedAt == nil {
			clone := *course
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *fakeCourseRepo) Save(course *entity.Course) error {
	clone := *course
	r.courses[course.ID] = &clone
	return nil
}

type fakeEnrollmentRepo struct {
	enrollments map[int64]*entity.Enrollment
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrollments: make(map[int64]*entity.Enrollment)}
}

func (r *fakeEnrollmentRepo) FindByUserAndCourse(userID, courseID int64) (*entity.Enrollment, error) {
	for _, enrollment := range r.enrollments {
		if enrollment.UserID == userID && enrollment.CourseID == courseID {
			clone := *enrollment
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeEnrollmentRepo) Save(enrollment *entity.Enrollment) error {
	clone := *enrollment
	r.enrollments[enrollment.ID] = &clone
	return nil
}

func (r *fakeEnrollmentRepo) Delete(enrollment *entity.Enrollment) error {
	delete(r.enrollments, enrollment.ID)
	return nil
}

type fakeCommentRepo struct {
	comments map[int64]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*entity.Comment)}
}

func (r *fakeCommentRepo) FindByID(id int64) (*entity.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	clone := *comment
	return &clone, nil
}

func (r *fakeCommentRepo) FindManyByTopic(kind entity.TopicKind, topicID int64, q pagination.PageQuery) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, comment := range r.comments {
		if comment.TopicKind == kind && comment.TopicID == topicID {
			clone := *comment
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *fakeCommentRepo) Save(comment *entity.Comment) error {
	clone := *comment
	r.comments[comment.ID] = &clone
	return nil
}

func (r *fakeCommentRepo) Delete(comment *entity.Comment) error {
	delete(r.comments, comment.ID)
	return nil
}

type fakeUserRepo struct {
	users map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) FindActiveByID(id int64) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok || user.DeletedAt != nil {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindActiveBySub(sub string) (*entity.User, error) {
	for _, user := range r.users {
		if user.SubUUID == sub && user.DeletedAt == nil {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindActiveByEmail(email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email && user.DeletedAt == nil {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsActiveByEmail(email string) (bool, error) {
	user, err := r.FindActiveByEmail(email)
	return user != nil, err
}

func (r *fakeUserRepo) Save(user *entity.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

type fakeCognito struct {
	sub        string
	signInErr  error
	deletedFor []string
}

func (c *fakeCognito) SignUp(user *cognitoclient.User) (string, error) {
	return c.sub, nil
}

func (c *fakeCognito) SignIn(user *cognitoclient.UserLogin) (*cognitoclient.AuthCreate, error) {
	if c.signInErr != nil {
		return nil, c.signInErr
	}
	return &cognitoclient.AuthCreate{IDToken: "id-token", AccessToken: "access-token"}, nil
}

func (c *fakeCognito) ConfirmAccount(user *cognitoclient.UserConfirmation) error {
	return nil
}

func (c *fakeCognito) ResendConfirmation(email string) error {
	return nil
}

func (c *fakeCognito) AdminDeleteUser(email string) error {
	c.deletedFor = append(c.deletedFor, email)
	return nil
}

// Actor helpers shared across the suite.

func proUser(id int64) *entity.User {
	return &entity.User{ID: id, Username: "pro", Roles: entity.RoleUser | entity.RolePro}
}

func regularUser(id int64) *entity.User {
	return &entity.User{ID: id, Username: "member", Roles: entity.RoleUser}
}

func adminUser(id int64) *entity.User {
	return &entity.User{ID: id, Username: "admin", Roles: entity.RoleUser | entity.RoleAdmin}
}
