package policy

import (
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/fault"
)

// CoursePolicy mirrors ProjectPolicy for course manipulation.
type CoursePolicy struct{}

func NewCoursePolicy() *CoursePolicy {
	return &CoursePolicy{}
}

func (p *CoursePolicy) CanCreate(actor *entity.User) *fault.Error {
	if actor.Roles.HasAny(pro | admin) {
		return nil
	}
	return fault.Forbidden("only pro members can create courses")
}

func (p *CoursePolicy) CanModify(actor *entity.User, course *entity.Course) *fault.Error {
	if actor.Roles.Has(admin) || actor.Owns(course.OwnerID) {
		return nil
	}
	return fault.Forbidden("only the course owner can modify this course")
}
