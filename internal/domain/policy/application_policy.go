package policy

import (
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/fault"
)

// ApplicationPolicy encapsulates the rules guarding the project
// application lifecycle.
type ApplicationPolicy struct{}

func NewApplicationPolicy() *ApplicationPolicy {
	return &ApplicationPolicy{}
}

// CanApply checks if 'actor' may apply to join 'project'.
//
// Owners applying to their own project get a distinct self-reference
// error instead of a generic forbidden, so API consumers can tell the
// two conditions apart.
func (p *ApplicationPolicy) CanApply(actor *entity.User, project *entity.Project) *fault.Error {
	if !actor.Roles.HasAny(pro | admin) {
		return fault.Forbidden("only pro members can apply to projects")
	}

	if actor.Owns(project.OwnerID) {
		return fault.SelfReference("you cannot apply to your own project")
	}
	return nil
}

// CanReview checks if 'actor' may accept or reject applications
// targeting 'project'.
func (p *ApplicationPolicy) CanReview(actor *entity.User, project *entity.Project) *fault.Error {
	if actor.Roles.Has(admin) || actor.Owns(project.OwnerID) {
		return nil
	}
	return fault.Forbidden("only the project owner can review applications")
}
