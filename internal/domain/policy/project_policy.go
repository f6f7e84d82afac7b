package policy

import (
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/fault"
)

const (
	pro   = entity.RolePro
	admin = entity.RoleAdmin
)

// ProjectPolicy encapsulates all business rules for project manipulation.
// Predicates are pure and re-evaluated on every call; roles and ownership
// can change between requests, so nothing here is cached.
type ProjectPolicy struct{}

func NewProjectPolicy() *ProjectPolicy {
	return &ProjectPolicy{}
}

// CanCreate checks if 'actor' may author new projects.
func (p *ProjectPolicy) CanCreate(actor *entity.User) *fault.Error {
	if actor.Roles.HasAny(pro | admin) {
		return nil
	}
	return fault.Forbidden("only pro members can create projects")
}

// CanModify checks if 'actor' may update or delete 'project'.
// Admins bypass the ownership check.
func (p *ProjectPolicy) CanModify(actor *entity.User, project *entity.Project) *fault.Error {
	if actor.Roles.Has(admin) || actor.Owns(project.OwnerID) {
		return nil
	}
	return fault.Forbidden("only the project owner can modify this project")
}
