package policy

import (
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/fault"
)

// UserPolicy encapsulates all business rules for user manipulation.
type UserPolicy struct{}

func NewUserPolicy() *UserPolicy {
	return &UserPolicy{}
}

// CanUpdateProfile checks if 'actor' can update mutable fields of 'target'.
func (p *UserPolicy) CanUpdateProfile(actor, target *entity.User) *fault.Error {
	if actor.ID == target.ID {
		return nil
	}

	if target.Roles.Has(admin) {
		return fault.Forbidden("administrators cannot be modified")
	}

	if !actor.Roles.Has(admin) {
		return fault.Forbidden("you cannot modify other users")
	}
	return nil
}

// CanUpdateRoles checks if 'actor' can change 'target' roles to 'newRoles'.
func (p *UserPolicy) CanUpdateRoles(actor, target *entity.User, newRoles entity.Role) *fault.Error {
	if !actor.Roles.Has(admin) {
		return fault.Forbidden("only administrators can change role grants")
	}

	// Admin immunity
	if target.Roles.Has(admin) {
		return fault.Forbidden("administrators cannot be modified")
	}

	// Cannot grant admin via API
	if newRoles.Has(admin) {
		return fault.Forbidden("cannot grant administrator privileges via API")
	}
	return nil
}

// CanSuspend checks if 'actor' can change the suspension state of 'target'.
func (p *UserPolicy) CanSuspend(actor, target *entity.User) *fault.Error {
	if !actor.Roles.Has(admin) {
		return fault.Forbidden("only administrators can suspend users")
	}

	if target.Roles.Has(admin) {
		return fault.Forbidden("administrators cannot be suspended")
	}
	return nil
}
