package entity

// Role is a custom type for bitwise role grants
type Role int64

const (
	// RoleGuest identifies unauthenticated visitors. It is never persisted;
	// it only exists so anonymous actors carry a non-empty role set.
	RoleGuest Role = 1 << iota

	// RoleUser is the baseline grant every registered account holds.
	// It allows enrolling in courses and commenting on topics.
	RoleUser

	// RolePro allows authoring projects and applying to join the
	// projects of other members.
	RolePro

	// RoleAdmin grants god-mode.
	// Admins bypass ownership checks and cannot be modified via API.
	RoleAdmin
)

// Has checks if the role bitmask contains ALL bits
// requested in 'target'. It ignores Administrator status.
// Logic: (r & target) == target
func (r Role) Has(target Role) bool {
	return (r & target) == target
}

// HasAny returns true if the actor holds ANY of the target roles
func (r Role) HasAny(target Role) bool {
	return (r & target) > 0
}

// Add appends a role to the bitmask
func (r Role) Add(role Role) Role {
	return r | role
}

// Remove clears a role from the bitmask
func (r Role) Remove(role Role) Role {
	return r &^ role
}

// HasEffective checks if the role bitmask contains the target bits
// OR if the bitmask includes Admin
func (r Role) HasEffective(target Role) bool {
	return r.Has(RoleAdmin) || r.Has(target)
}
