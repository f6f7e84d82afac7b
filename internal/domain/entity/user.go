package entity

// User is the general basic structure of all users across the platform.
//
// A *User fetched by the auth middleware doubles as the request Actor:
// it is treated as an immutable snapshot for the lifetime of the request.
type User struct {
	ID            int64  `gorm:"primaryKey"`
	SubUUID       string `gorm:"not null;uniqueIndex"`
	Username      string `gorm:"not null"`
	Email         string `gorm:"not null"`
	EmailVerified bool   `gorm:"not null"`
	Roles         Role   `gorm:"not null;type:bigint;default:2"`
	Suspended     bool   `gorm:"not null;default:false"`
	CreatedAt     int64  `gorm:"not null"`
	UpdatedAt     int64  `gorm:"not null;autoUpdateTime:false"`
	DeletedAt     *int64 `gorm:"index"`
}

// Owns reports whether this user is the owner referenced by 'ownerID'.
// Ownership is the sole authorization primitive beyond role membership.
func (u *User) Owns(ownerID int64) bool {
	return u.ID == ownerID
}

// Patched returns a copy with the provided optional fields applied.
// Identifier, sub and email are never touched by profile updates.
func (u User) Patched(username *string, roles *Role, suspended *bool, now int64) *User {
	next := u
	if username != nil {
		next.Username = *username
	}
	if roles != nil {
		next.Roles = *roles
	}
	if suspended != nil {
		next.Suspended = *suspended
	}
	next.UpdatedAt = now
	return &next
}
