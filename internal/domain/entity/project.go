package entity

type Project struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	OwnerID     int64  `gorm:"not null"` // References: users(id)
	CreatedAt   int64  `gorm:"not null"`
	UpdatedAt   int64  `gorm:"not null;autoUpdateTime:false"`
	DeletedAt   *int64 `gorm:"index"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID;references:ID"`
}

// Patched returns a copy with the provided optional fields applied.
// Omitted fields keep their prior values; ID and OwnerID never change.
func (p Project) Patched(name, description *string, now int64) *Project {
	next := p
	if name != nil {
		next.Name = *name
	}
	if description != nil {
		next.Description = *description
	}
	next.UpdatedAt = now
	return &next
}

// Deleted returns a soft-deleted copy marked at 'now'.
func (p Project) Deleted(now int64) *Project {
	next := p
	next.DeletedAt = &now
	next.UpdatedAt = now
	return &next
}
