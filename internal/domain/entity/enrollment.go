package entity

type Enrollment struct {
	ID        int64 `gorm:"primaryKey"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID  int64 `gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CreatedAt int64 `gorm:"not null"`

	// Relations
	User   User   `gorm:"foreignKey:UserID;references:ID"`
	Course Course `gorm:"foreignKey:CourseID;references:ID"`
}
