package entity

// TopicKind discriminates what a comment is attached to.
type TopicKind string

const (
	TopicProject TopicKind = "project"
	TopicCourse  TopicKind = "course"
)

// ValidTopicKind reports whether 'kind' names a commentable resource.
func ValidTopicKind(kind string) bool {
	return TopicKind(kind) == TopicProject || TopicKind(kind) == TopicCourse
}

type Comment struct {
	ID        int64     `gorm:"primaryKey"`
	TopicKind TopicKind `gorm:"not null;index:idx_comment_topic"`
	TopicID   int64     `gorm:"not null;index:idx_comment_topic"`
	AuthorID  int64     `gorm:"not null"` // References: users(id)
	Content   string    `gorm:"not null"`
	CreatedAt int64     `gorm:"not null"`
	UpdatedAt int64     `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Author User `gorm:"foreignKey:AuthorID;references:ID"`
}

// Patched returns a copy with the new content applied.
func (c Comment) Patched(content string, now int64) *Comment {
	next := c
	next.Content = content
	next.UpdatedAt = now
	return &next
}
