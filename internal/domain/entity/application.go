package entity

// ApplicationStatus tracks the lifecycle of a project application.
// wait_listed is the initial state; accepted and rejected are terminal.
type ApplicationStatus string

const (
	StatusWaitListed ApplicationStatus = "wait_listed"
	StatusAccepted   ApplicationStatus = "accepted"
	StatusRejected   ApplicationStatus = "rejected"
)

// Decided reports whether the status already reached a terminal state.
func (s ApplicationStatus) Decided() bool {
	return s == StatusAccepted || s == StatusRejected
}

type Application struct {
	ID          int64             `gorm:"primaryKey"`
	Status      ApplicationStatus `gorm:"not null;default:wait_listed"`
	ApplicantID int64             `gorm:"not null;uniqueIndex:idx_application_applicant_project"`
	ProjectID   int64             `gorm:"not null;uniqueIndex:idx_application_applicant_project"`
	CreatedAt   int64             `gorm:"not null"`
	UpdatedAt   int64             `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Applicant User    `gorm:"foreignKey:ApplicantID;references:ID"`
	Project   Project `gorm:"foreignKey:ProjectID;references:ID"`
}

// WithStatus returns a copy transitioned to 'status' at 'now'.
func (a Application) WithStatus(status ApplicationStatus, now int64) *Application {
	next := a
	next.Status = status
	next.UpdatedAt = now
	return &next
}
