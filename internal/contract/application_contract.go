package contract

type ApplicationResponse struct {
	ID          int64  `json:"id"`
	Status      string `json:"status"`
	ApplicantID int64  `json:"applicant_id"`
	ProjectID   int64  `json:"project_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
