package contract

type CourseResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     int64  `json:"owner_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type CreateCourseRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=80"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateCourseRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=80"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type EnrollmentResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	CourseID  int64  `json:"course_id"`
	CreatedAt string `json:"created_at"`
}
