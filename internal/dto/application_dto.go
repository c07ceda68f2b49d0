package dto

import "github.com/scholarstreams/scholarstream-backend/internal/models"

type CreateApplicationRequest struct {
	ScholarshipID     string  `json:"scholarship_id"`
	UserEmail         string  `json:"user_email,omitempty"` // informational only; must match the verified caller when set
	Phone             string  `json:"phone"`
	DateOfBirth       string  `json:"date_of_birth"`
	Gender            string  `json:"gender"`
	CurrentUniversity string  `json:"current_university"`
	CGPA              float64 `json:"cgpa"`
}

// UpdateApplicationRequest carries the owner-editable whitelist; everything
// else on an application is immutable via this path.
type UpdateApplicationRequest struct {
	Phone             *string  `json:"phone"`
	DateOfBirth       *string  `json:"date_of_birth"`
	Gender            *string  `json:"gender"`
	CurrentUniversity *string  `json:"current_university"`
	CGPA              *float64 `json:"cgpa"`
}

type SetFeedbackRequest struct {
	Feedback string `json:"feedback"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

type ApplicationListResponse struct {
	Applications []models.Application `json:"applications"`
	Pagination   Pagination           `json:"pagination"`
}
