package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationPending    = "pending"
	ApplicationProcessing = "processing"
	ApplicationAccepted   = "accepted"
	ApplicationRejected   = "rejected"
)

const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

func ValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationPending, ApplicationProcessing, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Application holds one student's application to one scholarship. The
// composite unique index backs the one-application-per-pair invariant so a
// concurrent create racing past the service pre-check still conflicts here.
type Application struct {
	ID                  uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ScholarshipID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_scholarship_owner" json:"scholarship_id"`
	UserEmail           string    `gorm:"not null;size:255;uniqueIndex:idx_applications_scholarship_owner;index" json:"user_email"`
	ApplicationStatus   string    `gorm:"size:20;default:'pending'" json:"application_status"`
	PaymentStatus       string    `gorm:"size:20;default:'unpaid'" json:"payment_status"`
	Feedback            string    `gorm:"type:text" json:"feedback"`
	Phone               string    `gorm:"size:50" json:"phone"`
	DateOfBirth         string    `gorm:"size:20" json:"date_of_birth"`
	Gender              string    `gorm:"size:20" json:"gender"`
	CurrentUniversity   string    `gorm:"size:255" json:"current_university"`
	CGPA                float64   `json:"cgpa"`
	TotalAmount         float64   `json:"total_amount"`
	UniversityName      string    `gorm:"size:255" json:"university_name"`
	ScholarshipCategory string    `gorm:"size:100" json:"scholarship_category"`
	Degree              string    `gorm:"size:100" json:"degree"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
