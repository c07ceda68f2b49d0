package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scholarship is admin-managed and publicly readable.
type Scholarship struct {
	ID                  uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ScholarshipName     string         `gorm:"not null;size:255;index" json:"scholarship_name"`
	UniversityName      string         `gorm:"not null;size:255;index" json:"university_name"`
	UniversityCountry   string         `gorm:"size:100;index" json:"university_country"`
	UniversityCity      string         `gorm:"size:100" json:"university_city"`
	UniversityWorldRank int            `json:"university_world_rank"`
	SubjectCategory     string         `gorm:"size:100" json:"subject_category"`
	ScholarshipCategory string         `gorm:"size:100;index" json:"scholarship_category"`
	Degree              string         `gorm:"size:100;index" json:"degree"`
	TuitionFees         float64        `json:"tuition_fees"`
	ApplicationFees     float64        `gorm:"not null" json:"application_fees"`
	ServiceCharge       float64        `json:"service_charge"`
	ApplicationDeadline time.Time      `json:"application_deadline"`
	PostedDate          time.Time      `gorm:"index" json:"posted_date"`
	Description         string         `gorm:"type:text" json:"description"`
	PostedByEmail       string         `gorm:"size:255" json:"posted_by_email"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}
