package models

import (
	"time"

	"github.com/google/uuid"
)

// Review has no per-pair uniqueness: a user may post several reviews for the
// same scholarship.
type Review struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ScholarshipID   uuid.UUID `gorm:"type:uuid;not null;index" json:"scholarship_id"`
	UserEmail       string    `gorm:"not null;size:255;index" json:"user_email"`
	UserDisplayName string    `gorm:"size:255" json:"user_display_name"`
	UserPhotoURL    string    `gorm:"size:512" json:"user_photo_url"`
	RatingPoint     float64   `gorm:"not null" json:"rating_point"`
	ReviewComment   string    `gorm:"type:text" json:"review_comment"`
	ReviewDate      time.Time `gorm:"not null" json:"review_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
