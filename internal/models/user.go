package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values form a closed set; anything else is rejected at the service layer.
const (
	RoleStudent   = "student"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User is created once per email; registration is idempotent.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email       string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Role        string         `gorm:"size:20;default:'student'" json:"role"`
	DisplayName string         `gorm:"size:255" json:"display_name"`
	PhotoURL    string         `gorm:"size:512" json:"photo_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
