package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
)

// Storage error kinds. Single-record lookups return ErrNotFound instead of a
// nil record; inserts that hit a unique index return ErrConflict.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// ScholarshipSearch carries the public catalog's query parameters.
type ScholarshipSearch struct {
	Query    string // matches scholarship name, university name or degree
	Country  string
	Category string
	Degree   string
	SortBy   string // "application_fees" or "posted_date"
	SortDesc bool
	Limit    int
	Offset   int
}

type UserStore interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	List(limit, offset int) ([]models.User, int64, error)
	Insert(user *models.User) error
	UpdateProfile(email, displayName, photoURL string) error
	UpdateRole(id uuid.UUID, role string) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

type ScholarshipStore interface {
	FindByID(id uuid.UUID) (*models.Scholarship, error)
	Search(params ScholarshipSearch) ([]models.Scholarship, int64, error)
	Top(limit int) ([]models.Scholarship, error)
	Insert(scholarship *models.Scholarship) error
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

type ApplicationStore interface {
	FindByID(id uuid.UUID) (*models.Application, error)
	FindByScholarshipAndOwner(scholarshipID uuid.UUID, email string) (*models.Application, error)
	ListByOwner(email string) ([]models.Application, error)
	ListPaid(limit, offset int) ([]models.Application, int64, error)
	Insert(application *models.Application) error
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
	CountPaid() (int64, error)
	SumPaidTotal() (float64, error)
}

type ReviewStore interface {
	FindByID(id uuid.UUID) (*models.Review, error)
	ListByScholarship(scholarshipID uuid.UUID) ([]models.Review, error)
	ListByOwner(email string) ([]models.Review, error)
	ListAll(limit, offset int) ([]models.Review, int64, error)
	Insert(review *models.Review) error
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
	AverageRating() (float64, error)
}

type RefreshTokenStore interface {
	FindActiveByHash(hash string) (*models.RefreshToken, error)
	Insert(token *models.RefreshToken) error
	Revoke(id uuid.UUID) error
	RevokeByHash(hash string) error
}
