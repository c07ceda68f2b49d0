// Package postgres implements the store interfaces on GORM/PostgreSQL.
package postgres

import (
	"errors"

	"github.com/scholarstreams/scholarstream-backend/internal/store"
	"gorm.io/gorm"
)

// Stores bundles all repositories over one DB handle.
type Stores struct {
	Users        *UserStore
	Scholarships *ScholarshipStore
	Applications *ApplicationStore
	Reviews      *ReviewStore
	Tokens       *RefreshTokenStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		Users:        &UserStore{db: db},
		Scholarships: &ScholarshipStore{db: db},
		Applications: &ApplicationStore{db: db},
		Reviews:      &ReviewStore{db: db},
		Tokens:       &RefreshTokenStore{db: db},
	}
}

// translate maps GORM errors onto the store error kinds. Requires
// gorm.Config{TranslateError: true} so unique violations surface as
// gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return store.ErrConflict
	default:
		return err
	}
}
