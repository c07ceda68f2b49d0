package postgres

import (
	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"gorm.io/gorm"
)

type RefreshTokenStore struct {
	db *gorm.DB
}

func (s *RefreshTokenStore) FindActiveByHash(hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := s.db.Where("token_hash = ? AND revoked = false", hash).First(&token).Error
	if err != nil {
		return nil, translate(err)
	}
	return &token, nil
}

func (s *RefreshTokenStore) Insert(token *models.RefreshToken) error {
	return translate(s.db.Create(token).Error)
}

func (s *RefreshTokenStore) Revoke(id uuid.UUID) error {
	return s.db.Model(&models.RefreshToken{}).
		Where("id = ?", id).
		Update("revoked", true).Error
}

func (s *RefreshTokenStore) RevokeByHash(hash string) error {
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", hash).
		Update("revoked", true).Error
}
