package postgres

import (
	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
	"gorm.io/gorm"
)

type ReviewStore struct {
	db *gorm.DB
}

func (s *ReviewStore) FindByID(id uuid.UUID) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (s *ReviewStore) ListByScholarship(scholarshipID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("scholarship_id = ?", scholarshipID).
		Order("review_date DESC").
		Find(&reviews).Error
	return reviews, err
}

func (s *ReviewStore) ListByOwner(email string) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("user_email = ?", email).
		Order("review_date DESC").
		Find(&reviews).Error
	return reviews, err
}

func (s *ReviewStore) ListAll(limit, offset int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	query := s.db.Model(&models.Review{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("review_date DESC").Limit(limit).Offset(offset).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (s *ReviewStore) Insert(review *models.Review) error {
	return translate(s.db.Create(review).Error)
}

func (s *ReviewStore) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	result := s.db.Model(&models.Review{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ReviewStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ReviewStore) Count() (int64, error) {
	var total int64
	err := s.db.Model(&models.Review{}).Count(&total).Error
	return total, err
}

func (s *ReviewStore) AverageRating() (float64, error) {
	var avg float64
	err := s.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating_point), 0)").
		Scan(&avg).Error
	return avg, err
}
