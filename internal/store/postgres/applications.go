package postgres

import (
	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
	"gorm.io/gorm"
)

type ApplicationStore struct {
	db *gorm.DB
}

func (s *ApplicationStore) FindByID(id uuid.UUID) (*models.Application, error) {
	var application models.Application
	if err := s.db.First(&application, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &application, nil
}

func (s *ApplicationStore) FindByScholarshipAndOwner(scholarshipID uuid.UUID, email string) (*models.Application, error) {
	var application models.Application
	err := s.db.Where("scholarship_id = ? AND user_email = ?", scholarshipID, email).
		First(&application).Error
	if err != nil {
		return nil, translate(err)
	}
	return &application, nil
}

func (s *ApplicationStore) ListByOwner(email string) ([]models.Application, error) {
	var applications []models.Application
	err := s.db.Where("user_email = ?", email).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

// ListPaid returns paid applications only; unpaid records never reach the
// moderation queue.
func (s *ApplicationStore) ListPaid(limit, offset int) ([]models.Application, int64, error) {
	var applications []models.Application
	var total int64

	query := s.db.Model(&models.Application{}).Where("payment_status = ?", models.PaymentPaid)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&applications).Error; err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}

func (s *ApplicationStore) Insert(application *models.Application) error {
	return translate(s.db.Create(application).Error)
}

func (s *ApplicationStore) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	result := s.db.Model(&models.Application{}).
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

func (s *ApplicationStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ApplicationStore) Count() (int64, error) {
	var total int64
	err := s.db.Model(&models.Application{}).Count(&total).Error
	return total, err
}

func (s *ApplicationStore) CountPaid() (int64, error) {
	var total int64
	err := s.db.Model(&models.Application{}).
		Where("payment_status = ?", models.PaymentPaid).
		Count(&total).Error
	return total, err
}

func (s *ApplicationStore) SumPaidTotal() (float64, error) {
	var sum float64
	err := s.db.Model(&models.Application{}).
		Where("payment_status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum).Error
	return sum, err
}
