package postgres

import (
	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
	"gorm.io/gorm"
)

type ScholarshipStore struct {
	db *gorm.DB
}

func (s *ScholarshipStore) FindByID(id uuid.UUID) (*models.Scholarship, error) {
	var scholarship models.Scholarship
	if err := s.db.First(&scholarship, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &scholarship, nil
}

func (s *ScholarshipStore) Search(params store.ScholarshipSearch) ([]models.Scholarship, int64, error) {
	var scholarships []models.Scholarship
	var total int64

	query := s.db.Model(&models.Scholarship{})
	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		query = query.Where(
			"scholarship_name ILIKE ? OR university_name ILIKE ? OR degree ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if params.Country != "" {
		query = query.Where("university_country = ?", params.Country)
	}
	if params.Category != "" {
		query = query.Where("scholarship_category = ?", params.Category)
	}
	if params.Degree != "" {
		query = query.Where("degree = ?", params.Degree)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "posted_date DESC"
	switch params.SortBy {
	case "application_fees":
		order = "application_fees ASC"
		if params.SortDesc {
			order = "application_fees DESC"
		}
	case "posted_date":
		order = "posted_date ASC"
		if params.SortDesc {
			order = "posted_date DESC"
		}
	}

	if err := query.Order(order).Limit(params.Limit).Offset(params.Offset).Find(&scholarships).Error; err != nil {
		return nil, 0, err
	}
	return scholarships, total, nil
}

// Top returns the lowest-fee, most recently posted scholarships.
func (s *ScholarshipStore) Top(limit int) ([]models.Scholarship, error) {
	var scholarships []models.Scholarship
	err := s.db.Order("application_fees ASC, posted_date DESC").Limit(limit).Find(&scholarships).Error
	return scholarships, err
}

func (s *ScholarshipStore) Insert(scholarship *models.Scholarship) error {
	return translate(s.db.Create(scholarship).Error)
}

func (s *ScholarshipStore) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	result := s.db.Model(&models.Scholarship{}).
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

func (s *ScholarshipStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Scholarship{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ScholarshipStore) Count() (int64, error) {
	var total int64
	err := s.db.Model(&models.Scholarship{}).Count(&total).Error
	return total, err
}
