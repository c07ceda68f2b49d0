package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
)

// ScholarshipService is the admin-managed, publicly readable catalog.
type ScholarshipService struct {
	scholarships store.ScholarshipStore
}

func NewScholarshipService(scholarships store.ScholarshipStore) *ScholarshipService {
	return &ScholarshipService{scholarships: scholarships}
}

func (s *ScholarshipService) Create(postedByEmail string, req *dto.CreateScholarshipRequest) (*models.Scholarship, error) {
	if req.ScholarshipName == "" || req.UniversityName == "" {
		return nil, invalidInput("scholarship name and university name are required")
	}
	if req.ApplicationFees < 0 || req.ServiceCharge < 0 {
		return nil, invalidInput("fees cannot be negative")
	}

	scholarship := models.Scholarship{
		ID:                  uuid.New(),
		ScholarshipName:     req.ScholarshipName,
		UniversityName:      req.UniversityName,
		UniversityCountry:   req.UniversityCountry,
		UniversityCity:      req.UniversityCity,
		UniversityWorldRank: req.UniversityWorldRank,
		SubjectCategory:     req.SubjectCategory,
		ScholarshipCategory: req.ScholarshipCategory,
		Degree:              req.Degree,
		TuitionFees:         req.TuitionFees,
		ApplicationFees:     req.ApplicationFees,
		ServiceCharge:       req.ServiceCharge,
		ApplicationDeadline: req.ApplicationDeadline,
		PostedDate:          time.Now(),
		Description:         req.Description,
		PostedByEmail:       postedByEmail,
	}
	if err := s.scholarships.Insert(&scholarship); err != nil {
		return nil, upstream(err)
	}
	return &scholarship, nil
}

func (s *ScholarshipService) Get(id uuid.UUID) (*models.Scholarship, error) {
	scholarship, err := s.scholarships.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, upstream(err)
	}
	return scholarship, nil
}

func (s *ScholarshipService) Search(params store.ScholarshipSearch) ([]models.Scholarship, int64, error) {
	scholarships, total, err := s.scholarships.Search(params)
	if err != nil {
		return nil, 0, upstream(err)
	}
	return scholarships, total, nil
}

func (s *ScholarshipService) Top(limit int) ([]models.Scholarship, error) {
	scholarships, err := s.scholarships.Top(limit)
	if err != nil {
		return nil, upstream(err)
	}
	return scholarships, nil
}

func (s *ScholarshipService) Update(id uuid.UUID, req *dto.UpdateScholarshipRequest) (*models.Scholarship, error) {
	fields := map[string]interface{}{}
	if req.ScholarshipName != nil {
		fields["scholarship_name"] = *req.ScholarshipName
	}
	if req.UniversityName != nil {
		fields["university_name"] = *req.UniversityName
	}
	if req.UniversityCountry != nil {
		fields["university_country"] = *req.UniversityCountry
	}
	if req.UniversityCity != nil {
		fields["university_city"] = *req.UniversityCity
	}
	if req.UniversityWorldRank != nil {
		fields["university_world_rank"] = *req.UniversityWorldRank
	}
	if req.SubjectCategory != nil {
		fields["subject_category"] = *req.SubjectCategory
	}
	if req.ScholarshipCategory != nil {
		fields["scholarship_category"] = *req.ScholarshipCategory
	}
	if req.Degree != nil {
		fields["degree"] = *req.Degree
	}
	if req.TuitionFees != nil {
		fields["tuition_fees"] = *req.TuitionFees
	}
	if req.ApplicationFees != nil {
		fields["application_fees"] = *req.ApplicationFees
	}
	if req.ServiceCharge != nil {
		fields["service_charge"] = *req.ServiceCharge
	}
	if req.ApplicationDeadline != nil {
		fields["application_deadline"] = *req.ApplicationDeadline
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if len(fields) > 0 {
		if err := s.scholarships.UpdateFields(id, fields); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrNotFound
			}
			return nil, upstream(err)
		}
	}
	return s.Get(id)
}

func (s *ScholarshipService) Delete(id uuid.UUID) error {
	if err := s.scholarships.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return upstream(err)
	}
	return nil
}
