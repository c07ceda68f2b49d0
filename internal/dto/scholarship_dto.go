package dto

import (
	"time"

	"github.com/scholarstreams/scholarstream-backend/internal/models"
)

type CreateScholarshipRequest struct {
	ScholarshipName     string    `json:"scholarship_name"`
	UniversityName      string    `json:"university_name"`
	UniversityCountry   string    `json:"university_country"`
	UniversityCity      string    `json:"university_city"`
	UniversityWorldRank int       `json:"university_world_rank"`
	SubjectCategory     string    `json:"subject_category"`
	ScholarshipCategory string    `json:"scholarship_category"`
	Degree              string    `json:"degree"`
	TuitionFees         float64   `json:"tuition_fees"`
	ApplicationFees     float64   `json:"application_fees"`
	ServiceCharge       float64   `json:"service_charge"`
	ApplicationDeadline time.Time `json:"application_deadline"`
	Description         string    `json:"description"`
}

// UpdateScholarshipRequest uses pointers so absent fields are left untouched.
type UpdateScholarshipRequest struct {
	ScholarshipName     *string    `json:"scholarship_name"`
	UniversityName      *string    `json:"university_name"`
	UniversityCountry   *string    `json:"university_country"`
	UniversityCity      *string    `json:"university_city"`
	UniversityWorldRank *int       `json:"university_world_rank"`
	SubjectCategory     *string    `json:"subject_category"`
	ScholarshipCategory *string    `json:"scholarship_category"`
	Degree              *string    `json:"degree"`
	TuitionFees         *float64   `json:"tuition_fees"`
	ApplicationFees     *float64   `json:"application_fees"`
	ServiceCharge       *float64   `json:"service_charge"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Description         *string    `json:"description"`
}

type ScholarshipListResponse struct {
	Scholarships []models.Scholarship `json:"scholarships"`
	Pagination   Pagination           `json:"pagination"`
}
