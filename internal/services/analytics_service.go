package services

import (
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
)

// AnalyticsService aggregates the admin dashboard snapshot.
type AnalyticsService struct {
	users        store.UserStore
	scholarships store.ScholarshipStore
	applications store.ApplicationStore
	reviews      store.ReviewStore
}

func NewAnalyticsService(
	users store.UserStore,
	scholarships store.ScholarshipStore,
	applications store.ApplicationStore,
	reviews store.ReviewStore,
) *AnalyticsService {
	return &AnalyticsService{
		users:        users,
		scholarships: scholarships,
		applications: applications,
		reviews:      reviews,
	}
}

func (s *AnalyticsService) Snapshot() (*dto.AnalyticsResponse, error) {
	userCount, err := s.users.Count()
	if err != nil {
		return nil, upstream(err)
	}
	scholarshipCount, err := s.scholarships.Count()
	if err != nil {
		return nil, upstream(err)
	}
	applicationCount, err := s.applications.Count()
	if err != nil {
		return nil, upstream(err)
	}
	paidCount, err := s.applications.CountPaid()
	if err != nil {
		return nil, upstream(err)
	}
	reviewCount, err := s.reviews.Count()
	if err != nil {
		return nil, upstream(err)
	}
	revenue, err := s.applications.SumPaidTotal()
	if err != nil {
		return nil, upstream(err)
	}
	avgRating, err := s.reviews.AverageRating()
	if err != nil {
		return nil, upstream(err)
	}

	return &dto.AnalyticsResponse{
		Users:            userCount,
		Scholarships:     scholarshipCount,
		Applications:     applicationCount,
		PaidApplications: paidCount,
		Reviews:          reviewCount,
		FeeRevenue:       revenue,
		AverageRating:    avgRating,
	}, nil
}
