package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
)

type ReviewStore struct {
	mu      sync.RWMutex
	reviews map[uuid.UUID]models.Review
}

func (s *ReviewStore) FindByID(id uuid.UUID) (*models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.reviews[id]; ok {
		copied := r
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (s *ReviewStore) ListByScholarship(scholarshipID uuid.UUID) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Review, 0)
	for _, r := range s.reviews {
		if r.ScholarshipID == scholarshipID {
			out = append(out, r)
		}
	}
	sortByReviewDate(out)
	return out, nil
}

func (s *ReviewStore) ListByOwner(email string) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Review, 0)
	for _, r := range s.reviews {
		if r.UserEmail == email {
			out = append(out, r)
		}
	}
	sortByReviewDate(out)
	return out, nil
}

func (s *ReviewStore) ListAll(limit, offset int) ([]models.Review, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]models.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		all = append(all, r)
	}
	sortByReviewDate(all)
	return page(all, limit, offset), int64(len(all)), nil
}

func (s *ReviewStore) Insert(review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	s.reviews[review.ID] = *review
	return nil
}

func (s *ReviewStore) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	if !ok {
		return store.ErrNotFound
	}
	applyReviewFields(&r, fields)
	s.reviews[id] = r
	return nil
}

func (s *ReviewStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reviews[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.reviews, id)
	return nil
}

func (s *ReviewStore) Count() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.reviews)), nil
}

func (s *ReviewStore) AverageRating() (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.reviews) == 0 {
		return 0, nil
	}
	var sum float64
	for _, r := range s.reviews {
		sum += r.RatingPoint
	}
	return sum / float64(len(s.reviews)), nil
}

func sortByReviewDate(reviews []models.Review) {
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ReviewDate.After(reviews[j].ReviewDate) })
}
