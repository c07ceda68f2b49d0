package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
)

type ApplicationStore struct {
	mu           sync.RWMutex
	applications map[uuid.UUID]models.Application
}

func (s *ApplicationStore) FindByID(id uuid.UUID) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.applications[id]; ok {
		copied := a
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (s *ApplicationStore) FindByScholarshipAndOwner(scholarshipID uuid.UUID, email string) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.applications {
		if a.ScholarshipID == scholarshipID && a.UserEmail == email {
			copied := a
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *ApplicationStore) ListByOwner(email string) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Application, 0)
	for _, a := range s.applications {
		if a.UserEmail == email {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *ApplicationStore) ListPaid(limit, offset int) ([]models.Application, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paid := make([]models.Application, 0)
	for _, a := range s.applications {
		if a.PaymentStatus == models.PaymentPaid {
			paid = append(paid, a)
		}
	}
	sort.Slice(paid, func(i, j int) bool { return paid[i].CreatedAt.After(paid[j].CreatedAt) })
	return page(paid, limit, offset), int64(len(paid)), nil
}

// Insert enforces the (scholarship_id, user_email) unique index the Postgres
// store gets from its schema.
func (s *ApplicationStore) Insert(application *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.applications {
		if a.ScholarshipID == application.ScholarshipID && a.UserEmail == application.UserEmail {
			return store.ErrConflict
		}
	}
	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}
	s.applications[application.ID] = *application
	return nil
}

func (s *ApplicationStore) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applications[id]
	if !ok {
		return store.ErrNotFound
	}
	applyApplicationFields(&a, fields)
	s.applications[id] = a
	return nil
}

func (s *ApplicationStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.applications[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.applications, id)
	return nil
}

func (s *ApplicationStore) Count() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.applications)), nil
}

func (s *ApplicationStore) CountPaid() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, a := range s.applications {
		if a.PaymentStatus == models.PaymentPaid {
			total++
		}
	}
	return total, nil
}

func (s *ApplicationStore) SumPaidTotal() (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	for _, a := range s.applications {
		if a.PaymentStatus == models.PaymentPaid {
			sum += a.TotalAmount
		}
	}
	return sum, nil
}
