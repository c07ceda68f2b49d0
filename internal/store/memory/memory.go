// Package memory holds mutex-guarded in-memory implementations of the store
// interfaces, used by unit tests and local development.
package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
)

type Stores struct {
	Users        *UserStore
	Scholarships *ScholarshipStore
	Applications *ApplicationStore
	Reviews      *ReviewStore
	Tokens       *RefreshTokenStore
}

func New() *Stores {
	return &Stores{
		Users:        &UserStore{users: make(map[uuid.UUID]models.User)},
		Scholarships: &ScholarshipStore{scholarships: make(map[uuid.UUID]models.Scholarship)},
		Applications: &ApplicationStore{applications: make(map[uuid.UUID]models.Application)},
		Reviews:      &ReviewStore{reviews: make(map[uuid.UUID]models.Review)},
		Tokens:       &RefreshTokenStore{tokens: make(map[uuid.UUID]models.RefreshToken)},
	}
}

// --- Users ---

type UserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) FindByID(id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) List(limit, offset int) ([]models.User, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return page(all, limit, offset), int64(len(all)), nil
}

func (s *UserStore) Insert(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrConflict
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *UserStore) UpdateProfile(email, displayName, photoURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.users {
		if u.Email == email {
			u.DisplayName = displayName
			u.PhotoURL = photoURL
			s.users[id] = u
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *UserStore) UpdateRole(id uuid.UUID, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Role = role
	s.users[id] = u
	return nil
}

func (s *UserStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *UserStore) Count() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

// --- Scholarships ---

type ScholarshipStore struct {
	mu           sync.RWMutex
	scholarships map[uuid.UUID]models.Scholarship
}

func (s *ScholarshipStore) FindByID(id uuid.UUID) (*models.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sc, ok := s.scholarships[id]; ok {
		copied := sc
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (s *ScholarshipStore) Search(params store.ScholarshipSearch) ([]models.Scholarship, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]models.Scholarship, 0)
	for _, sc := range s.scholarships {
		if params.Query != "" {
			q := strings.ToLower(params.Query)
			if !strings.Contains(strings.ToLower(sc.ScholarshipName), q) &&
				!strings.Contains(strings.ToLower(sc.UniversityName), q) &&
				!strings.Contains(strings.ToLower(sc.Degree), q) {
				continue
			}
		}
		if params.Country != "" && sc.UniversityCountry != params.Country {
			continue
		}
		if params.Category != "" && sc.ScholarshipCategory != params.Category {
			continue
		}
		if params.Degree != "" && sc.Degree != params.Degree {
			continue
		}
		matched = append(matched, sc)
	}

	sort.Slice(matched, func(i, j int) bool {
		switch params.SortBy {
		case "application_fees":
			if params.SortDesc {
				return matched[i].ApplicationFees > matched[j].ApplicationFees
			}
			return matched[i].ApplicationFees < matched[j].ApplicationFees
		case "posted_date":
			if params.SortDesc {
				return matched[i].PostedDate.After(matched[j].PostedDate)
			}
			return matched[i].PostedDate.Before(matched[j].PostedDate)
		default:
			return matched[i].PostedDate.After(matched[j].PostedDate)
		}
	})
	return page(matched, params.Limit, params.Offset), int64(len(matched)), nil
}

func (s *ScholarshipStore) Top(limit int) ([]models.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]models.Scholarship, 0, len(s.scholarships))
	for _, sc := range s.scholarships {
		all = append(all, sc)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].ApplicationFees != all[j].ApplicationFees {
			return all[i].ApplicationFees < all[j].ApplicationFees
		}
		return all[i].PostedDate.After(all[j].PostedDate)
	})
	return page(all, limit, 0), nil
}

func (s *ScholarshipStore) Insert(scholarship *models.Scholarship) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if scholarship.ID == uuid.Nil {
		scholarship.ID = uuid.New()
	}
	s.scholarships[scholarship.ID] = *scholarship
	return nil
}

func (s *ScholarshipStore) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.scholarships[id]
	if !ok {
		return store.ErrNotFound
	}
	applyScholarshipFields(&sc, fields)
	s.scholarships[id] = sc
	return nil
}

func (s *ScholarshipStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scholarships[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.scholarships, id)
	return nil
}

func (s *ScholarshipStore) Count() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.scholarships)), nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
