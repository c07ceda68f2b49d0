package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
)

type RefreshTokenStore struct {
	mu     sync.RWMutex
	tokens map[uuid.UUID]models.RefreshToken
}

func (s *RefreshTokenStore) FindActiveByHash(hash string) (*models.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tokens {
		if t.TokenHash == hash && !t.Revoked {
			copied := t
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *RefreshTokenStore) Insert(token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	s.tokens[token.ID] = *token
	return nil
}

func (s *RefreshTokenStore) Revoke(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[id]
	if !ok {
		return store.ErrNotFound
	}
	t.Revoked = true
	s.tokens[id] = t
	return nil
}

func (s *RefreshTokenStore) RevokeByHash(hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.tokens {
		if t.TokenHash == hash {
			t.Revoked = true
			s.tokens[id] = t
		}
	}
	return nil
}
