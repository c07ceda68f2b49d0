package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
)

// UserService is the user directory and the role resolver.
type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// Register is idempotent: an existing email returns the stored record with
// created=false and no mutation.
func (s *UserService) Register(req *dto.RegisterUserRequest) (*models.User, bool, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, false, invalidInput("a valid email is required")
	}

	existing, err := s.users.FindByEmail(email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, upstream(err)
	}

	user := models.User{
		ID:          uuid.New(),
		Email:       email,
		Role:        models.RoleStudent,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	}
	if err := s.users.Insert(&user); err != nil {
		// Lost a registration race; the record exists now, which is all the
		// caller asked for.
		if errors.Is(err, store.ErrConflict) {
			stored, ferr := s.users.FindByEmail(email)
			if ferr != nil {
				return nil, false, upstream(ferr)
			}
			return stored, false, nil
		}
		return nil, false, upstream(err)
	}
	return &user, true, nil
}

// RoleOf resolves a verified email to a role. An unregistered identity is a
// student, never an error.
func (s *UserService) RoleOf(email string) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.RoleStudent, nil
		}
		return "", upstream(err)
	}
	if user.Role == "" {
		return models.RoleStudent, nil
	}
	return user.Role, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, upstream(err)
	}
	return user, nil
}

// UpdateProfile patches the self-service whitelist only.
func (s *UserService) UpdateProfile(email string, req *dto.UpdateProfileRequest) (*models.User, error) {
	if err := s.users.UpdateProfile(email, req.DisplayName, req.PhotoURL); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, upstream(err)
	}
	return s.GetByEmail(email)
}

func (s *UserService) SetRole(id uuid.UUID, role string) error {
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}
	if err := s.users.UpdateRole(id, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return upstream(err)
	}
	return nil
}

func (s *UserService) Delete(id uuid.UUID) error {
	if err := s.users.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return upstream(err)
	}
	return nil
}

func (s *UserService) List(page, limit int) ([]models.User, int64, error) {
	users, total, err := s.users.List(limit, (page-1)*limit)
	if err != nil {
		return nil, 0, upstream(err)
	}
	return users, total, nil
}
