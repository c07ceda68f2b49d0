package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/config"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/identity"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
)

// AuthService exchanges externally verified ID tokens for backend-minted
// access/refresh pairs. The verified email is the only identity claim ever
// carried forward; nothing from the request body is trusted.
type AuthService struct {
	users    store.UserStore
	tokens   store.RefreshTokenStore
	verifier identity.Verifier
	cfg      *config.Config
}

func NewAuthService(users store.UserStore, tokens store.RefreshTokenStore, verifier identity.Verifier, cfg *config.Config) *AuthService {
	return &AuthService{users: users, tokens: tokens, verifier: verifier, cfg: cfg}
}

func (s *AuthService) ExchangeSession(req *dto.SessionRequest) (*dto.AuthResponse, error) {
	if req.IDToken == "" {
		return nil, ErrUnauthorized
	}
	email, err := s.verifier.Verify(req.IDToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return s.generateTokenPair(email)
}

// Refresh rotates the refresh token: the presented token is revoked whether
// or not a new pair is issued.
func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	stored, err := s.tokens.FindActiveByHash(tokenHash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, upstream(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		if err := s.tokens.Revoke(stored.ID); err != nil {
			return nil, upstream(err)
		}
		return nil, ErrUnauthorized
	}

	if err := s.tokens.Revoke(stored.ID); err != nil {
		return nil, upstream(err)
	}
	return s.generateTokenPair(stored.UserEmail)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	if err := s.tokens.RevokeByHash(hashToken(req.RefreshToken)); err != nil {
		return upstream(err)
	}
	return nil
}

func (s *AuthService) generateTokenPair(email string) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(email)
	if err != nil {
		return nil, err
	}

	// Unregistered identities get a token too; they resolve to the student
	// role until they register a profile.
	response := &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.UserResponse{Email: email, Role: models.RoleStudent},
	}
	if user, err := s.users.FindByEmail(email); err == nil {
		response.User.Role = user.Role
		response.User.DisplayName = user.DisplayName
		response.User.PhotoURL = user.PhotoURL
	}
	return response, nil
}

func (s *AuthService) generateAccessToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   email,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(email string) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserEmail: email,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.tokens.Insert(&record); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
