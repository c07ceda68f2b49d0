package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/config"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier accepts a single well-known ID token.
type stubVerifier struct {
	email string
}

func (v *stubVerifier) Verify(idToken string) (string, error) {
	if idToken == "valid-id-token" {
		return v.email, nil
	}
	return "", errors.New("signature mismatch")
}

func newAuthFixture(t *testing.T) (*AuthService, *memory.Stores) {
	t.Helper()
	stores := memory.New()
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
	svc := NewAuthService(stores.Users, stores.Tokens, &stubVerifier{email: "alice@example.com"}, cfg)
	return svc, stores
}

func TestExchangeSession(t *testing.T) {
	svc, stores := newAuthFixture(t)
	require.NoError(t, stores.Users.Insert(&models.User{
		ID: uuid.New(), Email: "alice@example.com", Role: models.RoleModerator, DisplayName: "Alice",
	}))

	resp, err := svc.ExchangeSession(&dto.SessionRequest{IDToken: "valid-id-token"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, models.RoleModerator, resp.User.Role)
	assert.Equal(t, "Alice", resp.User.DisplayName)

	// The access token is a backend-minted HS256 token carrying the email.
	parsed, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "alice@example.com", claims["email"])
}

func TestExchangeSessionRejectsBadToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.ExchangeSession(&dto.SessionRequest{IDToken: ""})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.ExchangeSession(&dto.SessionRequest{IDToken: "forged"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestExchangeSessionUnregisteredDefaultsToStudent(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.ExchangeSession(&dto.SessionRequest{IDToken: "valid-id-token"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, resp.User.Role)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	first, err := svc.ExchangeSession(&dto.SessionRequest{IDToken: "valid-id-token"})
	require.NoError(t, err)

	second, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Equal(t, "alice@example.com", second.User.Email)

	// The used token is revoked; replaying it fails.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	assert.ErrorIs(t, err, ErrUnauthorized)

	// The rotated token still works.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: second.RefreshToken})
	assert.NoError(t, err)
}

func TestRefreshRejectsUnknownAndExpired(t *testing.T) {
	svc, stores := newAuthFixture(t)

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "never-issued"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	// An expired stored token is revoked on sight.
	expired := models.RefreshToken{
		ID:        uuid.New(),
		UserEmail: "alice@example.com",
		TokenHash: hashToken("stale-token"),
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, stores.Tokens.Insert(&expired))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: "stale-token"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = stores.Tokens.FindActiveByHash(expired.TokenHash)
	assert.Error(t, err)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.ExchangeSession(&dto.SessionRequest{IDToken: "valid-id-token"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrUnauthorized)
}
