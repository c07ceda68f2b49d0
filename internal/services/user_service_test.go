package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIsIdempotent(t *testing.T) {
	stores := memory.New()
	svc := NewUserService(stores.Users)

	first, created, err := svc.Register(&dto.RegisterUserRequest{
		Email:       "alice@example.com",
		DisplayName: "Alice",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.RoleStudent, first.Role)

	second, created, err := svc.Register(&dto.RegisterUserRequest{
		Email:       "alice@example.com",
		DisplayName: "Alice Again",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	// Re-registration must not mutate the stored record.
	assert.Equal(t, "Alice", second.DisplayName)

	count, err := stores.Users.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	svc := NewUserService(memory.New().Users)

	for _, email := range []string{"", "   ", "not-an-email"} {
		_, _, err := svc.Register(&dto.RegisterUserRequest{Email: email})
		assert.ErrorIs(t, err, ErrInvalidInput, "email %q", email)
	}
}

func TestRoleOfUnregisteredIsStudent(t *testing.T) {
	svc := NewUserService(memory.New().Users)

	role, err := svc.RoleOf("nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, role)
}

func TestRoleOfReflectsStoredRole(t *testing.T) {
	stores := memory.New()
	svc := NewUserService(stores.Users)

	user := models.User{ID: uuid.New(), Email: "mod@example.com", Role: models.RoleModerator}
	require.NoError(t, stores.Users.Insert(&user))

	role, err := svc.RoleOf("mod@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleModerator, role)
}

func TestSetRole(t *testing.T) {
	stores := memory.New()
	svc := NewUserService(stores.Users)

	user := models.User{ID: uuid.New(), Email: "bob@example.com", Role: models.RoleStudent}
	require.NoError(t, stores.Users.Insert(&user))

	require.NoError(t, svc.SetRole(user.ID, models.RoleAdmin))
	role, err := svc.RoleOf("bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	assert.ErrorIs(t, svc.SetRole(user.ID, "superuser"), ErrInvalidRole)
	assert.ErrorIs(t, svc.SetRole(uuid.New(), models.RoleModerator), ErrNotFound)
}

func TestUpdateProfileWhitelist(t *testing.T) {
	stores := memory.New()
	svc := NewUserService(stores.Users)

	user := models.User{ID: uuid.New(), Email: "carol@example.com", Role: models.RoleModerator}
	require.NoError(t, stores.Users.Insert(&user))

	updated, err := svc.UpdateProfile("carol@example.com", &dto.UpdateProfileRequest{
		DisplayName: "Carol",
		PhotoURL:    "https://cdn.example.com/carol.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Carol", updated.DisplayName)
	assert.Equal(t, "https://cdn.example.com/carol.png", updated.PhotoURL)
	// Role is not self-service.
	assert.Equal(t, models.RoleModerator, updated.Role)

	_, err = svc.UpdateProfile("ghost@example.com", &dto.UpdateProfileRequest{DisplayName: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	stores := memory.New()
	svc := NewUserService(stores.Users)

	user := models.User{ID: uuid.New(), Email: "dave@example.com", Role: models.RoleStudent}
	require.NoError(t, stores.Users.Insert(&user))

	require.NoError(t, svc.Delete(user.ID))
	assert.ErrorIs(t, svc.Delete(user.ID), ErrNotFound)
}
