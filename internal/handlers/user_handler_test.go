package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/services"
	"github.com/scholarstreams/scholarstream-backend/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, target string, body interface{}) (int, []byte) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestRegisterEndpointIsIdempotent(t *testing.T) {
	stores := memory.New()
	handler := NewUserHandler(services.NewUserService(stores.Users))

	app := fiber.New()
	app.Post("/api/users", handler.Register)

	body := dto.RegisterUserRequest{Email: "alice@example.com", DisplayName: "Alice"}

	status, raw := postJSON(t, app, "/api/users", body)
	assert.Equal(t, fiber.StatusCreated, status)
	var first dto.RegisterUserResponse
	require.NoError(t, json.Unmarshal(raw, &first))
	assert.True(t, first.Created)

	status, raw = postJSON(t, app, "/api/users", body)
	assert.Equal(t, fiber.StatusOK, status)
	var second dto.RegisterUserResponse
	require.NoError(t, json.Unmarshal(raw, &second))
	assert.False(t, second.Created)
	assert.Equal(t, first.User.ID, second.User.ID)

	count, err := stores.Users.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRegisterEndpointRejectsInvalidBody(t *testing.T) {
	handler := NewUserHandler(services.NewUserService(memory.New().Users))

	app := fiber.New()
	app.Post("/api/users", handler.Register)

	status, raw := postJSON(t, app, "/api/users", dto.RegisterUserRequest{Email: "not-an-email"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.True(t, errResp.Error)
}
