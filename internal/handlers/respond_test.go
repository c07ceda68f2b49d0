package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/scholarstreams/scholarstream-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every error kind maps to its own status so clients can distinguish
// "not allowed" from "not found" from "conflict".
func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{services.ErrUnauthorized, fiber.StatusUnauthorized},
		{services.ErrForbidden, fiber.StatusForbidden},
		{services.ErrNotFound, fiber.StatusNotFound},
		{services.ErrDuplicateApplication, fiber.StatusConflict},
		{services.ErrInvalidTransition, fiber.StatusConflict},
		{services.ErrInvalidRole, fiber.StatusBadRequest},
		{services.ErrInvalidID, fiber.StatusBadRequest},
		{services.ErrInvalidInput, fiber.StatusBadRequest},
		{services.ErrPaymentIncomplete, fiber.StatusPaymentRequired},
		{services.ErrUpstream, fiber.StatusBadGateway},
	}

	for _, tt := range tests {
		app := fiber.New()
		err := tt.err
		app.Get("/fail", func(c *fiber.Ctx) error {
			return respondError(c, err)
		})
		resp, reqErr := app.Test(httptest.NewRequest("GET", "/fail", nil))
		require.NoError(t, reqErr)
		assert.Equal(t, tt.status, resp.StatusCode, "error %v", tt.err)
	}
}

func TestPaginationDefaultsAndCaps(t *testing.T) {
	app := fiber.New()
	app.Get("/page", func(c *fiber.Ctx) error {
		page, limit := pagination(c)
		return c.JSON(fiber.Map{"page": page, "limit": limit})
	})

	tests := []struct {
		query string
		page  int
		limit int
	}{
		{"", 1, 20},
		{"?page=3&limit=50", 3, 50},
		{"?page=0&limit=0", 1, 20},
		{"?page=-1&limit=1000", 1, 20},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", "/page"+tt.query, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "query %q", tt.query)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), totalPages(0, 20))
	assert.Equal(t, int64(1), totalPages(1, 20))
	assert.Equal(t, int64(1), totalPages(20, 20))
	assert.Equal(t, int64(2), totalPages(21, 20))
}
