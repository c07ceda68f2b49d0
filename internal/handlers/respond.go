package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/services"
)

// respondError maps service error kinds onto distinct HTTP statuses so
// callers can tell "not allowed" from "not found" from "conflict".
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrUnauthorized):
		status, message = fiber.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, services.ErrForbidden):
		status, message = fiber.StatusForbidden, "Forbidden"
	case errors.Is(err, services.ErrNotFound):
		status, message = fiber.StatusNotFound, "Not found"
	case errors.Is(err, services.ErrDuplicateApplication):
		status, message = fiber.StatusConflict, err.Error()
	case errors.Is(err, services.ErrInvalidTransition):
		status, message = fiber.StatusConflict, err.Error()
	case errors.Is(err, services.ErrInvalidRole):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrInvalidID):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrInvalidInput):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrPaymentIncomplete):
		status, message = fiber.StatusPaymentRequired, err.Error()
	case errors.Is(err, services.ErrUpstream):
		status, message = fiber.StatusBadGateway, "Upstream service failure"
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

// idParam parses the :id path parameter, rejecting malformed identifiers
// before they reach storage.
func idParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, services.ErrInvalidID
	}
	return id, nil
}

func pagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func totalPages(total int64, limit int) int64 {
	return (total + int64(limit) - 1) / int64(limit)
}
