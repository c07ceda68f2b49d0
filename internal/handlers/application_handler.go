package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/middleware"
	"github.com/scholarstreams/scholarstream-backend/internal/services"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	email, err := middleware.CallerEmail(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	application, err := h.applicationService.Create(email, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(application)
}

func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	email, err := middleware.CallerEmail(c)
	if err != nil {
		return unauthorized(c)
	}

	applications, err := h.applicationService.ListByOwner(email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(applications)
}

func (h *ApplicationHandler) Update(c *fiber.Ctx) error {
	email, err := middleware.CallerEmail(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	application, err := h.applicationService.Update(id, email, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(application)
}

func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	email, err := middleware.CallerEmail(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.applicationService.Delete(id, email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Application deleted"})
}

// --- Moderator handlers ---

// ListForModerator only ever surfaces paid applications.
func (h *ApplicationHandler) ListForModerator(c *fiber.Ctx) error {
	page, limit := pagination(c)

	applications, total, err := h.applicationService.ListForModerator(page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ApplicationListResponse{
		Applications: applications,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	})
}

func (h *ApplicationHandler) SetStatus(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	application, err := h.applicationService.SetStatus(id, req.Status)
	if err != nil {
		return respondError(c, err)
	}

	slog.Info("application status set", "application_id", id.String(), "status", req.Status)
	return c.JSON(application)
}

func (h *ApplicationHandler) SetFeedback(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.SetFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	application, err := h.applicationService.SetFeedback(id, req.Feedback)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(application)
}

// --- Admin handlers ---

// AdminDelete bypasses ownership and state checks.
func (h *ApplicationHandler) AdminDelete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.applicationService.AdminDelete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Application deleted"})
}
