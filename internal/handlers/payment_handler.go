package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/middleware"
	"github.com/scholarstreams/scholarstream-backend/internal/services"
)

type PaymentHandler struct {
	applicationService *services.ApplicationService
}

func NewPaymentHandler(applicationService *services.ApplicationService) *PaymentHandler {
	return &PaymentHandler{applicationService: applicationService}
}

// CreateCheckoutSession opens a provider session for the caller's own
// application fee.
func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	email, err := middleware.CallerEmail(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return respondError(c, services.ErrInvalidID)
	}

	resp, err := h.applicationService.CreateCheckoutSession(id, email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ConfirmPayment is idempotent; replays of an already-confirmed session
// succeed without side effects.
func (h *PaymentHandler) ConfirmPayment(c *fiber.Ctx) error {
	var req dto.ConfirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.SessionID == "" {
		return badRequest(c, "session_id is required")
	}

	application, err := h.applicationService.ConfirmPayment(req.SessionID)
	if err != nil {
		slog.Error("payment confirmation failed", "session_id", req.SessionID, "error", err.Error())
		return respondError(c, err)
	}

	slog.Info("payment confirmed", "application_id", application.ID.String())
	return c.JSON(dto.ConfirmPaymentResponse{
		Success:       true,
		ApplicationID: application.ID.String(),
		PaymentStatus: application.PaymentStatus,
	})
}
