package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scholarstreams/scholarstream-backend/internal/services"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) Snapshot(c *fiber.Ctx) error {
	snapshot, err := h.analyticsService.Snapshot()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snapshot)
}
