package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/middleware"
	"github.com/scholarstreams/scholarstream-backend/internal/services"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	email, err := middleware.CallerEmail(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	review, err := h.reviewService.Create(email, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

func (h *ReviewHandler) ListMine(c *fiber.Ctx) error {
	email, err := middleware.CallerEmail(c)
	if err != nil {
		return unauthorized(c)
	}

	reviews, err := h.reviewService.ListByOwner(email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

// ListAll backs the public testimonial marquee.
func (h *ReviewHandler) ListAll(c *fiber.Ctx) error {
	page, limit := pagination(c)

	reviews, total, err := h.reviewService.ListAll(page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReviewListResponse{
		Reviews: reviews,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	})
}

func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	email, err := middleware.CallerEmail(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	review, err := h.reviewService.Update(id, email, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review)
}

// Delete allows the owner, or a moderator/admin override.
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	email, err := middleware.CallerEmail(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.reviewService.Delete(id, email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Review deleted"})
}
