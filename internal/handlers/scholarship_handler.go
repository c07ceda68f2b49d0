package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/middleware"
	"github.com/scholarstreams/scholarstream-backend/internal/services"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
)

type ScholarshipHandler struct {
	scholarshipService *services.ScholarshipService
	reviewService      *services.ReviewService
}

func NewScholarshipHandler(scholarshipService *services.ScholarshipService, reviewService *services.ReviewService) *ScholarshipHandler {
	return &ScholarshipHandler{scholarshipService: scholarshipService, reviewService: reviewService}
}

// Search is the public catalog listing with search, filter, sort and
// pagination.
func (h *ScholarshipHandler) Search(c *fiber.Ctx) error {
	page, limit := pagination(c)

	params := store.ScholarshipSearch{
		Query:    c.Query("search"),
		Country:  c.Query("country"),
		Category: c.Query("category"),
		Degree:   c.Query("degree"),
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("order") == "desc",
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	scholarships, total, err := h.scholarshipService.Search(params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ScholarshipListResponse{
		Scholarships: scholarships,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	})
}

func (h *ScholarshipHandler) Top(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 6)
	if limit < 1 || limit > 20 {
		limit = 6
	}

	scholarships, err := h.scholarshipService.Top(limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(scholarships)
}

func (h *ScholarshipHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	scholarship, err := h.scholarshipService.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(scholarship)
}

// Reviews lists a scholarship's reviews; public alongside the detail page.
func (h *ScholarshipHandler) Reviews(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	reviews, err := h.reviewService.ListByScholarship(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

// --- Admin handlers ---

func (h *ScholarshipHandler) Create(c *fiber.Ctx) error {
	email, err := middleware.CallerEmail(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	scholarship, err := h.scholarshipService.Create(email, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(scholarship)
}

func (h *ScholarshipHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	scholarship, err := h.scholarshipService.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(scholarship)
}

func (h *ScholarshipHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.scholarshipService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Scholarship deleted"})
}
