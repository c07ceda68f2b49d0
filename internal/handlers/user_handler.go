package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/middleware"
	"github.com/scholarstreams/scholarstream-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register is public and idempotent; re-registering an existing email
// reports created=false.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, created, err := h.userService.Register(&req)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.RegisterUserResponse{Created: created, User: *user})
}

// Me returns the verified caller's own profile.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	email, err := middleware.CallerEmail(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.userService.GetByEmail(email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	email, err := middleware.CallerEmail(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userService.UpdateProfile(email, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// --- Admin handlers ---

func (h *UserHandler) List(c *fiber.Ctx) error {
	page, limit := pagination(c)

	users, total, err := h.userService.List(page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.UserListResponse{
		Users: users,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	})
}

func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var req dto.SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.userService.SetRole(id, req.Role); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Role updated"})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.userService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
