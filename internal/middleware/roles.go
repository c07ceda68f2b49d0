package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/scholarstreams/scholarstream-backend/internal/config"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
)

// RequireRole gates a route on the caller's stored role, resolved per
// request so role changes take effect immediately. Checks, in order:
// 1. Config-based admin token header
// 2. Config-based admin email list
// 3. DB-based user role (absent record resolves to student)
func RequireRole(users store.UserStore, cfg *config.Config, allowed ...string) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" {
			if c.Get("X-Admin-Token") == cfg.AdminToken {
				return c.Next()
			}
		}

		email, err := CallerEmail(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		role := models.RoleStudent
		if contains(adminEmails, email) {
			role = models.RoleAdmin
		} else if user, err := users.FindByEmail(email); err == nil && user.Role != "" {
			role = user.Role
		}

		if contains(allowed, role) {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Insufficient role",
		})
	}
}

// RequireAdmin allows admins only.
func RequireAdmin(users store.UserStore, cfg *config.Config) fiber.Handler {
	return RequireRole(users, cfg, models.RoleAdmin)
}

// RequireModerator allows moderators and admins.
func RequireModerator(users store.UserStore, cfg *config.Config) fiber.Handler {
	return RequireRole(users, cfg, models.RoleModerator, models.RoleAdmin)
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
