package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/scholarstreams/scholarstream-backend/internal/config"
	"github.com/scholarstreams/scholarstream-backend/internal/handlers"
	"github.com/scholarstreams/scholarstream-backend/internal/middleware"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Users        *handlers.UserHandler
	Scholarships *handlers.ScholarshipHandler
	Applications *handlers.ApplicationHandler
	Payments     *handlers.PaymentHandler
	Reviews      *handlers.ReviewHandler
	Analytics    *handlers.AnalyticsHandler
	Health       *handlers.HealthHandler
}

func Setup(app *fiber.App, cfg *config.Config, users store.UserStore, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth — public, with a stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/session", h.Auth.ExchangeSession)
	auth.Post("/refresh", h.Auth.Refresh)
	api.Post("/auth/logout", middleware.Protected(cfg), h.Auth.Logout)

	// Users — public idempotent registration, owner-scoped profile
	api.Post("/users", h.Users.Register)
	api.Get("/users/me", middleware.Protected(cfg), h.Users.Me)
	api.Patch("/users/me", middleware.Protected(cfg), h.Users.UpdateMe)

	// Scholarships — public catalog
	api.Get("/scholarships", h.Scholarships.Search)
	api.Get("/scholarships/top", h.Scholarships.Top)
	api.Get("/scholarships/:id", h.Scholarships.Get)
	api.Get("/scholarships/:id/reviews", h.Scholarships.Reviews)

	// Applications — owner-scoped (JWT required)
	applications := api.Group("/applications", middleware.Protected(cfg))
	applications.Post("/", h.Applications.Create)
	applications.Get("/my", h.Applications.ListMine)
	applications.Patch("/:id", h.Applications.Update)
	applications.Delete("/:id", h.Applications.Delete)

	// Payments
	payments := api.Group("/payments", middleware.Protected(cfg))
	payments.Post("/checkout-session", h.Payments.CreateCheckoutSession)
	payments.Post("/confirm", h.Payments.ConfirmPayment)

	// Reviews — public reads, owner-scoped writes
	api.Get("/reviews", h.Reviews.ListAll)
	reviews := api.Group("/reviews", middleware.Protected(cfg))
	reviews.Post("/", h.Reviews.Create)
	reviews.Get("/my", h.Reviews.ListMine)
	reviews.Patch("/:id", h.Reviews.Update)
	reviews.Delete("/:id", h.Reviews.Delete)

	// Moderation panel (moderator or admin)
	moderation := api.Group("/moderation",
		middleware.Protected(cfg),
		middleware.RequireModerator(users, cfg),
	)
	moderation.Get("/applications", h.Applications.ListForModerator)
	moderation.Patch("/applications/:id/status", h.Applications.SetStatus)
	moderation.Patch("/applications/:id/feedback", h.Applications.SetFeedback)

	// Admin panel
	admin := api.Group("/admin",
		middleware.Protected(cfg),
		middleware.RequireAdmin(users, cfg),
	)
	admin.Get("/users", h.Users.List)
	admin.Patch("/users/:id/role", h.Users.SetRole)
	admin.Delete("/users/:id", h.Users.Delete)
	admin.Post("/scholarships", h.Scholarships.Create)
	admin.Patch("/scholarships/:id", h.Scholarships.Update)
	admin.Delete("/scholarships/:id", h.Scholarships.Delete)
	admin.Delete("/applications/:id", h.Applications.AdminDelete)
	admin.Get("/analytics", h.Analytics.Snapshot)
}
