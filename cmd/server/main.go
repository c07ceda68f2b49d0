package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/scholarstreams/scholarstream-backend/internal/config"
	"github.com/scholarstreams/scholarstream-backend/internal/database"
	"github.com/scholarstreams/scholarstream-backend/internal/handlers"
	"github.com/scholarstreams/scholarstream-backend/internal/identity"
	"github.com/scholarstreams/scholarstream-backend/internal/logging"
	"github.com/scholarstreams/scholarstream-backend/internal/middleware"
	"github.com/scholarstreams/scholarstream-backend/internal/payment"
	"github.com/scholarstreams/scholarstream-backend/internal/routes"
	"github.com/scholarstreams/scholarstream-backend/internal/services"
	"github.com/scholarstreams/scholarstream-backend/internal/store/postgres"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cleanupDone)

	// Stores
	stores := postgres.New(db)

	// Collaborators
	verifier := identity.NewJWKSVerifier(cfg.IdentityJWKSURL, cfg.IdentityIssuer)
	provider := payment.NewCheckoutClient(cfg.PaymentAPIKey, cfg.PaymentAPIURL, cfg.PaymentTimeout)

	// Services
	authService := services.NewAuthService(stores.Users, stores.Tokens, verifier, cfg)
	userService := services.NewUserService(stores.Users)
	scholarshipService := services.NewScholarshipService(stores.Scholarships)
	applicationService := services.NewApplicationService(
		stores.Applications, stores.Scholarships, provider,
		cfg.PaymentSuccessURL, cfg.PaymentCancelURL,
	)
	reviewService := services.NewReviewService(stores.Reviews, stores.Users, services.NewContentFilter())
	analyticsService := services.NewAnalyticsService(stores.Users, stores.Scholarships, stores.Applications, stores.Reviews)

	// Handlers
	h := routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		Users:        handlers.NewUserHandler(userService),
		Scholarships: handlers.NewScholarshipHandler(scholarshipService, reviewService),
		Applications: handlers.NewApplicationHandler(applicationService),
		Payments:     handlers.NewPaymentHandler(applicationService),
		Reviews:      handlers.NewReviewHandler(reviewService),
		Analytics:    handlers.NewAnalyticsHandler(analyticsService),
		Health:       handlers.NewHealthHandler(db),
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, stores.Users, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
