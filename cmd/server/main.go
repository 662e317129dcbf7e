package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/nutritrack/nutritrack-backend/internal/config"
	"github.com/nutritrack/nutritrack-backend/internal/database"
	"github.com/nutritrack/nutritrack-backend/internal/foodapi"
	"github.com/nutritrack/nutritrack-backend/internal/handlers"
	"github.com/nutritrack/nutritrack-backend/internal/llm"
	"github.com/nutritrack/nutritrack-backend/internal/logging"
	"github.com/nutritrack/nutritrack-backend/internal/middleware"
	"github.com/nutritrack/nutritrack-backend/internal/routes"
	"github.com/nutritrack/nutritrack-backend/internal/services"
	"github.com/nutritrack/nutritrack-backend/internal/streak"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}
	if cfg.AnthropicAPIKey == "" {
		slog.Warn("ANTHROPIC_API_KEY not set; AI features will use fallbacks")
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// External gateways
	provider := llm.NewProvider("claude", cfg)
	usdaClient := foodapi.NewUSDAClient(cfg)
	offClient := foodapi.NewOFFClient(cfg)

	// Services
	streakService := streak.NewService(database.DB)
	userService := services.NewUserService(database.DB, streakService, provider)
	foodService := services.NewFoodService(database.DB, streakService, usdaClient, offClient, provider)
	exerciseService := services.NewExerciseService(database.DB, provider)
	weightService := services.NewWeightService(database.DB)
	waterService := services.NewWaterService(database.DB)
	customFoodService := services.NewCustomFoodService(database.DB)
	mealService := services.NewMealService(database.DB, streakService)
	digestService := services.NewDigestService(database.DB, streakService, provider)

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
		BodyLimit:    1 * 1024 * 1024,
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
	app.Use(middleware.Identity())

	// Routes
	routes.Setup(app, routes.Handlers{
		Health:     handlers.NewHealthHandler(),
		User:       handlers.NewUserHandler(userService),
		Streak:     handlers.NewStreakHandler(streakService),
		Food:       handlers.NewFoodHandler(foodService),
		Exercise:   handlers.NewExerciseHandler(exerciseService),
		Weight:     handlers.NewWeightHandler(weightService),
		Water:      handlers.NewWaterHandler(waterService),
		CustomFood: handlers.NewCustomFoodHandler(customFoodService),
		Meal:       handlers.NewMealHandler(mealService),
		Digest:     handlers.NewDigestHandler(digestService),
	})

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

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
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

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
