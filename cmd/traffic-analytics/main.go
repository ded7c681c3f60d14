package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/akarpov91/traffic-analytics/internal/api/http"
	"github.com/akarpov91/traffic-analytics/internal/config"
	"github.com/akarpov91/traffic-analytics/internal/dashboard"
	"github.com/akarpov91/traffic-analytics/internal/pageviews"
	"github.com/akarpov91/traffic-analytics/internal/scheduler"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound pageviews calls. Its timeout is the
	// only bound on a fetch; there are no retries.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	pvClient := pageviews.NewClient(httpClient, cfg.PageviewsBaseURL, cfg.UserAgent)

	// In-memory session store holding per-session dashboard inputs.
	sessions := dashboard.NewStore(cfg.SessionMaxAge)

	// Janitor that periodically evicts idle sessions.
	janitor := scheduler.New(sessions, cfg.SessionSweepInterval)
	if err := janitor.Start(); err != nil {
		log.Fatalf("failed to start session janitor: %v", err)
	}
	defer janitor.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "traffic-analytics",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "traffic-analytics",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, httpapi.Deps{
		Pageviews:         pvClient,
		Sessions:          sessions,
		DefaultArticle:    cfg.DefaultArticle,
		DefaultWindowDays: cfg.DefaultWindowDays,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
