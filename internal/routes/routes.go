package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/nigelkyalo/mamacare-backend/internal/config"
	"github.com/nigelkyalo/mamacare-backend/internal/dto"
	"github.com/nigelkyalo/mamacare-backend/internal/handlers"
	"github.com/nigelkyalo/mamacare-backend/internal/identity"
	"github.com/nigelkyalo/mamacare-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	ids identity.Service,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	healthHandler *handlers.HealthHandler,
	legalHandler *handlers.LegalHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	api.Get("/legal/privacy", legalHandler.PrivacyPolicy)
	api.Get("/legal/terms", legalHandler.TermsOfService)

	// Credential routes exist only on the local backend; a hosted
	// deployment owns signup and login elsewhere, and these paths
	// fall through to the API 404.
	if cfg.AuthProvider == "local" {
		// Auth-specific rate limit: 10 req/min per IP (stricter)
		auth := api.Group("/auth")
		auth.Use(limiter.New(limiter.Config{
			Max:               10,
			Expiration:        1 * time.Minute,
			LimiterMiddleware: limiter.SlidingWindow{},
			KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		}))
		auth.Post("/signup", authHandler.Signup)
		auth.Post("/login", authHandler.Login)
	}

	// Protected routes - apply middleware per route so public routes
	// stay untouched
	api.Get("/pregnancy-profile", middleware.Protected(ids), profileHandler.Get)
	api.Post("/pregnancy-profile", middleware.Protected(ids), profileHandler.Save)

	// Anything else under /api answers a uniform JSON 404
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "Not found",
		})
	})
}
