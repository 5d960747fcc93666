package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/showcaseapp/showcase-backend/internal/config"
	"github.com/showcaseapp/showcase-backend/internal/handlers"
	"github.com/showcaseapp/showcase-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	projectHandler *handlers.ProjectHandler,
	feedbackHandler *handlers.FeedbackHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/telegram", authHandler.Telegram)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	api.Get("/projects", middleware.JWTProtected(cfg), projectHandler.List)
	api.Post("/projects", middleware.JWTProtected(cfg), projectHandler.Create)
	api.Get("/projects/voting", middleware.JWTProtected(cfg), projectHandler.VotingStatus)
	api.Post("/projects/:id/vote", middleware.JWTProtected(cfg), projectHandler.Vote)

	api.Post("/feedback", middleware.JWTProtected(cfg), feedbackHandler.Create)

	// Admin (JWT + allow-list)
	api.Get("/feedbacks", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg), feedbackHandler.List)
}
