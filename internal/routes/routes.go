package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/kickstartvisuals/studio-backend/internal/config"
	"github.com/kickstartvisuals/studio-backend/internal/handlers"
	"github.com/kickstartvisuals/studio-backend/internal/middleware"
	"github.com/kickstartvisuals/studio-backend/internal/services"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	tokens *services.TokenService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	projectHandler *handlers.ProjectHandler,
	messageHandler *handlers.MessageHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Unauthenticated probes
	app.Get("/", healthHandler.Root)
	app.Get("/test", healthHandler.DBCheck)

	// General rate limit: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	authenticated := middleware.Authenticated(db, tokens)

	// Auth surface gets a stricter limit: 10 req/min per IP
	auth := app.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authenticated, authHandler.Logout)

	// Profile
	app.Get("/me", authenticated, userHandler.Me)
	app.Put("/me", authenticated, userHandler.UpdateMe)

	// Projects and their threads
	app.Post("/projects", authenticated, projectHandler.Create)
	app.Get("/projects", authenticated, projectHandler.ListMine)
	app.Post("/projects/:id/files", authenticated, projectHandler.UploadFile)
	app.Post("/projects/:id/messages", authenticated, messageHandler.Send)
	app.Get("/projects/:id/messages", authenticated, messageHandler.List)

	// Admin triage
	admin := app.Group("/admin", authenticated, middleware.AdminRequired(cfg))
	admin.Get("/projects", adminHandler.ListProjects)
	admin.Put("/projects/:id/status", adminHandler.UpdateStatus)
}
