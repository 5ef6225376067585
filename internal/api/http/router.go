package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/api/http/handlers"
	"github.com/spec-kit/complaint-portal/internal/auth"
	"github.com/spec-kit/complaint-portal/internal/storage"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Profile        *handlers.ProfileHandler
	Tickets        *handlers.TicketsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.Middleware
	UploadDir      string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/register", cfg.Auth.Register)
	app.Post("/auth/login", cfg.Auth.Login)

	if cfg.UploadDir != "" {
		app.Static(storage.URLPrefix, cfg.UploadDir)
	}

	authed := app.Group("", cfg.AuthMiddleware.Handle)
	authed.Get("/profile", cfg.Profile.Get)
	authed.Patch("/profile", cfg.Profile.Update)

	student := authed.Group("/tickets", auth.RequireStudent())
	student.Post("", cfg.Tickets.Create)
	student.Get("", cfg.Tickets.List)
	student.Get("/:id", cfg.Tickets.Get)
	student.Post("/:id/comments", cfg.Tickets.AddComment)

	admin := authed.Group("/admin", auth.RequireAdmin())
	admin.Get("/tickets", cfg.Admin.ListTickets)
	admin.Get("/tickets/export", cfg.Admin.ExportTickets)
	admin.Get("/tickets/:id", cfg.Admin.GetTicket)
	admin.Patch("/tickets/:id/status", cfg.Admin.UpdateStatus)
	admin.Post("/tickets/:id/comments", cfg.Admin.AddComment)
	admin.Get("/stats", cfg.Admin.Stats)
}
