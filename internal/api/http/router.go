package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/registration-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Registrations *handlers.RegistrationsHandler
	Status        *handlers.StatusHandler
	Admin         *handlers.AdminHandler
}

// RegisterRoutes wires HTTP routes. The stats and search routes must precede
// the :id route so Fiber does not capture them as identifiers.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Health)

	app.Post("/registrations", cfg.Registrations.Create)
	app.Get("/registrations/stats", cfg.Registrations.Stats)
	app.Get("/registrations/search/:query", cfg.Registrations.Search)
	app.Get("/registrations", cfg.Registrations.List)
	app.Get("/registrations/:id", cfg.Registrations.Get)
	app.Patch("/registrations/:id/payment", cfg.Registrations.UpdatePayment)
	app.Delete("/registrations/:id", cfg.Registrations.Delete)

	app.Get("/registration-status", cfg.Status.Get)
	app.Post("/registration-status", cfg.Status.Update)

	adminGroup := app.Group("/admin")
	adminGroup.Post("/login", cfg.Admin.Login)
	adminGroup.Post("/change-password", cfg.Admin.ChangePassword)
	adminGroup.Post("/forgot-password", cfg.Admin.ForgotPassword)
	adminGroup.Post("/reset-password", cfg.Admin.ResetPassword)
}
