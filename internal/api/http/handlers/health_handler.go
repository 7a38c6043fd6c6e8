package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/registration-service/internal/service"
)

// HealthHandler reports liveness plus store connectivity. It mirrors the
// admin dashboard's expectation: a healthy response carries the current
// registration stats.
type HealthHandler struct {
	serviceName string
	version     string
	service     *service.RegistrationService
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, registrationService *service.RegistrationService) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, service: registrationService}
}

// Health handles GET /health. Stats double as the connectivity probe: if the
// store cannot answer, the database is reported as disconnected.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success":  false,
			"message":  "Server health check failed",
			"database": "disconnected",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Server is healthy",
		"service":   h.serviceName,
		"version":   h.version,
		"database":  "connected",
		"stats":     stats,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
