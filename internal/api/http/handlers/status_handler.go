package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/registration-service/internal/api/dto"
	"github.com/spec-kit/registration-service/internal/domain"
	"github.com/spec-kit/registration-service/internal/service"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

// StatusHandler exposes the registration gate endpoints.
type StatusHandler struct {
	service *service.RegistrationService
}

// NewStatusHandler constructs handler.
func NewStatusHandler(registrationService *service.RegistrationService) *StatusHandler {
	return &StatusHandler{service: registrationService}
}

// Get handles GET /registration-status.
func (h *StatusHandler) Get(c *fiber.Ctx) error {
	gate, err := h.service.GateStatus(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "status": dto.NewGateStatusView(gate)})
}

// Update handles POST /registration-status.
func (h *StatusHandler) Update(c *fiber.Ctx) error {
	var req dto.GateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if req.IsOpen == nil {
		return apperrors.NewBadRequest("isOpen must be a boolean")
	}

	gate, err := h.service.SetGateStatus(c.Context(), domain.GateUpdate{
		IsOpen:  *req.IsOpen,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "status": dto.NewGateStatusView(gate)})
}
