package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/registration-service/internal/api/dto"
	"github.com/spec-kit/registration-service/internal/domain"
	"github.com/spec-kit/registration-service/internal/repository"
	"github.com/spec-kit/registration-service/internal/service"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

// RegistrationsHandler exposes registration intake and admin endpoints.
type RegistrationsHandler struct {
	service *service.RegistrationService
}

// NewRegistrationsHandler constructs handler.
func NewRegistrationsHandler(registrationService *service.RegistrationService) *RegistrationsHandler {
	return &RegistrationsHandler{service: registrationService}
}

// Create handles POST /registrations.
func (h *RegistrationsHandler) Create(c *fiber.Ctx) error {
	var req dto.RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}

	reg, err := h.service.Submit(c.Context(), req.Submission())
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registration successful",
		"registration": dto.CreatedRegistration{
			ID:            reg.ID,
			FullName:      reg.FullName,
			CreatedAt:     reg.CreatedAt,
			PaymentStatus: string(reg.PaymentStatus),
		},
	})
}

// List handles GET /registrations with optional status/college/year filters.
func (h *RegistrationsHandler) List(c *fiber.Ctx) error {
	var filter repository.RegistrationFilter
	if v := c.Query("status"); v != "" {
		status := domain.PaymentStatus(v)
		if !domain.ValidPaymentStatus(status) {
			return apperrors.NewBadRequest("Invalid payment status")
		}
		filter.PaymentStatus = &status
	}
	if v := c.Query("college"); v != "" {
		college := v
		filter.College = &college
	}
	if v := c.Query("year"); v != "" {
		year := domain.Year(v)
		filter.Year = &year
	}

	regs, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "registrations": registrationViews(regs)})
}

// Get handles GET /registrations/:id.
func (h *RegistrationsHandler) Get(c *fiber.Ctx) error {
	reg, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "registration": dto.NewRegistrationView(reg)})
}

// Stats handles GET /registrations/stats.
func (h *RegistrationsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "stats": stats})
}

// Search handles GET /registrations/search/:query.
func (h *RegistrationsHandler) Search(c *fiber.Ctx) error {
	regs, err := h.service.Search(c.Context(), c.Params("query"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "registrations": registrationViews(regs)})
}

// UpdatePayment handles PATCH /registrations/:id/payment.
func (h *RegistrationsHandler) UpdatePayment(c *fiber.Ctx) error {
	var req dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	reg, err := h.service.UpdatePaymentStatus(c.Context(), c.Params("id"), domain.PaymentStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "registration": dto.NewRegistrationView(reg)})
}

// Delete handles DELETE /registrations/:id.
func (h *RegistrationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Registration deleted"})
}

func registrationViews(regs []domain.Registration) []dto.RegistrationView {
	views := make([]dto.RegistrationView, 0, len(regs))
	for i := range regs {
		views = append(views, dto.NewRegistrationView(&regs[i]))
	}
	return views
}
