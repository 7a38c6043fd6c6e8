package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/registration-service/internal/api/dto"
	"github.com/spec-kit/registration-service/internal/service"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

// AdminHandler exposes admin authentication endpoints.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewBadRequest("Username and password required")
	}

	token, expiresAt, err := h.admin.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"admin":   fiber.Map{"username": req.Username},
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: expiresAt},
	})
}

// ChangePassword handles POST /admin/change-password.
func (h *AdminHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewBadRequest("Current and new password required")
	}

	if err := h.admin.ChangePassword(c.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Password changed successfully"})
}

// ForgotPassword handles POST /admin/forgot-password.
func (h *AdminHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if req.PhoneNumber == "" {
		return apperrors.NewBadRequest("Phone number required")
	}

	if err := h.admin.RequestPasswordReset(c.Context(), req.PhoneNumber); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "OTP sent successfully"})
}

// ResetPassword handles POST /admin/reset-password.
func (h *AdminHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid payload")
	}
	if req.PhoneNumber == "" || req.OTP == "" || req.NewPassword == "" {
		return apperrors.NewBadRequest("Phone number, OTP and new password required")
	}

	if err := h.admin.ResetPassword(c.Context(), req.PhoneNumber, req.OTP, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Password reset successfully"})
}
