package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/registration-service/internal/auth"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

// AdminService handles admin authentication and the password-reset flow.
type AdminService struct {
	verifier   auth.CredentialVerifier
	tokens     *auth.TokenManager
	otpStore   auth.OTPStore
	otpSender  auth.OTPSender
	otpTTL     time.Duration
	username   string
	adminPhone string
}

// AdminDependencies bundles collaborators for the admin service.
type AdminDependencies struct {
	Verifier   auth.CredentialVerifier
	Tokens     *auth.TokenManager
	OTPStore   auth.OTPStore
	OTPSender  auth.OTPSender
	OTPTTL     time.Duration
	Username   string
	AdminPhone string
}

// NewAdminService constructs the service.
func NewAdminService(deps AdminDependencies) *AdminService {
	return &AdminService{
		verifier:   deps.Verifier,
		tokens:     deps.Tokens,
		otpStore:   deps.OTPStore,
		otpSender:  deps.OTPSender,
		otpTTL:     deps.OTPTTL,
		username:   deps.Username,
		adminPhone: deps.AdminPhone,
	}
}

// Login checks the credential pair and issues a session token.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if !s.verifier.Verify(username, password) {
		return "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
	}
	token, expiresAt, err := s.tokens.GenerateToken(username)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ChangePassword rotates the admin password after verifying the current one.
func (s *AdminService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if !s.verifier.Verify(s.username, currentPassword) {
		return apperrors.NewUnauthorized("Current password is incorrect")
	}
	return s.verifier.Update(newPassword)
}

// RequestPasswordReset generates an OTP for the configured admin phone
// number, stores it with a TTL and hands it to the delivery capability. The
// code is never returned to the caller.
func (s *AdminService) RequestPasswordReset(ctx context.Context, phoneNumber string) error {
	if s.adminPhone == "" || phoneNumber != s.adminPhone {
		return apperrors.NewBadRequest("Phone number not registered for admin access")
	}
	code, err := auth.GenerateOTP()
	if err != nil {
		return err
	}
	if err := s.otpStore.Put(ctx, phoneNumber, code, s.otpTTL); err != nil {
		return err
	}
	return s.otpSender.Send(ctx, phoneNumber, code)
}

// ResetPassword verifies the OTP (consuming it) and sets the new password.
func (s *AdminService) ResetPassword(ctx context.Context, phoneNumber, code, newPassword string) error {
	if s.adminPhone == "" || phoneNumber != s.adminPhone {
		return apperrors.NewBadRequest("Invalid phone number")
	}
	if err := s.otpStore.Verify(ctx, phoneNumber, code); err != nil {
		if errors.Is(err, auth.ErrOTPMismatch) {
			return apperrors.NewUnauthorized("Invalid or expired OTP")
		}
		return err
	}
	return s.verifier.Update(newPassword)
}
