package dto

import "time"

// AdminLoginRequest payload for admin login.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest payload for rotating the admin password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ForgotPasswordRequest payload for requesting a reset OTP.
type ForgotPasswordRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// ResetPasswordRequest payload for the OTP-verified reset.
type ResetPasswordRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// AuthResponse carries the issued session token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
