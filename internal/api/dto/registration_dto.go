package dto

import (
	"time"

	"github.com/spec-kit/registration-service/internal/domain"
)

// RegistrationRequest is the submission payload from the registration form.
type RegistrationRequest struct {
	FullName          string `json:"fullName"`
	Year              string `json:"year"`
	Department        string `json:"department"`
	Section           string `json:"section"`
	StudentID         string `json:"studentId"`
	College           string `json:"college"`
	PreferredCountry  string `json:"preferredCountry"`
	PhoneNumber       string `json:"phoneNumber"`
	Committee         string `json:"committee"`
	PaymentScreenshot string `json:"paymentScreenshot"`
}

// Submission converts the request into the domain submission shape.
func (r RegistrationRequest) Submission() domain.Submission {
	return domain.Submission{
		FullName:          r.FullName,
		Year:              r.Year,
		Department:        r.Department,
		Section:           r.Section,
		StudentID:         r.StudentID,
		College:           r.College,
		PreferredCountry:  r.PreferredCountry,
		PhoneNumber:       r.PhoneNumber,
		Committee:         r.Committee,
		PaymentScreenshot: r.PaymentScreenshot,
	}
}

// RegistrationView is the full serialized form of a stored registration.
type RegistrationView struct {
	ID                string    `json:"id"`
	FullName          string    `json:"fullName"`
	Year              string    `json:"year"`
	Department        string    `json:"department"`
	Section           string    `json:"section"`
	StudentID         string    `json:"studentId"`
	College           string    `json:"college"`
	PreferredCountry  string    `json:"preferredCountry"`
	PhoneNumber       string    `json:"phoneNumber"`
	Committee         string    `json:"committee"`
	PaymentStatus     string    `json:"paymentStatus"`
	PaymentScreenshot *string   `json:"paymentScreenshot,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewRegistrationView maps a domain registration to its response form.
func NewRegistrationView(reg *domain.Registration) RegistrationView {
	return RegistrationView{
		ID:                reg.ID,
		FullName:          reg.FullName,
		Year:              string(reg.Year),
		Department:        reg.Department,
		Section:           reg.Section,
		StudentID:         reg.StudentID,
		College:           reg.College,
		PreferredCountry:  reg.PreferredCountry,
		PhoneNumber:       reg.PhoneNumber,
		Committee:         string(reg.Committee),
		PaymentStatus:     string(reg.PaymentStatus),
		PaymentScreenshot: reg.PaymentScreenshot,
		CreatedAt:         reg.CreatedAt,
	}
}

// CreatedRegistration is the trimmed shape returned on successful intake.
type CreatedRegistration struct {
	ID            string    `json:"id"`
	FullName      string    `json:"fullName"`
	CreatedAt     time.Time `json:"createdAt"`
	PaymentStatus string    `json:"paymentStatus"`
}

// UpdatePaymentStatusRequest is the admin payment-status override payload.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}
