package events

import (
	"time"

	"github.com/spec-kit/registration-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRegistrationCreated  EventType = "registration_created"
	EventRegistrationDeleted  EventType = "registration_deleted"
	EventPaymentStatusChanged EventType = "payment_status_changed"
	EventGateChanged          EventType = "gate_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID             string      `json:"id"`
	Type           EventType   `json:"type"`
	RegistrationID string      `json:"registration_id,omitempty"`
	Timestamp      time.Time   `json:"timestamp"`
	Payload        interface{} `json:"payload"`
}

// RegistrationCreatedPayload payload.
type RegistrationCreatedPayload struct {
	FullName      string               `json:"full_name"`
	College       string               `json:"college"`
	Committee     domain.Committee     `json:"committee"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
}

// PaymentStatusChangedPayload payload.
type PaymentStatusChangedPayload struct {
	OldStatus domain.PaymentStatus `json:"old_status"`
	NewStatus domain.PaymentStatus `json:"new_status"`
}

// GateChangedPayload payload.
type GateChangedPayload struct {
	IsOpen  bool    `json:"is_open"`
	Message *string `json:"message,omitempty"`
}

// RegistrationDeletedPayload payload.
type RegistrationDeletedPayload struct {
	FullName string `json:"full_name"`
}
