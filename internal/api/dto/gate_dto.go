package dto

import (
	"time"

	"github.com/spec-kit/registration-service/internal/domain"
)

// GateStatusView serializes the registration gate.
type GateStatusView struct {
	IsOpen   bool       `json:"isOpen"`
	Message  *string    `json:"message,omitempty"`
	ClosedAt *time.Time `json:"closedAt,omitempty"`
}

// NewGateStatusView maps the domain gate to its response form.
func NewGateStatusView(gate *domain.Gate) GateStatusView {
	return GateStatusView{
		IsOpen:   gate.IsOpen,
		Message:  gate.Message,
		ClosedAt: gate.ClosedAt,
	}
}

// GateUpdateRequest is the admin toggle payload. IsOpen is a pointer so a
// missing or non-boolean value can be rejected; Message is optional and
// leaves the prior message in place when omitted.
type GateUpdateRequest struct {
	IsOpen  *bool   `json:"isOpen"`
	Message *string `json:"message"`
}
