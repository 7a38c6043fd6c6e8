package domain

import "time"

// Gate is the singleton record deciding whether new registrations are
// accepted. Exactly one gate exists; it is created lazily with IsOpen=true on
// first read and updated in place afterwards.
type Gate struct {
	IsOpen   bool
	Message  *string
	ClosedAt *time.Time
}

// GateUpdate is a partial update to the gate. A nil Message leaves the prior
// message untouched.
type GateUpdate struct {
	IsOpen  bool
	Message *string
}

// DefaultClosedMessage is shown to users when the gate is closed without a
// configured message.
const DefaultClosedMessage = "Registration is currently closed"
