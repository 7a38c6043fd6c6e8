package domain

import "time"

// PaymentStatus enumerates payment states for a registration.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// Year enumerates academic years accepted on the form.
type Year string

const (
	YearFirst  Year = "I"
	YearSecond Year = "II"
	YearThird  Year = "III"
	YearFourth Year = "IV"
)

// Committee enumerates the conference committees delegates can choose.
type Committee string

const (
	CommitteeUNEP Committee = "UNEP"
	CommitteeUNSC Committee = "UNSC"
)

// Registration is the persisted form of a conference sign-up. ID and
// CreatedAt are assigned by the store on creation and never mutated;
// PaymentStatus is the only field updated afterwards.
type Registration struct {
	ID                string
	FullName          string
	Year              Year
	Department        string
	Section           string
	StudentID         string
	College           string
	PreferredCountry  string
	PhoneNumber       string
	Committee         Committee
	PaymentStatus     PaymentStatus
	PaymentScreenshot *string
	CreatedAt         time.Time
}

// RegistrationStats aggregates counts per payment status plus derived revenue.
type RegistrationStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Revenue   int `json:"revenue"`
}
