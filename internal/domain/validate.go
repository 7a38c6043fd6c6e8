package domain

import (
	"regexp"

	util "github.com/spec-kit/registration-service/pkg/util"
)

// Submission is a candidate registration as received from the form, before
// any constraint has been checked.
type Submission struct {
	FullName          string
	Year              string
	Department        string
	Section           string
	StudentID         string
	College           string
	PreferredCountry  string
	PhoneNumber       string
	Committee         string
	PaymentScreenshot string
}

// FieldError describes a single violated constraint.
type FieldError = util.FieldError

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Validate checks every field constraint independently and returns all
// violations, not just the first. An empty slice means the submission is
// acceptable for persistence.
func (s Submission) Validate() []FieldError {
	var errs []FieldError

	if len(s.FullName) < 2 {
		errs = append(errs, FieldError{Field: "fullName", Message: "Full name must be at least 2 characters"})
	}
	switch Year(s.Year) {
	case YearFirst, YearSecond, YearThird, YearFourth:
	default:
		errs = append(errs, FieldError{Field: "year", Message: "Year must be I, II, III, or IV"})
	}
	if len(s.Department) < 2 {
		errs = append(errs, FieldError{Field: "department", Message: "Department must be at least 2 characters"})
	}
	if len(s.Section) < 1 {
		errs = append(errs, FieldError{Field: "section", Message: "Section is required"})
	}
	if len(s.StudentID) < 1 {
		errs = append(errs, FieldError{Field: "studentId", Message: "Student ID is required"})
	}
	if len(s.College) < 2 {
		errs = append(errs, FieldError{Field: "college", Message: "College name must be at least 2 characters"})
	}
	if len(s.PreferredCountry) < 2 {
		errs = append(errs, FieldError{Field: "preferredCountry", Message: "Preferred country must be at least 2 characters"})
	}
	if !phonePattern.MatchString(s.PhoneNumber) {
		errs = append(errs, FieldError{Field: "phoneNumber", Message: "Phone number must be exactly 10 digits"})
	}
	switch Committee(s.Committee) {
	case CommitteeUNEP, CommitteeUNSC:
	default:
		errs = append(errs, FieldError{Field: "committee", Message: "Committee must be UNEP or UNSC"})
	}

	return errs
}

// ToRegistration converts a validated submission into its persistable form,
// deriving PaymentStatus from the presence of a payment screenshot. ID and
// CreatedAt are left for the store to assign.
func (s Submission) ToRegistration() *Registration {
	reg := &Registration{
		FullName:         s.FullName,
		Year:             Year(s.Year),
		Department:       s.Department,
		Section:          s.Section,
		StudentID:        s.StudentID,
		College:          s.College,
		PreferredCountry: s.PreferredCountry,
		PhoneNumber:      s.PhoneNumber,
		Committee:        Committee(s.Committee),
		PaymentStatus:    PaymentStatusPending,
	}
	if s.PaymentScreenshot != "" {
		screenshot := s.PaymentScreenshot
		reg.PaymentScreenshot = &screenshot
		reg.PaymentStatus = PaymentStatusCompleted
	}
	return reg
}
