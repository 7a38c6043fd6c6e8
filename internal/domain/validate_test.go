package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{
		FullName:         "Asha Verma",
		Year:             "II",
		Department:       "CSE",
		Section:          "A",
		StudentID:        "SEC21CS042",
		College:          "Sairam Engineering College",
		PreferredCountry: "Norway",
		PhoneNumber:      "9876543210",
		Committee:        "UNEP",
	}
}

func TestValidateAcceptsCompleteSubmission(t *testing.T) {
	require.Empty(t, validSubmission().Validate())
}

func TestValidateFieldRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Submission)
		field   string
		message string
	}{
		{"short full name", func(s *Submission) { s.FullName = "A" }, "fullName", "Full name must be at least 2 characters"},
		{"unknown year", func(s *Submission) { s.Year = "V" }, "year", "Year must be I, II, III, or IV"},
		{"empty year", func(s *Submission) { s.Year = "" }, "year", "Year must be I, II, III, or IV"},
		{"short department", func(s *Submission) { s.Department = "C" }, "department", "Department must be at least 2 characters"},
		{"missing section", func(s *Submission) { s.Section = "" }, "section", "Section is required"},
		{"missing student id", func(s *Submission) { s.StudentID = "" }, "studentId", "Student ID is required"},
		{"short college", func(s *Submission) { s.College = "S" }, "college", "College name must be at least 2 characters"},
		{"short country", func(s *Submission) { s.PreferredCountry = "N" }, "preferredCountry", "Preferred country must be at least 2 characters"},
		{"short phone", func(s *Submission) { s.PhoneNumber = "12345" }, "phoneNumber", "Phone number must be exactly 10 digits"},
		{"phone with separators", func(s *Submission) { s.PhoneNumber = "98765-4321" }, "phoneNumber", "Phone number must be exactly 10 digits"},
		{"phone with country code", func(s *Submission) { s.PhoneNumber = "+919876543210" }, "phoneNumber", "Phone number must be exactly 10 digits"},
		{"unknown committee", func(s *Submission) { s.Committee = "WHO" }, "committee", "Committee must be UNEP or UNSC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := validSubmission()
			tc.mutate(&sub)
			errs := sub.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
			assert.Equal(t, tc.message, errs[0].Message)
		})
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	sub := validSubmission()
	sub.FullName = "A"
	sub.PhoneNumber = "12345"

	errs := sub.Validate()
	require.Len(t, errs, 2)

	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "fullName")
	assert.Contains(t, fields, "phoneNumber")
}

func TestToRegistrationDerivesPaymentStatus(t *testing.T) {
	t.Run("no screenshot stays pending", func(t *testing.T) {
		reg := validSubmission().ToRegistration()
		assert.Equal(t, PaymentStatusPending, reg.PaymentStatus)
		assert.Nil(t, reg.PaymentScreenshot)
	})

	t.Run("screenshot marks completed", func(t *testing.T) {
		sub := validSubmission()
		sub.PaymentScreenshot = "uploads/receipt-42.png"
		reg := sub.ToRegistration()
		assert.Equal(t, PaymentStatusCompleted, reg.PaymentStatus)
		require.NotNil(t, reg.PaymentScreenshot)
		assert.Equal(t, "uploads/receipt-42.png", *reg.PaymentScreenshot)
	})

	t.Run("store-assigned fields left empty", func(t *testing.T) {
		reg := validSubmission().ToRegistration()
		assert.Empty(t, reg.ID)
		assert.True(t, reg.CreatedAt.IsZero())
	})
}
