package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spec-kit/registration-service/internal/domain"
	"github.com/spec-kit/registration-service/internal/events"
	"github.com/spec-kit/registration-service/internal/repository"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

type RegistrationServiceSuite struct {
	suite.Suite
	registrations *repository.InMemoryRegistrationRepository
	gate          *repository.InMemoryGateRepository
	dispatcher    events.Dispatcher
	service       *RegistrationService
}

func TestRegistrationServiceSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceSuite))
}

func (s *RegistrationServiceSuite) SetupTest() {
	s.registrations = repository.NewInMemoryRegistrationRepository()
	s.gate = repository.NewInMemoryGateRepository()
	s.dispatcher = events.NewInMemoryDispatcher()
	s.service = NewRegistrationService(RegistrationDependencies{
		RegistrationRepo: s.registrations,
		GateRepo:         s.gate,
		Dispatcher:       s.dispatcher,
		FeeAmount:        300,
	})
}

func validSubmission() domain.Submission {
	return domain.Submission{
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

func domainCode(err error) string {
	var de *apperrors.DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

func (s *RegistrationServiceSuite) TestSubmitWithoutScreenshotIsPending() {
	reg, err := s.service.Submit(context.Background(), validSubmission())
	s.Require().NoError(err)
	s.Equal(domain.PaymentStatusPending, reg.PaymentStatus)
	s.NotEmpty(reg.ID)
	s.False(reg.CreatedAt.IsZero())
}

func (s *RegistrationServiceSuite) TestSubmitWithScreenshotIsCompleted() {
	sub := validSubmission()
	sub.PaymentScreenshot = "uploads/receipt.png"

	reg, err := s.service.Submit(context.Background(), sub)
	s.Require().NoError(err)
	s.Equal(domain.PaymentStatusCompleted, reg.PaymentStatus)
}

func (s *RegistrationServiceSuite) TestSubmitValidationFailurePersistsNothing() {
	sub := validSubmission()
	sub.FullName = "A"
	sub.PhoneNumber = "12345"

	_, err := s.service.Submit(context.Background(), sub)
	s.Require().Error(err)
	s.Equal("VALIDATION_FAILED", domainCode(err))

	var de *apperrors.DomainError
	s.Require().True(errors.As(err, &de))
	s.Len(de.Fields, 2)

	stats, statsErr := s.service.Stats(context.Background())
	s.Require().NoError(statsErr)
	s.Zero(stats.Total)
}

func (s *RegistrationServiceSuite) TestSubmitClosedGateCarriesMessage() {
	ctx := context.Background()
	msg := "Closed for maintenance"
	_, err := s.gate.Update(ctx, domain.GateUpdate{IsOpen: false, Message: &msg})
	s.Require().NoError(err)

	_, err = s.service.Submit(ctx, validSubmission())
	s.Require().Error(err)
	s.Equal("REGISTRATION_CLOSED", domainCode(err))
	s.Contains(err.Error(), "Closed for maintenance")

	stats, statsErr := s.service.Stats(ctx)
	s.Require().NoError(statsErr)
	s.Zero(stats.Total)
}

func (s *RegistrationServiceSuite) TestSubmitClosedGateDefaultMessage() {
	ctx := context.Background()
	_, err := s.gate.Update(ctx, domain.GateUpdate{IsOpen: false})
	s.Require().NoError(err)

	_, err = s.service.Submit(ctx, validSubmission())
	s.Require().Error(err)
	s.Contains(err.Error(), domain.DefaultClosedMessage)
}

func (s *RegistrationServiceSuite) TestRoundTrip() {
	ctx := context.Background()
	created, err := s.service.Submit(ctx, validSubmission())
	s.Require().NoError(err)

	fetched, err := s.service.Get(ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.FullName, fetched.FullName)
	s.Equal(created.Year, fetched.Year)
	s.Equal(created.StudentID, fetched.StudentID)
	s.Equal(created.PhoneNumber, fetched.PhoneNumber)
	s.Equal(created.Committee, fetched.Committee)
	s.Equal(created.PaymentStatus, fetched.PaymentStatus)
}

func (s *RegistrationServiceSuite) TestGetNotFound() {
	_, err := s.service.Get(context.Background(), "missing")
	s.Require().Error(err)
	s.Equal("NOT_FOUND", domainCode(err))
}

func (s *RegistrationServiceSuite) TestUpdatePaymentStatusMovesStatsBuckets() {
	ctx := context.Background()
	reg, err := s.service.Submit(ctx, validSubmission())
	s.Require().NoError(err)

	before, err := s.service.Stats(ctx)
	s.Require().NoError(err)
	s.Equal(1, before.Pending)
	s.Equal(0, before.Completed)

	updated, err := s.service.UpdatePaymentStatus(ctx, reg.ID, domain.PaymentStatusCompleted)
	s.Require().NoError(err)
	s.Equal(domain.PaymentStatusCompleted, updated.PaymentStatus)

	after, err := s.service.Stats(ctx)
	s.Require().NoError(err)
	s.Equal(before.Pending-1, after.Pending)
	s.Equal(before.Completed+1, after.Completed)
	s.Equal(after.Total, after.Pending+after.Completed+after.Failed)
	s.Equal(300, after.Revenue)
}

func (s *RegistrationServiceSuite) TestUpdatePaymentStatusRejectsUnknownValue() {
	ctx := context.Background()
	reg, err := s.service.Submit(ctx, validSubmission())
	s.Require().NoError(err)

	_, err = s.service.UpdatePaymentStatus(ctx, reg.ID, domain.PaymentStatus("refunded"))
	s.Require().Error(err)
	s.Equal("BAD_REQUEST", domainCode(err))
}

func (s *RegistrationServiceSuite) TestUpdatePaymentStatusNotFound() {
	_, err := s.service.UpdatePaymentStatus(context.Background(), "missing", domain.PaymentStatusFailed)
	s.Require().Error(err)
	s.Equal("NOT_FOUND", domainCode(err))
}

func (s *RegistrationServiceSuite) TestDelete() {
	ctx := context.Background()
	reg, err := s.service.Submit(ctx, validSubmission())
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(ctx, reg.ID))

	err = s.service.Delete(ctx, reg.ID)
	s.Require().Error(err)
	s.Equal("NOT_FOUND", domainCode(err))
}

func (s *RegistrationServiceSuite) TestGateLifecycleThroughService() {
	ctx := context.Background()

	gate, err := s.service.GateStatus(ctx)
	s.Require().NoError(err)
	s.True(gate.IsOpen)

	msg := "See you next year"
	gate, err = s.service.SetGateStatus(ctx, domain.GateUpdate{IsOpen: false, Message: &msg})
	s.Require().NoError(err)
	s.False(gate.IsOpen)
	s.NotNil(gate.ClosedAt)

	gate, err = s.service.SetGateStatus(ctx, domain.GateUpdate{IsOpen: true})
	s.Require().NoError(err)
	s.True(gate.IsOpen)
	// reopening keeps the last message for the next closure
	s.Require().NotNil(gate.Message)
	s.Equal(msg, *gate.Message)
}

func (s *RegistrationServiceSuite) TestSubmitPublishesCreatedEvent() {
	var seen []events.Event
	s.dispatcher.Subscribe(events.EventRegistrationCreated, func(ctx context.Context, event events.Event) error {
		seen = append(seen, event)
		return nil
	})

	reg, err := s.service.Submit(context.Background(), validSubmission())
	s.Require().NoError(err)

	s.Require().Len(seen, 1)
	s.Equal(reg.ID, seen[0].RegistrationID)
	payload, ok := seen[0].Payload.(events.RegistrationCreatedPayload)
	s.Require().True(ok)
	s.Equal(domain.PaymentStatusPending, payload.PaymentStatus)
}
