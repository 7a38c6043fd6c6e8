package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/registration-service/internal/domain"
	"github.com/spec-kit/registration-service/internal/events"
	"github.com/spec-kit/registration-service/internal/repository"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

// RegistrationService coordinates the registration intake workflow and the
// admin operations over stored registrations.
type RegistrationService struct {
	registrations repository.RegistrationRepository
	gate          repository.GateRepository
	dispatcher    events.Dispatcher
	feeAmount     int
}

// RegistrationDependencies bundles collaborators for the service.
type RegistrationDependencies struct {
	RegistrationRepo repository.RegistrationRepository
	GateRepo         repository.GateRepository
	Dispatcher       events.Dispatcher
	FeeAmount        int
}

// NewRegistrationService constructs the service.
func NewRegistrationService(deps RegistrationDependencies) *RegistrationService {
	return &RegistrationService{
		registrations: deps.RegistrationRepo,
		gate:          deps.GateRepo,
		dispatcher:    deps.Dispatcher,
		feeAmount:     deps.FeeAmount,
	}
}

// Submit runs a single registration end-to-end: validate, consult the gate,
// derive the payment status, persist. Validation and closure failures are
// terminal; no retries happen here. The gate read and the create are separate
// round-trips, so a close racing with a submission can admit one late record.
func (s *RegistrationService) Submit(ctx context.Context, sub domain.Submission) (*domain.Registration, error) {
	if fieldErrs := sub.Validate(); len(fieldErrs) > 0 {
		return nil, apperrors.NewValidationError(fieldErrs)
	}

	gate, err := s.gate.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !gate.IsOpen {
		message := domain.DefaultClosedMessage
		if gate.Message != nil && *gate.Message != "" {
			message = *gate.Message
		}
		return nil, apperrors.NewRegistrationClosed(message)
	}

	reg := sub.ToRegistration()
	if err := s.registrations.Create(ctx, reg); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:           events.EventRegistrationCreated,
		RegistrationID: reg.ID,
		Payload: events.RegistrationCreatedPayload{
			FullName:      reg.FullName,
			College:       reg.College,
			Committee:     reg.Committee,
			PaymentStatus: reg.PaymentStatus,
		},
	})
	return reg, nil
}

// Get fetches one registration by ID.
func (s *RegistrationService) Get(ctx context.Context, id string) (*domain.Registration, error) {
	reg, err := s.registrations.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Registration")
	}
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// List returns registrations, optionally filtered, newest first.
func (s *RegistrationService) List(ctx context.Context, filter repository.RegistrationFilter) ([]domain.Registration, error) {
	return s.registrations.List(ctx, filter)
}

// Search matches the query case-insensitively against full name, student ID
// and phone number.
func (s *RegistrationService) Search(ctx context.Context, query string) ([]domain.Registration, error) {
	return s.registrations.Search(ctx, query)
}

// UpdatePaymentStatus is the only sanctioned mutation of a stored record.
func (s *RegistrationService) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Registration, error) {
	if !domain.ValidPaymentStatus(status) {
		return nil, apperrors.NewBadRequest("Invalid payment status")
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.registrations.UpdatePaymentStatus(ctx, id, status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Registration")
	}
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:           events.EventPaymentStatusChanged,
		RegistrationID: id,
		Payload: events.PaymentStatusChangedPayload{
			OldStatus: current.PaymentStatus,
			NewStatus: status,
		},
	})
	return updated, nil
}

// Delete removes a registration.
func (s *RegistrationService) Delete(ctx context.Context, id string) error {
	reg, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	deleted, err := s.registrations.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("Registration")
	}
	s.publishEvent(ctx, events.Event{
		Type:           events.EventRegistrationDeleted,
		RegistrationID: id,
		Payload:        events.RegistrationDeletedPayload{FullName: reg.FullName},
	})
	return nil
}

// Stats aggregates counts per payment status; revenue is the completed count
// times the configured fee.
func (s *RegistrationService) Stats(ctx context.Context) (*domain.RegistrationStats, error) {
	return s.registrations.Stats(ctx, s.feeAmount)
}

// GateStatus reads the gate, creating the default-open record on first call.
func (s *RegistrationService) GateStatus(ctx context.Context) (*domain.Gate, error) {
	return s.gate.Get(ctx)
}

// SetGateStatus toggles the gate. A nil message leaves the prior one intact.
func (s *RegistrationService) SetGateStatus(ctx context.Context, update domain.GateUpdate) (*domain.Gate, error) {
	gate, err := s.gate.Update(ctx, update)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type: events.EventGateChanged,
		Payload: events.GateChangedPayload{
			IsOpen:  gate.IsOpen,
			Message: gate.Message,
		},
	})
	return gate, nil
}

func (s *RegistrationService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
