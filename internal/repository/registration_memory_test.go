package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"

	"github.com/spec-kit/registration-service/internal/domain"
)

type RegistrationMemorySuite struct {
	suite.Suite
	repo *InMemoryRegistrationRepository
}

func TestRegistrationMemorySuite(t *testing.T) {
	suite.Run(t, new(RegistrationMemorySuite))
}

func (s *RegistrationMemorySuite) SetupTest() {
	s.repo = NewInMemoryRegistrationRepository()
}

func (s *RegistrationMemorySuite) newRegistration(name string, status domain.PaymentStatus) *domain.Registration {
	return &domain.Registration{
		FullName:         name,
		Year:             domain.YearFirst,
		Department:       "CSE",
		Section:          "A",
		StudentID:        "SEC" + name,
		College:          "Sairam Engineering College",
		PreferredCountry: "Japan",
		PhoneNumber:      "9876543210",
		Committee:        domain.CommitteeUNEP,
		PaymentStatus:    status,
	}
}

func (s *RegistrationMemorySuite) TestCreateAssignsIdentityOnce() {
	ctx := context.Background()
	reg := s.newRegistration("Asha", domain.PaymentStatusPending)

	s.Require().NoError(s.repo.Create(ctx, reg))
	s.NotEmpty(reg.ID)
	s.False(reg.CreatedAt.IsZero())

	fetched, err := s.repo.GetByID(ctx, reg.ID)
	s.Require().NoError(err)
	s.Equal(reg.FullName, fetched.FullName)
	s.Equal(reg.CreatedAt, fetched.CreatedAt)
}

func (s *RegistrationMemorySuite) TestGetByIDNotFound() {
	_, err := s.repo.GetByID(context.Background(), "missing")
	s.True(errors.Is(err, pgx.ErrNoRows))
}

func (s *RegistrationMemorySuite) TestListOrdersNewestFirst() {
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		reg := s.newRegistration("Delegate"+strconv.Itoa(i), domain.PaymentStatusPending)
		s.Require().NoError(s.repo.Create(ctx, reg))
		// distinct timestamps so the ordering is observable
		time.Sleep(time.Millisecond)
	}

	regs, err := s.repo.List(ctx, RegistrationFilter{})
	s.Require().NoError(err)
	s.Require().Len(regs, 5)
	for i := 1; i < len(regs); i++ {
		s.False(regs[i].CreatedAt.After(regs[i-1].CreatedAt))
	}
}

func (s *RegistrationMemorySuite) TestListFilters() {
	ctx := context.Background()
	completed := s.newRegistration("Paid", domain.PaymentStatusCompleted)
	s.Require().NoError(s.repo.Create(ctx, completed))

	pending := s.newRegistration("Unpaid", domain.PaymentStatusPending)
	pending.College = "Other College"
	pending.Year = domain.YearThird
	s.Require().NoError(s.repo.Create(ctx, pending))

	status := domain.PaymentStatusCompleted
	regs, err := s.repo.List(ctx, RegistrationFilter{PaymentStatus: &status})
	s.Require().NoError(err)
	s.Require().Len(regs, 1)
	s.Equal("Paid", regs[0].FullName)

	college := "Other College"
	regs, err = s.repo.List(ctx, RegistrationFilter{College: &college})
	s.Require().NoError(err)
	s.Require().Len(regs, 1)
	s.Equal("Unpaid", regs[0].FullName)

	year := domain.YearThird
	regs, err = s.repo.List(ctx, RegistrationFilter{Year: &year})
	s.Require().NoError(err)
	s.Require().Len(regs, 1)
	s.Equal("Unpaid", regs[0].FullName)
}

func (s *RegistrationMemorySuite) TestSearchIsCaseInsensitiveUnion() {
	ctx := context.Background()
	reg := s.newRegistration("Asha Verma", domain.PaymentStatusPending)
	reg.StudentID = "SEC21CS042"
	s.Require().NoError(s.repo.Create(ctx, reg))

	other := s.newRegistration("Ravi Kumar", domain.PaymentStatusPending)
	other.StudentID = "SEC21EC007"
	other.PhoneNumber = "9123456780"
	s.Require().NoError(s.repo.Create(ctx, other))

	s.Run("by name fragment", func() {
		regs, err := s.repo.Search(ctx, "asha")
		s.Require().NoError(err)
		s.Require().Len(regs, 1)
		s.Equal("Asha Verma", regs[0].FullName)
	})

	s.Run("by student id fragment", func() {
		regs, err := s.repo.Search(ctx, "ec007")
		s.Require().NoError(err)
		s.Require().Len(regs, 1)
		s.Equal("Ravi Kumar", regs[0].FullName)
	})

	s.Run("by phone fragment", func() {
		regs, err := s.repo.Search(ctx, "912345")
		s.Require().NoError(err)
		s.Require().Len(regs, 1)
		s.Equal("Ravi Kumar", regs[0].FullName)
	})

	s.Run("union across fields", func() {
		regs, err := s.repo.Search(ctx, "sec21")
		s.Require().NoError(err)
		s.Len(regs, 2)
	})
}

func (s *RegistrationMemorySuite) TestUpdatePaymentStatus() {
	ctx := context.Background()
	reg := s.newRegistration("Asha", domain.PaymentStatusPending)
	s.Require().NoError(s.repo.Create(ctx, reg))

	updated, err := s.repo.UpdatePaymentStatus(ctx, reg.ID, domain.PaymentStatusCompleted)
	s.Require().NoError(err)
	s.Equal(domain.PaymentStatusCompleted, updated.PaymentStatus)

	fetched, err := s.repo.GetByID(ctx, reg.ID)
	s.Require().NoError(err)
	s.Equal(domain.PaymentStatusCompleted, fetched.PaymentStatus)

	_, err = s.repo.UpdatePaymentStatus(ctx, "missing", domain.PaymentStatusFailed)
	s.True(errors.Is(err, pgx.ErrNoRows))
}

func (s *RegistrationMemorySuite) TestDelete() {
	ctx := context.Background()
	reg := s.newRegistration("Asha", domain.PaymentStatusPending)
	s.Require().NoError(s.repo.Create(ctx, reg))

	deleted, err := s.repo.Delete(ctx, reg.ID)
	s.Require().NoError(err)
	s.True(deleted)

	deleted, err = s.repo.Delete(ctx, reg.ID)
	s.Require().NoError(err)
	s.False(deleted)
}

func (s *RegistrationMemorySuite) TestStatsInvariant() {
	ctx := context.Background()
	statuses := []domain.PaymentStatus{
		domain.PaymentStatusPending,
		domain.PaymentStatusPending,
		domain.PaymentStatusCompleted,
		domain.PaymentStatusFailed,
	}
	for i, status := range statuses {
		s.Require().NoError(s.repo.Create(ctx, s.newRegistration("D"+strconv.Itoa(i), status)))
	}

	stats, err := s.repo.Stats(ctx, 300)
	s.Require().NoError(err)
	s.Equal(4, stats.Total)
	s.Equal(2, stats.Pending)
	s.Equal(1, stats.Completed)
	s.Equal(1, stats.Failed)
	s.Equal(stats.Total, stats.Pending+stats.Completed+stats.Failed)
	s.Equal(300, stats.Revenue)
}
