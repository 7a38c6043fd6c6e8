package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/registration-service/internal/domain"
)

// InMemoryRegistrationRepository keeps registrations in process memory. It
// backs unit tests and DSN-less development runs, and returns the same
// pgx.ErrNoRows sentinel as the Postgres implementation.
type InMemoryRegistrationRepository struct {
	mu      sync.RWMutex
	records map[string]domain.Registration
}

// NewInMemoryRegistrationRepository creates an empty store.
func NewInMemoryRegistrationRepository() *InMemoryRegistrationRepository {
	return &InMemoryRegistrationRepository{records: make(map[string]domain.Registration)}
}

func (r *InMemoryRegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg.ID = uuid.NewString()
	reg.CreatedAt = time.Now()
	r.records[reg.ID] = *reg
	return nil
}

func (r *InMemoryRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &reg, nil
}

func (r *InMemoryRegistrationRepository) List(ctx context.Context, filter RegistrationFilter) ([]domain.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Registration, 0, len(r.records))
	for _, reg := range r.records {
		if filter.PaymentStatus != nil && reg.PaymentStatus != *filter.PaymentStatus {
			continue
		}
		if filter.College != nil && reg.College != *filter.College {
			continue
		}
		if filter.Year != nil && reg.Year != *filter.Year {
			continue
		}
		result = append(result, reg)
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *InMemoryRegistrationRepository) Search(ctx context.Context, query string) ([]domain.Registration, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Registration, 0)
	for _, reg := range r.records {
		if strings.Contains(strings.ToLower(reg.FullName), needle) ||
			strings.Contains(strings.ToLower(reg.StudentID), needle) ||
			strings.Contains(reg.PhoneNumber, needle) {
			result = append(result, reg)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *InMemoryRegistrationRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	reg.PaymentStatus = status
	r.records[id] = reg
	return &reg, nil
}

func (r *InMemoryRegistrationRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

func (r *InMemoryRegistrationRepository) Stats(ctx context.Context, feeAmount int) (*domain.RegistrationStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &domain.RegistrationStats{}
	for _, reg := range r.records {
		stats.Total++
		switch reg.PaymentStatus {
		case domain.PaymentStatusPending:
			stats.Pending++
		case domain.PaymentStatusCompleted:
			stats.Completed++
		case domain.PaymentStatusFailed:
			stats.Failed++
		}
	}
	stats.Revenue = stats.Completed * feeAmount
	return stats, nil
}

func sortNewestFirst(regs []domain.Registration) {
	sort.SliceStable(regs, func(i, j int) bool {
		return regs[i].CreatedAt.After(regs[j].CreatedAt)
	})
}
