package repository

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/registration-service/internal/domain"
)

// InMemoryGateRepository keeps the singleton gate in process memory.
type InMemoryGateRepository struct {
	mu   sync.Mutex
	gate *domain.Gate
}

// NewInMemoryGateRepository creates a repository with no gate yet; the first
// Get materializes the default-open record.
func NewInMemoryGateRepository() *InMemoryGateRepository {
	return &InMemoryGateRepository{}
}

func (r *InMemoryGateRepository) Get(ctx context.Context) (*domain.Gate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gate == nil {
		r.gate = &domain.Gate{IsOpen: true}
	}
	copied := *r.gate
	return &copied, nil
}

func (r *InMemoryGateRepository) Update(ctx context.Context, update domain.GateUpdate) (*domain.Gate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gate == nil {
		r.gate = &domain.Gate{IsOpen: true}
	}
	r.gate.IsOpen = update.IsOpen
	if update.Message != nil {
		msg := *update.Message
		r.gate.Message = &msg
	}
	if update.IsOpen {
		r.gate.ClosedAt = nil
	} else {
		now := time.Now()
		r.gate.ClosedAt = &now
	}
	copied := *r.gate
	return &copied, nil
}
