package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/registration-service/internal/domain"
)

// GateRepository owns the singleton gate record. Get creates the record with
// IsOpen=true when it does not exist yet; the system must never block
// registrations because the gate was simply missing.
type GateRepository interface {
	Get(ctx context.Context) (*domain.Gate, error)
	Update(ctx context.Context, update domain.GateUpdate) (*domain.Gate, error)
}

type gateRepository struct {
	pool *pgxpool.Pool
}

// NewGateRepository instantiates the Postgres-backed gate repository.
func NewGateRepository(pool *pgxpool.Pool) GateRepository {
	return &gateRepository{pool: pool}
}

func (r *gateRepository) Get(ctx context.Context) (*domain.Gate, error) {
	const query = `SELECT is_open, message, closed_at FROM registration_gate WHERE id=TRUE`
	var gate domain.Gate
	err := r.pool.QueryRow(ctx, query).Scan(&gate.IsOpen, &gate.Message, &gate.ClosedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.createDefault(ctx)
	}
	if err != nil {
		return nil, err
	}
	return &gate, nil
}

func (r *gateRepository) createDefault(ctx context.Context) (*domain.Gate, error) {
	// ON CONFLICT tolerates a concurrent first read creating the row.
	const query = `
        INSERT INTO registration_gate (id, is_open) VALUES (TRUE, TRUE)
        ON CONFLICT (id) DO UPDATE SET id=EXCLUDED.id
        RETURNING is_open, message, closed_at`
	var gate domain.Gate
	if err := r.pool.QueryRow(ctx, query).Scan(&gate.IsOpen, &gate.Message, &gate.ClosedAt); err != nil {
		return nil, err
	}
	return &gate, nil
}

func (r *gateRepository) Update(ctx context.Context, update domain.GateUpdate) (*domain.Gate, error) {
	if _, err := r.Get(ctx); err != nil {
		return nil, err
	}

	// COALESCE keeps the prior message when none is supplied (partial update).
	const query = `
        UPDATE registration_gate
        SET is_open=$1,
            message=COALESCE($2, message),
            closed_at=CASE WHEN $1 THEN NULL ELSE NOW() END,
            updated_at=NOW()
        WHERE id=TRUE
        RETURNING is_open, message, closed_at`
	var gate domain.Gate
	if err := r.pool.QueryRow(ctx, query, update.IsOpen, update.Message).Scan(&gate.IsOpen, &gate.Message, &gate.ClosedAt); err != nil {
		return nil, err
	}
	return &gate, nil
}
