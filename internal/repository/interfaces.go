package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lendly/loan-tracker/internal/domain"
)

// DebtorRepository defines the operations on the debtor collection.
//
// Mutations follow functional-update semantics: every change produces a new
// collection and new record values, so snapshots handed out by List never
// change under the caller.
type DebtorRepository interface {
	// List returns an ordered snapshot of all debtors
	List(ctx context.Context) ([]*domain.Debtor, error)

	// GetByID retrieves a single debtor
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Debtor, error)

	// Create appends a new debtor to the collection
	Create(ctx context.Context, debtor *domain.Debtor) error

	// Update replaces the stored record matched by debtor.ID
	Update(ctx context.Context, debtor *domain.Debtor) error

	// Delete removes the debtor matched by id
	Delete(ctx context.Context, id uuid.UUID) error

	// PayInstallment records one paid installment; reaching the total flips
	// the stored status to paid. At the ceiling it is a guarded no-op error.
	PayInstallment(ctx context.Context, id uuid.UUID) (*domain.Debtor, error)

	// PayTotal settles the debt: all installments paid, status paid.
	PayTotal(ctx context.Context, id uuid.UUID) (*domain.Debtor, error)
}

// SessionRepository stores the logged-in flag for issued session tokens.
type SessionRepository interface {
	// Put marks the token as an active session for the given duration
	Put(ctx context.Context, token string, ttl time.Duration) error

	// Exists reports whether the token still has an active session
	Exists(ctx context.Context, token string) (bool, error)

	// Delete revokes the session for the token
	Delete(ctx context.Context, token string) error
}
