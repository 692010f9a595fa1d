package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lendly/loan-tracker/internal/domain"
	customError "github.com/lendly/loan-tracker/pkg/errors"
)

// memoryDebtorRepository keeps the debtor collection in process memory.
// Data is intentionally not durable; a restart starts from an empty
// collection.
//
// The slice is treated as immutable: mutations build a fresh slice with
// fresh record values and swap it in under the lock. Readers get the
// current slice copied, so concurrent handlers never observe a partial
// mutation.
type memoryDebtorRepository struct {
	mu      sync.RWMutex
	debtors []*domain.Debtor
}

func NewMemoryDebtorRepository() DebtorRepository {
	return &memoryDebtorRepository{}
}

func (r *memoryDebtorRepository) List(ctx context.Context) ([]*domain.Debtor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*domain.Debtor, len(r.debtors))
	copy(snapshot, r.debtors)
	return snapshot, nil
}

func (r *memoryDebtorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Debtor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.debtors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, customError.WrapDebtorNotFound(id.String())
}

func (r *memoryDebtorRepository) Create(ctx context.Context, debtor *domain.Debtor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]*domain.Debtor, len(r.debtors), len(r.debtors)+1)
	copy(next, r.debtors)
	r.debtors = append(next, debtor)
	return nil
}

func (r *memoryDebtorRepository) Update(ctx context.Context, debtor *domain.Debtor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.replace(debtor.ID, func(*domain.Debtor) *domain.Debtor {
		return debtor
	})
	return err
}

func (r *memoryDebtorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]*domain.Debtor, 0, len(r.debtors))
	found := false
	for _, d := range r.debtors {
		if d.ID == id {
			found = true
			continue
		}
		next = append(next, d)
	}
	if !found {
		return customError.WrapDebtorNotFound(id.String())
	}

	r.debtors = next
	return nil
}

func (r *memoryDebtorRepository) PayInstallment(ctx context.Context, id uuid.UUID) (*domain.Debtor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var payErr error
	updated, err := r.replace(id, func(current *domain.Debtor) *domain.Debtor {
		if current.FullyPaid() {
			payErr = customError.WrapDebtorFullyPaid(id.String())
			return current
		}

		next := *current
		next.PaidInstallments++
		// Overdue is never stored; it stays a read-time derivation.
		if next.PaidInstallments >= next.Installments {
			next.Status = domain.StatusPaid
		}
		next.UpdatedAt = time.Now()
		return &next
	})
	if err != nil {
		return nil, err
	}
	if payErr != nil {
		return nil, payErr
	}
	return updated, nil
}

func (r *memoryDebtorRepository) PayTotal(ctx context.Context, id uuid.UUID) (*domain.Debtor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.replace(id, func(current *domain.Debtor) *domain.Debtor {
		next := *current
		next.PaidInstallments = next.Installments
		next.Status = domain.StatusPaid
		next.UpdatedAt = time.Now()
		return &next
	})
}

// replace rebuilds the collection with the record matched by id swapped for
// the value produced by fn. Callers must hold the write lock.
func (r *memoryDebtorRepository) replace(id uuid.UUID, fn func(*domain.Debtor) *domain.Debtor) (*domain.Debtor, error) {
	next := make([]*domain.Debtor, len(r.debtors))
	var updated *domain.Debtor
	for i, d := range r.debtors {
		if d.ID == id {
			updated = fn(d)
			next[i] = updated
			continue
		}
		next[i] = d
	}
	if updated == nil {
		return nil, customError.WrapDebtorNotFound(id.String())
	}

	r.debtors = next
	return updated, nil
}
