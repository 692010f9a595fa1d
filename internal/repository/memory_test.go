package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendly/loan-tracker/internal/domain"
	customError "github.com/lendly/loan-tracker/pkg/errors"
)

func newTestDebtor(installments, paid int) *domain.Debtor {
	return &domain.Debtor{
		ID:               uuid.New(),
		Name:             "Carlos Pereira",
		Amount:           decimal.NewFromInt(1200),
		Installments:     installments,
		PaidInstallments: paid,
		MonthlyPayment:   decimal.NewFromInt(100),
		DueDate:          time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local),
		Status:           domain.StatusPending,
	}
}

func TestMemoryRepositoryCreateListDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDebtorRepository()

	before, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, before)

	debtor := newTestDebtor(12, 0)
	require.NoError(t, repo.Create(ctx, debtor))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, debtor.ID, listed[0].ID)

	require.NoError(t, repo.Delete(ctx, debtor.ID))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestMemoryRepositoryGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDebtorRepository()

	debtor := newTestDebtor(12, 0)
	require.NoError(t, repo.Create(ctx, debtor))

	got, err := repo.GetByID(ctx, debtor.ID)
	require.NoError(t, err)
	assert.Equal(t, debtor.Name, got.Name)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, customError.ErrDebtorNotFound)
}

func TestMemoryRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDebtorRepository()

	debtor := newTestDebtor(12, 0)
	require.NoError(t, repo.Create(ctx, debtor))

	edited := *debtor
	edited.Name = "Carlos P. Silva"
	require.NoError(t, repo.Update(ctx, &edited))

	got, err := repo.GetByID(ctx, debtor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carlos P. Silva", got.Name)

	missing := newTestDebtor(6, 0)
	assert.ErrorIs(t, repo.Update(ctx, missing), customError.ErrDebtorNotFound)
}

func TestMemoryRepositoryPayInstallment(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDebtorRepository()

	debtor := newTestDebtor(3, 1)
	require.NoError(t, repo.Create(ctx, debtor))

	updated, err := repo.PayInstallment(ctx, debtor.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.PaidInstallments)
	assert.Equal(t, domain.StatusPending, updated.Status)

	// Last installment flips the stored status to paid.
	updated, err = repo.PayInstallment(ctx, debtor.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.PaidInstallments)
	assert.Equal(t, domain.StatusPaid, updated.Status)

	// At the ceiling the operation is a guarded no-op.
	_, err = repo.PayInstallment(ctx, debtor.ID)
	assert.ErrorIs(t, err, customError.ErrDebtorFullyPaid)

	got, err := repo.GetByID(ctx, debtor.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.PaidInstallments)
}

func TestMemoryRepositoryPayTotal(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDebtorRepository()

	debtor := newTestDebtor(12, 2)
	require.NoError(t, repo.Create(ctx, debtor))

	updated, err := repo.PayTotal(ctx, debtor.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.PaidInstallments)
	assert.Equal(t, domain.StatusPaid, updated.Status)
}

func TestMemoryRepositorySnapshotsAreStable(t *testing.T) {
	// A snapshot taken before a mutation must not change under the caller.
	ctx := context.Background()
	repo := NewMemoryDebtorRepository()

	debtor := newTestDebtor(12, 0)
	require.NoError(t, repo.Create(ctx, debtor))

	snapshot, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	_, err = repo.PayInstallment(ctx, debtor.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, snapshot[0].PaidInstallments)

	fresh, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh[0].PaidInstallments)
}
