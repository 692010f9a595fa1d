package batch

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lendly/loan-tracker/internal/domain"
	"github.com/lendly/loan-tracker/internal/notify"
	"github.com/lendly/loan-tracker/internal/repository"
	"github.com/lendly/loan-tracker/internal/service"
)

func TestRunSweepsOverdueDebtors(t *testing.T) {
	repo := repository.NewMemoryDebtorRepository()
	svc := service.NewDebtorService(repo, notify.WhatsAppLinker{CountryCode: "55"}, slog.Default())

	_, _, err := svc.Create(context.Background(), &domain.CreateDebtorRequest{
		Name:         "Maria Souza",
		Phone:        "11987654321",
		Amount:       decimal.NewFromInt(1200),
		Installments: 12,
		DueDate:      "2020-01-10",
	})
	require.NoError(t, err)

	job := NewReminderJob(svc, slog.Default())
	require.NoError(t, job.Run(context.Background()))
}
