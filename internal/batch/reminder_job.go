package batch

import (
	"context"
	"log/slog"

	"github.com/lendly/loan-tracker/internal/service"
)

// ReminderJob walks the debtor collection once a day and surfaces every
// overdue account with its prefilled reminder link. The link is logged, not
// sent; delivery stays a manual, fire-and-forget step.
type ReminderJob struct {
	service *service.DebtorService
	logger  *slog.Logger
}

func NewReminderJob(service *service.DebtorService, logger *slog.Logger) *ReminderJob {
	return &ReminderJob{
		service: service,
		logger:  logger.With("job", "overdue_reminder"),
	}
}

func (j *ReminderJob) Run(ctx context.Context) error {
	overdue, err := j.service.Overdue(ctx)
	if err != nil {
		j.logger.Error("listing overdue debtors failed", "error", err)
		return err
	}

	for _, d := range overdue {
		j.logger.Info("overdue debtor",
			"debtor_id", d.ID,
			"name", d.Name,
			"due_date", d.DueDate.Format("2006-01-02"),
			"monthly_payment", d.MonthlyPayment,
			"reminder_url", d.ReminderURL,
		)
	}

	j.logger.Info("reminder sweep finished", "overdue_count", len(overdue))
	return nil
}
