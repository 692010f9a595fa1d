package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lendly/loan-tracker/pkg/fincalc"
)

// ReportEntry is one projected installment landing in the selected month.
type ReportEntry struct {
	DebtorID          uuid.UUID       `json:"debtor_id"`
	DebtorName        string          `json:"debtor_name"`
	InstallmentNumber int             `json:"installment_number"`
	Installments      int             `json:"installments"`
	ProjectedDueDate  time.Time       `json:"projected_due_date"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	IsPaidInMonth     bool            `json:"is_paid_in_month"`
}

// MonthlyReport is the receivables projection for one calendar month.
type MonthlyReport struct {
	Month      time.Month      `json:"month"`
	Entries    []ReportEntry   `json:"entries"`
	MonthTotal decimal.Decimal `json:"month_total"`
	MonthPaid  decimal.Decimal `json:"month_paid"`
}

// BuildMonthlyReport expands every debtor's installment schedule into
// per-month entries and keeps the ones falling in the target month.
//
// Each installment i (zero-indexed) is projected to due date + i calendar
// months. Filtering matches the month of year only, across all years: a
// schedule spanning multiple years contributes every one of its January
// installments to the January bucket. An installment counts as paid when
// i < PaidInstallments. Entry order follows the debtor collection order.
func BuildMonthlyReport(debtors []*Debtor, month time.Month) *MonthlyReport {
	report := &MonthlyReport{
		Month:      month,
		Entries:    []ReportEntry{},
		MonthTotal: decimal.Zero,
		MonthPaid:  decimal.Zero,
	}

	for _, d := range debtors {
		for i := 0; i < d.Installments; i++ {
			projected := fincalc.AddMonths(d.DueDate, i)
			if projected.Month() != month {
				continue
			}

			paid := i < d.PaidInstallments
			report.Entries = append(report.Entries, ReportEntry{
				DebtorID:          d.ID,
				DebtorName:        d.Name,
				InstallmentNumber: i + 1,
				Installments:      d.Installments,
				ProjectedDueDate:  projected,
				MonthlyPayment:    d.MonthlyPayment,
				IsPaidInMonth:     paid,
			})

			report.MonthTotal = report.MonthTotal.Add(d.MonthlyPayment)
			if paid {
				report.MonthPaid = report.MonthPaid.Add(d.MonthlyPayment)
			}
		}
	}

	return report
}

// BuildSummary computes the dashboard aggregates. Overdue counting uses the
// derived status for the given day, not the stored field.
func BuildSummary(debtors []*Debtor, today time.Time) *Summary {
	summary := &Summary{
		DebtorCount:        len(debtors),
		TotalLoaned:        decimal.Zero,
		MonthlyReceivable:  decimal.Zero,
		OutstandingBalance: decimal.Zero,
	}

	for _, d := range debtors {
		summary.TotalLoaned = summary.TotalLoaned.Add(d.Amount)

		status := EffectiveStatus(d, today)
		if status == StatusOverdue {
			summary.OverdueCount++
		}
		if status != StatusPaid {
			summary.MonthlyReceivable = summary.MonthlyReceivable.Add(d.MonthlyPayment)
			summary.OutstandingBalance = summary.OutstandingBalance.Add(d.RemainingBalance())
		}
	}

	return summary
}
