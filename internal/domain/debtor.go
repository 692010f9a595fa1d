package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// DateLayout is the wire format for calendar dates. Due dates are calendar
// days, not timestamps; parsing them in the local zone avoids off-by-one
// shifts around midnight.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in the local time zone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}

// Debtor represents a borrower with a single active loan.
type Debtor struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	CPF              string          `json:"cpf"`
	Phone            string          `json:"phone"`
	Amount           decimal.Decimal `json:"amount"`
	Installments     int             `json:"installments"`
	PaidInstallments int             `json:"paid_installments"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	MonthlyPayment   decimal.Decimal `json:"monthly_payment"`
	DueDate          time.Time       `json:"due_date"`
	Status           Status          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// FullyPaid reports whether every installment has been satisfied.
func (d *Debtor) FullyPaid() bool {
	return d.PaidInstallments >= d.Installments
}

// RemainingBalance is the monthly payment times the installments still owed.
func (d *Debtor) RemainingBalance() decimal.Decimal {
	remaining := d.Installments - d.PaidInstallments
	if remaining <= 0 {
		return decimal.Zero
	}
	return d.MonthlyPayment.Mul(decimal.NewFromInt(int64(remaining)))
}

// EffectiveStatus derives the live status of a debtor for the given day.
// A stored paid status is authoritative and one-way. Otherwise the due date
// decides: strictly past due means overdue, anything else pending. The result
// is never written back to the record; "today" moves on its own, so this must
// be re-evaluated on every read.
func EffectiveStatus(d *Debtor, today time.Time) Status {
	if d.Status == StatusPaid {
		return StatusPaid
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	due := time.Date(d.DueDate.Year(), d.DueDate.Month(), d.DueDate.Day(), 0, 0, 0, 0, today.Location())

	if day.After(due) {
		return StatusOverdue
	}
	return StatusPending
}

// DTOs for requests and responses

type CreateDebtorRequest struct {
	Name         string          `json:"name" validate:"required"`
	CPF          string          `json:"cpf"`
	Phone        string          `json:"phone"`
	Amount       decimal.Decimal `json:"amount" validate:"decimal_gt=0"`
	Installments int             `json:"installments" validate:"required,gt=0"`
	InterestRate decimal.Decimal `json:"interest_rate" validate:"decimal_gte=0"`
	DueDate      string          `json:"due_date" validate:"required,datetime=2006-01-02"`
}

// UpdateDebtorRequest carries the editable fields of a debtor. Paid
// installments and stored status are preserved unless explicitly supplied.
type UpdateDebtorRequest struct {
	Name             string          `json:"name" validate:"required"`
	CPF              string          `json:"cpf"`
	Phone            string          `json:"phone"`
	Amount           decimal.Decimal `json:"amount" validate:"decimal_gt=0"`
	Installments     int             `json:"installments" validate:"required,gt=0"`
	InterestRate     decimal.Decimal `json:"interest_rate" validate:"decimal_gte=0"`
	DueDate          string          `json:"due_date" validate:"required,datetime=2006-01-02"`
	PaidInstallments *int            `json:"paid_installments,omitempty" validate:"omitempty,gte=0"`
	Status           *Status         `json:"status,omitempty"`
}

// DebtorView is a debtor plus its read-time derived fields.
type DebtorView struct {
	Debtor
	EffectiveStatus  Status          `json:"effective_status"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// OverdueDebtor is an overdue entry with its collection reminder link.
type OverdueDebtor struct {
	DebtorView
	ReminderURL string `json:"reminder_url"`
}

// Summary aggregates the dashboard figures across all debtors.
type Summary struct {
	DebtorCount        int             `json:"debtor_count"`
	TotalLoaned        decimal.Decimal `json:"total_loaned"`
	MonthlyReceivable  decimal.Decimal `json:"monthly_receivable"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	OverdueCount       int             `json:"overdue_count"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
