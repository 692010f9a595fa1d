package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lendly/loan-tracker/internal/domain"
	"github.com/lendly/loan-tracker/internal/notify"
	"github.com/lendly/loan-tracker/internal/repository"
	"github.com/lendly/loan-tracker/pkg/brdoc"
	customError "github.com/lendly/loan-tracker/pkg/errors"
	"github.com/lendly/loan-tracker/pkg/fincalc"
)

// DebtorService owns the debtor collection and every derived computation
// over it: payment math, live status, dashboard summary and the monthly
// receivables report.
type DebtorService struct {
	repo   repository.DebtorRepository
	linker notify.WhatsAppLinker
	cpf    brdoc.ContactValidator
	phone  brdoc.ContactValidator
	logger *slog.Logger
	now    func() time.Time
}

func NewDebtorService(repo repository.DebtorRepository, linker notify.WhatsAppLinker, logger *slog.Logger) *DebtorService {
	return &DebtorService{
		repo:   repo,
		linker: linker,
		cpf:    brdoc.CPF{},
		phone:  brdoc.Phone{},
		logger: logger.With("component", "DebtorService"),
		now:    time.Now,
	}
}

// Create registers a new debtor. The monthly payment is derived here from
// amount, rate and installment count. Contact fields are checked softly:
// a malformed CPF or phone produces a warning but never blocks the record.
func (s *DebtorService) Create(ctx context.Context, req *domain.CreateDebtorRequest) (*domain.Debtor, []string, error) {
	dueDate, err := domain.ParseDate(req.DueDate)
	if err != nil {
		return nil, nil, customError.WrapInvalidDueDate(req.DueDate)
	}

	payment, err := s.monthlyPayment(req.Amount, req.InterestRate, req.Installments)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	debtor := &domain.Debtor{
		ID:               uuid.New(),
		Name:             req.Name,
		CPF:              s.cpf.Format(req.CPF),
		Phone:            s.phone.Format(req.Phone),
		Amount:           req.Amount,
		Installments:     req.Installments,
		PaidInstallments: 0,
		InterestRate:     req.InterestRate,
		MonthlyPayment:   payment,
		DueDate:          dueDate,
		Status:           domain.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, debtor); err != nil {
		return nil, nil, err
	}

	warnings := s.contactWarnings(req.CPF, req.Phone)
	s.logger.Info("debtor created", "debtor_id", debtor.ID, "installments", debtor.Installments)
	return debtor, warnings, nil
}

// Update edits a debtor's fields and recomputes the monthly payment from the
// possibly changed amount, rate and installment count. Paid installments and
// stored status are preserved unless the request supplies them explicitly;
// already-recorded installments are not reconciled against a changed
// schedule.
func (s *DebtorService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateDebtorRequest) (*domain.Debtor, []string, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	dueDate, err := domain.ParseDate(req.DueDate)
	if err != nil {
		return nil, nil, customError.WrapInvalidDueDate(req.DueDate)
	}

	payment, err := s.monthlyPayment(req.Amount, req.InterestRate, req.Installments)
	if err != nil {
		return nil, nil, err
	}

	paidInstallments := current.PaidInstallments
	if req.PaidInstallments != nil {
		paidInstallments = *req.PaidInstallments
	}
	if paidInstallments < 0 || paidInstallments > req.Installments {
		return nil, nil, customError.WrapInvalidInstallment(paidInstallments)
	}

	status := current.Status
	if req.Status != nil {
		switch *req.Status {
		case domain.StatusPending, domain.StatusPaid, domain.StatusOverdue:
			status = *req.Status
		default:
			return nil, nil, customError.WrapInvalidStatus(string(*req.Status))
		}
	}

	updated := &domain.Debtor{
		ID:               current.ID,
		Name:             req.Name,
		CPF:              s.cpf.Format(req.CPF),
		Phone:            s.phone.Format(req.Phone),
		Amount:           req.Amount,
		Installments:     req.Installments,
		PaidInstallments: paidInstallments,
		InterestRate:     req.InterestRate,
		MonthlyPayment:   payment,
		DueDate:          dueDate,
		Status:           status,
		CreatedAt:        current.CreatedAt,
		UpdatedAt:        s.now(),
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, nil, err
	}

	return updated, s.contactWarnings(req.CPF, req.Phone), nil
}

// Delete removes a debtor. There are no cascading effects.
func (s *DebtorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("debtor deleted", "debtor_id", id)
	return nil
}

// PayInstallment records a single paid installment.
func (s *DebtorService) PayInstallment(ctx context.Context, id uuid.UUID) (*domain.DebtorView, error) {
	debtor, err := s.repo.PayInstallment(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.view(debtor)
	return &view, nil
}

// PayTotal settles the remaining debt in one step.
func (s *DebtorService) PayTotal(ctx context.Context, id uuid.UUID) (*domain.DebtorView, error) {
	debtor, err := s.repo.PayTotal(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.view(debtor)
	return &view, nil
}

// Get returns one debtor with its derived read-time fields.
func (s *DebtorService) Get(ctx context.Context, id uuid.UUID) (*domain.DebtorView, error) {
	debtor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.view(debtor)
	return &view, nil
}

// List returns the full collection with derived fields, in insertion order.
func (s *DebtorService) List(ctx context.Context) ([]domain.DebtorView, error) {
	debtors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.DebtorView, 0, len(debtors))
	for _, d := range debtors {
		views = append(views, s.view(d))
	}
	return views, nil
}

// Overdue returns the debtors whose derived status is overdue, each carrying
// a prefilled reminder link.
func (s *DebtorService) Overdue(ctx context.Context) ([]domain.OverdueDebtor, error) {
	debtors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	overdue := make([]domain.OverdueDebtor, 0)
	for _, d := range debtors {
		if domain.EffectiveStatus(d, today) != domain.StatusOverdue {
			continue
		}
		overdue = append(overdue, domain.OverdueDebtor{
			DebtorView:  s.view(d),
			ReminderURL: s.linker.ReminderLink(d),
		})
	}
	return overdue, nil
}

// Summary computes the dashboard aggregates for the current day.
func (s *DebtorService) Summary(ctx context.Context) (*domain.Summary, error) {
	debtors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildSummary(debtors, s.now()), nil
}

// MonthlyReport projects every installment schedule into the given calendar
// month (1-12). Matching is by month of year only, across all years.
func (s *DebtorService) MonthlyReport(ctx context.Context, month int) (*domain.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, customError.WrapInvalidMonth(month)
	}

	debtors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildMonthlyReport(debtors, time.Month(month)), nil
}

func (s *DebtorService) view(d *domain.Debtor) domain.DebtorView {
	return domain.DebtorView{
		Debtor:           *d,
		EffectiveStatus:  domain.EffectiveStatus(d, s.now()),
		RemainingBalance: d.RemainingBalance(),
	}
}

func (s *DebtorService) monthlyPayment(amount, rate decimal.Decimal, periods int) (decimal.Decimal, error) {
	payment, err := fincalc.MonthlyPayment(amount, rate, periods)
	switch err {
	case nil:
		return payment, nil
	case fincalc.ErrInvalidPrincipal:
		return payment, customError.WrapInvalidAmount(amount.String())
	case fincalc.ErrInvalidPeriods:
		return payment, customError.WrapInvalidInstallment(periods)
	case fincalc.ErrNegativeRate:
		return payment, customError.WrapInvalidRate(rate.String())
	default:
		return payment, err
	}
}

func (s *DebtorService) contactWarnings(cpf, phone string) []string {
	var warnings []string
	if cpf != "" && !s.cpf.Validate(cpf) {
		warnings = append(warnings, "cpf does not look valid")
	}
	if phone != "" && !s.phone.Validate(phone) {
		warnings = append(warnings, "phone does not look valid")
	}
	return warnings
}
