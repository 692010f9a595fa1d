package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lendly/loan-tracker/internal/domain"
	"github.com/lendly/loan-tracker/internal/service"
	customError "github.com/lendly/loan-tracker/pkg/errors"
	"github.com/lendly/loan-tracker/pkg/response"
)

type DebtorHandler struct {
	service   *service.DebtorService
	validator *validator.Validate
}

func NewDebtorHandler(service *service.DebtorService) *DebtorHandler {
	return &DebtorHandler{
		service:   service,
		validator: newValidator(),
	}
}

// Create registers a new debtor
func (h *DebtorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDebtorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.UnprocessableEntity(w, "Invalid debtor data", err)
		return
	}

	debtor, warnings, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.JSONWithWarnings(w, http.StatusCreated, debtor, warnings)
}

// List returns all debtors with their derived status
func (h *DebtorHandler) List(w http.ResponseWriter, r *http.Request) {
	debtors, err := h.service.List(r.Context())
	if err != nil {
		writeBusinessError(w, err)
		return
	}
	response.Success(w, debtors)
}

// Get returns a single debtor
func (h *DebtorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := debtorID(w, r)
	if !ok {
		return
	}

	debtor, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeBusinessError(w, err)
		return
	}
	response.Success(w, debtor)
}

// Update edits a debtor and recomputes the monthly payment
func (h *DebtorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := debtorID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateDebtorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.UnprocessableEntity(w, "Invalid debtor data", err)
		return
	}

	debtor, warnings, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	response.JSONWithWarnings(w, http.StatusOK, debtor, warnings)
}

// Delete removes a debtor
func (h *DebtorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := debtorID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeBusinessError(w, err)
		return
	}
	response.Success(w, map[string]string{"id": id.String()})
}

// PayInstallment records one paid installment
func (h *DebtorHandler) PayInstallment(w http.ResponseWriter, r *http.Request) {
	id, ok := debtorID(w, r)
	if !ok {
		return
	}

	debtor, err := h.service.PayInstallment(r.Context(), id)
	if err != nil {
		writeBusinessError(w, err)
		return
	}
	response.Success(w, debtor)
}

// PayTotal settles the remaining debt
func (h *DebtorHandler) PayTotal(w http.ResponseWriter, r *http.Request) {
	id, ok := debtorID(w, r)
	if !ok {
		return
	}

	debtor, err := h.service.PayTotal(r.Context(), id)
	if err != nil {
		writeBusinessError(w, err)
		return
	}
	response.Success(w, debtor)
}

// Overdue lists debtors past their due date with reminder links
func (h *DebtorHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	overdue, err := h.service.Overdue(r.Context())
	if err != nil {
		writeBusinessError(w, err)
		return
	}
	response.Success(w, overdue)
}

// Summary returns the dashboard aggregates
func (h *DebtorHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeBusinessError(w, err)
		return
	}
	response.Success(w, summary)
}

// MonthlyReport projects installment schedules into the requested month
func (h *DebtorHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	monthParam := r.URL.Query().Get("month")
	month, err := strconv.Atoi(monthParam)
	if err != nil {
		response.BadRequest(w, "month must be an integer between 1 and 12", err)
		return
	}

	report, err := h.service.MonthlyReport(r.Context(), month)
	if err != nil {
		writeBusinessError(w, err)
		return
	}
	response.Success(w, report)
}

func debtorID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(w, "Invalid debtor ID", err)
		return uuid.Nil, false
	}
	return id, true
}

// writeBusinessError maps domain errors onto HTTP status codes.
func writeBusinessError(w http.ResponseWriter, err error) {
	var bizErr *customError.BusinessError
	code := ""
	if errors.As(err, &bizErr) {
		code = bizErr.Code
	}

	switch {
	case errors.Is(err, customError.ErrDebtorNotFound):
		response.ErrorWithCode(w, http.StatusNotFound, code, "Debtor not found", err)
	case errors.Is(err, customError.ErrDebtorFullyPaid):
		response.ErrorWithCode(w, http.StatusConflict, code, "Debtor is already fully paid", err)
	case errors.Is(err, customError.ErrInvalidAmount),
		errors.Is(err, customError.ErrInvalidInstallment),
		errors.Is(err, customError.ErrInvalidRate),
		errors.Is(err, customError.ErrInvalidDueDate),
		errors.Is(err, customError.ErrInvalidMonth),
		errors.Is(err, customError.ErrInvalidStatus):
		response.ErrorWithCode(w, http.StatusUnprocessableEntity, code, "Invalid debtor data", err)
	case errors.Is(err, customError.ErrInvalidCredentials),
		errors.Is(err, customError.ErrSessionNotFound):
		response.ErrorWithCode(w, http.StatusUnauthorized, code, "Unauthorized", err)
	default:
		response.InternalServerError(w, "Unexpected error", err)
	}
}
