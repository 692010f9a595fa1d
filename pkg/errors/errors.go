package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrDebtorNotFound     = errors.New("debtor not found")
	ErrDebtorFullyPaid    = errors.New("all installments are already paid")
	ErrInvalidAmount      = errors.New("invalid loan amount")
	ErrInvalidInstallment = errors.New("invalid installment count")
	ErrInvalidRate        = errors.New("invalid interest rate")
	ErrInvalidDueDate     = errors.New("invalid due date")
	ErrInvalidMonth       = errors.New("invalid report month")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeDebtorNotFound     = "DEBTOR_NOT_FOUND"
	ErrCodeDebtorFullyPaid    = "DEBTOR_FULLY_PAID"
	ErrCodeInvalidAmount      = "INVALID_AMOUNT"
	ErrCodeInvalidInstallment = "INVALID_INSTALLMENT_COUNT"
	ErrCodeInvalidRate        = "INVALID_INTEREST_RATE"
	ErrCodeInvalidDueDate     = "INVALID_DUE_DATE"
	ErrCodeInvalidMonth       = "INVALID_MONTH"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeSessionNotFound    = "SESSION_NOT_FOUND"
	ErrCodeCacheError         = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapDebtorNotFound(id string) *BusinessError {
	return NewBusinessError(
		ErrCodeDebtorNotFound,
		fmt.Sprintf("Debtor with ID %s not found", id),
		ErrDebtorNotFound,
	)
}

func WrapDebtorFullyPaid(id string) *BusinessError {
	return NewBusinessError(
		ErrCodeDebtorFullyPaid,
		fmt.Sprintf("Debtor with ID %s has no remaining installments", id),
		ErrDebtorFullyPaid,
	)
}

func WrapInvalidAmount(amount string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidAmount,
		fmt.Sprintf("Loan amount %s must be greater than zero", amount),
		ErrInvalidAmount,
	)
}

func WrapInvalidInstallment(count int) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidInstallment,
		fmt.Sprintf("Installment count %d must be a positive integer", count),
		ErrInvalidInstallment,
	)
}

func WrapInvalidRate(rate string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidRate,
		fmt.Sprintf("Interest rate %s must not be negative", rate),
		ErrInvalidRate,
	)
}

func WrapInvalidDueDate(value string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidDueDate,
		fmt.Sprintf("Due date %q is not a valid calendar date", value),
		ErrInvalidDueDate,
	)
}

func WrapInvalidMonth(month int) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidMonth,
		fmt.Sprintf("Report month %d must be between 1 and 12", month),
		ErrInvalidMonth,
	)
}

func WrapInvalidStatus(value string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidStatus,
		fmt.Sprintf("Status %q is not one of pending, paid, overdue", value),
		ErrInvalidStatus,
	)
}

func WrapInvalidCredentials() *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidCredentials,
		"Invalid username or password",
		ErrInvalidCredentials,
	)
}

func WrapSessionNotFound() *BusinessError {
	return NewBusinessError(
		ErrCodeSessionNotFound,
		"Session not found or expired",
		ErrSessionNotFound,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
