package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidRate indicates that no usable (> 0) exchange rate could be resolved for a record.
// It is a data-integrity fault: the stored record or the organization rate must be corrected.
var ErrInvalidRate = errors.New("invalid exchange rate")

// ErrAlreadyFrozen indicates an attempt to capture a contract's original value a second time.
var ErrAlreadyFrozen = errors.New("contract value already frozen")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// InvalidRateError reports the record and rates that failed resolution.
type InvalidRateError struct {
	RecordID     string
	CurrencyCode string
	StoredRate   *decimal.Decimal
	CurrentRate  decimal.Decimal
}

func (e *InvalidRateError) Error() string {
	stored := "none"
	if e.StoredRate != nil {
		stored = e.StoredRate.String()
	}
	return fmt.Sprintf("%v: record %q (%s) has stored rate %s and current rate %s",
		ErrInvalidRate, e.RecordID, e.CurrencyCode, stored, e.CurrentRate.String())
}

// Is lets errors.Is(err, ErrInvalidRate) match.
func (e *InvalidRateError) Is(target error) bool {
	return target == ErrInvalidRate
}
