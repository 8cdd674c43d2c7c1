// Package errors provides custom error types for the billbook API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	stderrors "errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that
// copies produced by Wrap and WithMessage still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Access errors.
var (
	ErrInvalidAPIKey = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Customer errors.
var (
	ErrCustomerNotFound      = &AppError{Code: "CUSTOMER_NOT_FOUND", Message: "Customer not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCustomerName = &AppError{Code: "DUPLICATE_CUSTOMER_NAME", Message: "A customer with this name already exists", StatusCode: http.StatusConflict}
)

// Record and invoice errors.
var (
	ErrRecordNotFound         = &AppError{Code: "RECORD_NOT_FOUND", Message: "Record not found", StatusCode: http.StatusNotFound}
	ErrMalformedInvoiceNumber = &AppError{Code: "MALFORMED_INVOICE_NUMBER", Message: "Last invoice number is malformed", StatusCode: http.StatusConflict}
	ErrInvoiceNumberTaken     = &AppError{Code: "INVOICE_NUMBER_TAKEN", Message: "Invoice number was taken by another save; please retry", StatusCode: http.StatusConflict}
	ErrTotalMismatch          = &AppError{Code: "TOTAL_MISMATCH", Message: "Submitted total does not match the computed total", StatusCode: http.StatusBadRequest}
	ErrInvoiceRenderFailed    = &AppError{Code: "INVOICE_RENDER_FAILED", Message: "Failed to render invoice", StatusCode: http.StatusInternalServerError}
	ErrExportFailed           = &AppError{Code: "EXPORT_FAILED", Message: "Failed to export records", StatusCode: http.StatusInternalServerError}
)

// Filter notices. These are informational: the caller still gets a usable
// record set and only surfaces the notice to the user.
var (
	ErrNoFilterApplied = &AppError{Code: "NO_FILTER_APPLIED", Message: "No filters applied.", StatusCode: http.StatusOK}
	ErrNoMatch         = &AppError{Code: "NO_MATCH", Message: "No data found.", StatusCode: http.StatusOK}
)

// AsNotice returns the AppError behind err when it is informational, that is
// when its status is below 400. Real failures and nil report false.
func AsNotice(err error) (*AppError, bool) {
	var appErr *AppError
	if !stderrors.As(err, &appErr) || appErr.StatusCode >= http.StatusBadRequest {
		return nil, false
	}
	return appErr, true
}
