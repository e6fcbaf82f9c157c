package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows how it should be rendered to a client.
type HTTPError struct {
	Code    int
	Message string
	Details any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError with the given status code and client-facing message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// WithDetails returns a copy carrying details.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

// FieldError describes one failed validation rule on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError creates a 400 carrying the list of field errors.
func NewValidationError(fields []FieldError) *HTTPError {
	return &HTTPError{
		Code:    http.StatusBadRequest,
		Message: MessageValidationFailed,
		Details: fields,
	}
}

// NewInternalError hides err behind a generic 500 unless expose is set.
func NewInternalError(err error, expose bool) *HTTPError {
	e := &HTTPError{Code: http.StatusInternalServerError, Message: MessageInternalServerError}
	if expose && err != nil {
		e.Details = err.Error()
	}
	return e
}

const (
	MessageInternalServerError = "Internal server error"
	MessageValidationFailed    = "Validation failed"
)

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, MessageInternalServerError)
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
	ErrRouteNotFound       = NewHTTPError(http.StatusNotFound, "Route not found")
)
