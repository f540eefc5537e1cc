package http

import (
	"fmt"
	"net/http"

	"MacroPulse/internal/domain/econerr"
)

// AppError represents application-level error with HTTP status.
type AppError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Field   string                 `json:"field,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Status  int                    `json:"-"`
	Err     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error.
func NewAppError(code, field, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Status:  status,
		Params:  make(map[string]interface{}),
	}
}

// WithParam sets a single error param.
func (e *AppError) WithParam(key string, value interface{}) *AppError {
	if e.Params == nil {
		e.Params = make(map[string]interface{})
	}
	e.Params[key] = value
	return e
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// NotFoundError creates a 404 error.
func NotFoundError(message string) *AppError {
	return NewAppError("ERR_NOT_FOUND", "", message, http.StatusNotFound)
}

// BadRequestError creates a 400 error.
func BadRequestError(message string) *AppError {
	return NewAppError("ERR_BAD_REQUEST", "", message, http.StatusBadRequest)
}

// BadRequestErrorf creates a 400 error with formatting.
func BadRequestErrorf(format string, a ...interface{}) *AppError {
	return BadRequestError(fmt.Sprintf(format, a...))
}

// BadGatewayError creates a 502 error.
func BadGatewayError(message string) *AppError {
	return NewAppError("ERR_UPSTREAM", "", message, http.StatusBadGateway)
}

// InternalError creates a 500 error.
func InternalError(message string) *AppError {
	return NewAppError("ERR_INTERNAL", "", message, http.StatusInternalServerError)
}

// kindCodes maps domain error kinds to wire codes and statuses.
var kindCodes = map[econerr.Kind]struct {
	code   string
	status int
}{
	econerr.KindInvalidDateFormat: {"ERR_INVALID_DATE_FORMAT", http.StatusBadRequest},
	econerr.KindInvalidDateRange:  {"ERR_INVALID_DATE_RANGE", http.StatusBadRequest},
	econerr.KindInvalidInput:      {"ERR_INVALID_INPUT", http.StatusBadRequest},
	econerr.KindNoDataReturned:    {"ERR_NO_DATA", http.StatusNotFound},
	econerr.KindDataSource:        {"ERR_UPSTREAM", http.StatusBadGateway},
	econerr.KindAPI:               {"ERR_UPSTREAM", http.StatusBadGateway},
	econerr.KindNetwork:           {"ERR_UPSTREAM", http.StatusBadGateway},
	econerr.KindTransformation:    {"ERR_TRANSFORM", http.StatusInternalServerError},
}

// FromDomainError maps a domain error to its HTTP representation. Unknown
// errors become a generic 500 so internals never leak to the client.
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}
	if m, ok := kindCodes[econerr.KindOf(err)]; ok {
		return NewAppError(m.code, "", err.Error(), m.status).WithError(err)
	}
	return InternalError("internal server error").WithError(err)
}
