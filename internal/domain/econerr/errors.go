// Package econerr defines the error kinds shared by the series pipeline.
// Kinds classify failures for the retry policy and the HTTP layer; they are
// deliberately flat (no hierarchy) and carried by a single wrapping Error.
package econerr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindInvalidDateFormat Kind = "INVALID_DATE_FORMAT"
	KindInvalidDateRange  Kind = "INVALID_DATE_RANGE"
	KindInvalidInput      Kind = "INVALID_INPUT"
	KindNoDataReturned    Kind = "NO_DATA_RETURNED"
	KindTransformation    Kind = "TRANSFORMATION_ERROR"
	KindNetwork           Kind = "NETWORK_ERROR"
	KindAPI               Kind = "API_ERROR"
	KindDataSource        Kind = "DATA_SOURCE_ERROR"
	KindGeneral           Kind = "GENERAL_ERROR"
)

// Error carries a kind plus an optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf creates an error of the given kind with formatting.
func Newf(kind Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// Wrap creates an error of the given kind wrapping cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// KindOf extracts the kind from err, walking the wrap chain.
// Unclassified errors report KindGeneral.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindGeneral
}

// IsValidation reports whether err is an input-validation failure.
// Validation failures are never retried.
func IsValidation(err error) bool {
	switch KindOf(err) {
	case KindInvalidDateFormat, KindInvalidDateRange, KindInvalidInput:
		return true
	}
	return false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
