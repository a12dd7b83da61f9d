package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")

	// ErrInvalidDate is returned when a raw date input cannot be parsed into
	// a calendar day. It is always reported inside a *ValidationError.
	ErrInvalidDate = errors.New("invalid date input")

	// ErrAirportNotFound is returned when a selected label does not match any
	// of the currently loaded airport options.
	ErrAirportNotFound = errors.New("airport option not found")

	// ErrFetchFailed marks a failed call to the flights API, as opposed to a
	// call that succeeded with zero results.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrMalformedRecord marks a flight record that cannot be formatted for
	// display (for example, one without a first leg).
	ErrMalformedRecord = errors.New("malformed flight record")
)

// Validation messages shared across entity sub-packages.
const (
	MsgRequired     = "is required"
	MsgMustNotEmpty = "must not be empty"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
//
// Cause optionally carries a more specific sentinel (such as ErrInvalidDate)
// so that errors.Is matches both ErrValidation and the cause.
type ValidationError struct {
	Fields map[string]string
	Cause  error
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValidation, e.Cause}
	}
	return []error{ErrValidation}
}

// NewFieldError returns a ValidationError for a single field.
func NewFieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
