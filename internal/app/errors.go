package app

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField indicates a required input was absent.
	ErrMissingField = errors.New("is required")
	// ErrInvalidValue indicates an input was present but unusable.
	ErrInvalidValue = errors.New("is invalid")
	// ErrUnknownCategory indicates a food category outside the catalog.
	ErrUnknownCategory = errors.New("unknown food category")
)

// ValidationError ties a validation failure to the offending field.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s: %s", e.Field, e.Err, e.Reason)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func missing(field string) error {
	return &ValidationError{Field: field, Err: ErrMissingField}
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason, Err: ErrInvalidValue}
}

// IsValidation reports whether err is a client-side input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) || errors.Is(err, ErrInvalidValue)
}
