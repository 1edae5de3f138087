package domain

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrNotFound               = errors.New("resource not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrMalformedImport        = errors.New("malformed import")
	ErrLocationUnavailable    = errors.New("location unavailable")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
	ErrExternalFetch          = errors.New("external fetch failed")
	ErrSlotNotFound           = errors.New("slot not found")
	ErrActivityNotFound       = errors.New("activity not found")
	ErrSpotNotFound           = errors.New("saved spot not found")
	ErrImageNotFound          = errors.New("image not found")
	ErrUnknownPane            = errors.New("unknown pane")
	ErrUnknownTranslateMode   = errors.New("unknown translate mode")
)

// FieldViolation describes one rejected input field.
type FieldViolation struct {
	Field   string
	Message string
}

// InputError is returned when user input fails validation. It matches
// ErrInvalidInput with errors.Is.
type InputError struct {
	Violations []FieldViolation
}

func (e *InputError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// LocationError carries the user-facing message for a failed proximity
// check. It matches ErrLocationUnavailable with errors.Is.
type LocationError struct {
	Message string
	Cause   error
}

func (e *LocationError) Error() string {
	if e.Cause != nil {
		return "location unavailable: " + e.Cause.Error()
	}
	return "location unavailable"
}

func (e *LocationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrLocationUnavailable, e.Cause}
	}
	return []error{ErrLocationUnavailable}
}
