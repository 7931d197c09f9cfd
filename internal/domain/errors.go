package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by stores, services and the HTTP layer.
// The transport layer maps them to status codes in one place.
var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidationMissing = errors.New("required field missing")
	ErrAuthFailure       = errors.New("invalid email or password")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrSessionNotFound   = errors.New("session not found")
)

// TransitionError describes a rejected status change.
type TransitionError struct {
	Lifecycle string
	From      Status
	To        Status
	Reason    string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s: %s", e.Lifecycle, e.From, e.To, e.Reason)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// ValidationError lists the required fields a draft is missing.
type ValidationError struct {
	Kind   string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing %s", e.Kind, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidationMissing }

type requiredField struct {
	name    string
	present bool
}

func field(name, value string) requiredField {
	return requiredField{name: name, present: strings.TrimSpace(value) != ""}
}

func checkRequired(kind string, fields ...requiredField) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Kind: kind, Fields: missing}
}
