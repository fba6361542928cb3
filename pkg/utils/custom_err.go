package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrProfileNotFound        = errors.New("user profile not found")
	ErrBadgeNotFound          = errors.New("badge not found")
	ErrInvalidUserID          = errors.New("invalid user id")
	ErrUnauthenticated        = errors.New("unauthenticated")
	ErrVersionConflict        = errors.New("profile was modified concurrently")
	ErrDatabaseError          = errors.New("database error")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected response from AI service")
	ErrAITimeout              = errors.New("AI service timed out")
	ErrAIUnavailable          = errors.New("AI service unavailable")
)

// ValidationError carries field-level detail for a rejected request.
type ValidationError struct {
	Details map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Details: map[string]string{field: message}}
}

func (e *ValidationError) Add(field, message string) {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[field] = message
}

func (e *ValidationError) Empty() bool { return len(e.Details) == 0 }

// Err returns nil when no violation was recorded.
func (e *ValidationError) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, e.Details[f])
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// DBError tags a storage failure so it maps to a generic 500.
func DBError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDatabaseError, op, err)
}
