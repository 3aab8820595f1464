package application

import (
	"errors"
	"fmt"

	"bookkeeper/internal/domain"
)

// ErrInvalidOperation marks an edit that cannot be carried out on the current state
var ErrInvalidOperation = errors.New("invalid operation")

// Hierarchy error kinds, re-exported for adapters
var (
	ErrDuplicateKey       = domain.ErrDuplicateKey
	ErrBrokenReference    = domain.ErrBrokenReference
	ErrCyclicReference    = domain.ErrCyclicReference
	ErrStructuralMismatch = domain.ErrStructuralMismatch
	ErrUnknownKey         = domain.ErrUnknownKey
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SaveError reports a failure to persist a flattened session.
// Err keeps the underlying hierarchy error for errors.Is.
type SaveError struct {
	Count int
	Err   error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("cannot save %d categories: %v", e.Count, e.Err)
}

func (e *SaveError) Is(target error) bool {
	return target == ErrInvalidOperation
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
