package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed hierarchies
var (
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrBrokenReference    = errors.New("broken parent reference")
	ErrCyclicReference    = errors.New("cyclic parent reference")
	ErrStructuralMismatch = errors.New("tree does not match ordered records")
	ErrUnknownKey         = errors.New("unknown key")
)

// HierarchyError reports which record violated a hierarchy invariant.
// Aggregate errors concern the whole set and carry no ID.
type HierarchyError struct {
	Kind      error
	ID        Key
	ParentID  *Key
	Detail    string
	Aggregate bool
}

func (e *HierarchyError) Error() string {
	msg := e.Kind.Error()
	if !e.Aggregate {
		msg += fmt.Sprintf(": id %d", e.ID)
	}
	if e.ParentID != nil {
		msg += fmt.Sprintf(" (parent %d)", *e.ParentID)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *HierarchyError) Is(target error) bool {
	return target == e.Kind
}
