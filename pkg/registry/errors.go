package registry

import (
	"errors"
	"fmt"
)

// Common error variables for registry operations.
var (
	// ErrTypeNotFound indicates a name has no registered class
	ErrTypeNotFound = errors.New("type not found")

	// ErrAlreadyRegistered indicates a name is already bound to a class
	ErrAlreadyRegistered = errors.New("type already registered")

	// ErrInvalidName indicates a name that cannot be registered
	ErrInvalidName = errors.New("invalid type name")
)

// LookupError carries the name involved in a failed registry operation.
type LookupError struct {
	Name string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("type %q: %v", e.Name, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
