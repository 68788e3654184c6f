package core

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
)

// ArgumentError reports a required argument that was missing or unusable.
type ArgumentError struct {
	Operation string
	Argument  string
	Err       error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: argument %s: %v", e.Operation, e.Argument, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// NewArgumentError returns an ArgumentError wrapping ErrInvalidArgument.
func NewArgumentError(operation, argument, reason string) *ArgumentError {
	return &ArgumentError{
		Operation: operation,
		Argument:  argument,
		Err:       fmt.Errorf("%w: %s", ErrInvalidArgument, reason),
	}
}
