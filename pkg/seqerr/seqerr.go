// Package seqerr defines the error values shared by the sequence packages.
package seqerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is raised when a combinator or source receives a parameter it cannot work with.
	// It is raised as a panic when the combinator is built, before any element is produced.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvariantViolation is raised when code asserts a condition that does not hold, such as unwrapping None.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrAlreadyConsumed is returned when a one-shot iterator is consumed twice.
	ErrAlreadyConsumed = errors.New("iterator already consumed")
)

// InvalidArgument panics with an error wrapping ErrInvalidArgument.
func InvalidArgument(op string, format string, args ...any) {
	panic(fmt.Errorf("%s: %w: %s", op, ErrInvalidArgument, fmt.Sprintf(format, args...)))
}

// InvariantViolation panics with an error wrapping ErrInvariantViolation.
func InvariantViolation(msg string) {
	panic(fmt.Errorf("%w: %s", ErrInvariantViolation, msg))
}
