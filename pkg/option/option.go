// Package option provides Option, a container for a value that may be absent.
package option

import (
	"fmt"

	"github.com/norio-nomura/lazyseq/pkg/seqerr"
)

// Option holds either a value (Some) or nothing (None).
// The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Some(*p) if p is non-nil, otherwise None.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOK converts the comma-ok pair (v, ok) into an Option.
func FromOK[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unwrap returns the held value. It panics with an error wrapping seqerr.ErrInvariantViolation on None.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		seqerr.InvariantViolation("unwrap of None")
	}
	return o.value
}

// UnwrapOr returns the held value, or def on None.
func (o Option[T]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// Value returns the held value without checking; None yields the zero value of T.
func (o Option[T]) Value() T {
	return o.value
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map returns Some(f(v)) if o holds v. f is not called on None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}
