// Package xiter provides adapters for Go 1.23+ iter.Seq, including Iterator.
//
// This file contains Iterator, a one-shot handle over a sequence.
package xiter

import (
	"fmt"
	"iter"

	"github.com/norio-nomura/lazyseq/pkg/seqerr"
)

// Iterator is a single-pass cursor over a sequence.
// Values taken with Next are gone for good, and All hands out the remaining values only once.
type Iterator[T any] struct {
	seq      iter.Seq[T]
	next     func() (T, bool)
	stop     func()
	consumed bool
}

// From wraps seq in an Iterator. seq is not started until the first call to Next or All.
func From[T any](seq iter.Seq[T]) *Iterator[T] {
	return &Iterator[T]{seq: seq}
}

// Next returns the next value, or false once the sequence is exhausted or stopped.
func (it *Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		it.next, it.stop = iter.Pull(it.seq)
	}
	return it.next()
}

// Stop releases the underlying sequence. Next returns false afterwards.
func (it *Iterator[T]) Stop() {
	if it.stop == nil {
		it.next, it.stop = func() (T, bool) {
			var zero T
			return zero, false
		}, func() {}
	}
	it.stop()
}

// Consume marks the Iterator as consumed. The second call returns an error wrapping seqerr.ErrAlreadyConsumed.
func (it *Iterator[T]) Consume() error {
	if it.consumed {
		return fmt.Errorf("consume: %w", seqerr.ErrAlreadyConsumed)
	}
	it.consumed = true
	return nil
}

// All consumes the Iterator and returns a sequence of the values not yet taken by Next.
// It panics with an error wrapping seqerr.ErrAlreadyConsumed if the Iterator was already consumed.
func (it *Iterator[T]) All() iter.Seq[T] {
	if err := it.Consume(); err != nil {
		panic(err)
	}
	return func(yield func(T) bool) {
		defer it.Stop()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
