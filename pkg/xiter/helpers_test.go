package xiter

import (
	"errors"
	"iter"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/norio-nomura/lazyseq/pkg/seqerr"
)

// counted wraps seq and counts how many elements have been pulled from it.
func counted[T any](seq iter.Seq[T], pulls *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			*pulls++
			if !yield(v) {
				return
			}
		}
	}
}

// once returns a sequence that fails the test when it is ranged over a second time.
func once[T any](t *testing.T, vals ...T) iter.Seq[T] {
	t.Helper()
	used := false
	return func(yield func(T) bool) {
		if used {
			t.Errorf("sequence ranged over twice")
			return
		}
		used = true
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

func assertInvalidArgument(t *testing.T, f func()) {
	t.Helper()
	var err error
	func() {
		defer func() { err, _ = recover().(error) }()
		f()
	}()
	assert.Assert(t, errors.Is(err, seqerr.ErrInvalidArgument), "got %v", err)
}
