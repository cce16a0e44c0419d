// Package xiter provides adapters for Go 1.23+ iter.Seq, including Batched and Pairwise.
//
// This file contains adapters that group neighbouring elements.
package xiter

import (
	"iter"

	"github.com/norio-nomura/lazyseq/pkg/seqerr"
)

// Batched yields consecutive chunks of n elements. The last chunk holds the remainder and is never empty.
// Batched panics with seqerr.ErrInvalidArgument if n < 1.
func Batched[T any](seq iter.Seq[T], n int) iter.Seq[[]T] {
	if n < 1 {
		seqerr.InvalidArgument("batched", "n %d should be at least 1", n)
	}
	return func(yield func([]T) bool) {
		batch := make([]T, 0, n)
		for v := range seq {
			batch = append(batch, v)
			if len(batch) == n {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, n)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}

// Pairwise yields overlapping pairs of consecutive elements: [v0 v1], [v1 v2], ...
// Sequences with fewer than two elements yield nothing.
func Pairwise[T any](seq iter.Seq[T]) iter.Seq[[2]T] {
	return func(yield func([2]T) bool) {
		var prev T
		havePrev := false
		for v := range seq {
			if havePrev && !yield([2]T{prev, v}) {
				return
			}
			prev, havePrev = v, true
		}
	}
}
