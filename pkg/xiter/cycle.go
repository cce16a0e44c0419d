// Package xiter provides adapters for Go 1.23+ iter.Seq, including Cycle and Accumulate.
//
// This file contains adapters that keep a running buffer or total.
package xiter

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Cycle yields the elements of seq, remembering them, and then replays them forever.
// An empty seq yields nothing. If seq never ends, nothing is ever replayed.
// Memory grows with the length of seq.
func Cycle[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var saved []T
		for v := range seq {
			saved = append(saved, v)
			if !yield(v) {
				return
			}
		}
		if len(saved) == 0 {
			return
		}
		for {
			for _, v := range saved {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Addable is the set of types with a + operator.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Accumulate yields running totals: the first element, then the previous total + each next element.
func Accumulate[T Addable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var total T
		started := false
		for v := range seq {
			if started {
				total += v
			} else {
				total, started = v, true
			}
			if !yield(total) {
				return
			}
		}
	}
}

// Scan is an alias of Accumulate.
func Scan[T Addable](seq iter.Seq[T]) iter.Seq[T] {
	return Accumulate(seq)
}
