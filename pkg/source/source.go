// Package source provides sequences that are not built from another sequence:
// literal values, numeric ranges, counters, repeaters and the flattening of a sequence of sequences.
//
// Sequences from CountNum and Repeat (without a count) never end. Apply draining reducers to them
// only after bounding them, e.g. with xiter.Take.
package source

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/norio-nomura/lazyseq/pkg/seqerr"
)

// Number is the set of types Range and CountNum count with.
type Number interface {
	constraints.Integer | constraints.Float
}

// Of returns an iter.Seq[T] that yields all the given values in order.
func Of[T any](vals ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

// Bounds interprets the optional-argument convention shared by Range and xiter.ISlice:
// (end), (start, end) or (start, end, step). step defaults to 1.
// Any other count panics with seqerr.ErrInvalidArgument on behalf of op.
func Bounds[N Number](op string, bounds []N) (start, end, step N) {
	step = 1
	switch len(bounds) {
	case 1:
		end = bounds[0]
	case 2:
		start, end = bounds[0], bounds[1]
	case 3:
		start, end, step = bounds[0], bounds[1], bounds[2]
	default:
		seqerr.InvalidArgument(op, "expected 1 to 3 bounds, got %d", len(bounds))
	}
	return start, end, step
}

// Range yields start, start+step, ... while the value is below end (step > 0) or above end (step <= 0).
// bounds is (end), (start, end) or (start, end, step) with start 0 and step 1 by default.
//
// Termination is decided by comparing each value against end, not by precomputing a count, so a step
// that moves away from end (or a zero step with start > end) never terminates.
func Range[N Number](bounds ...N) iter.Seq[N] {
	start, end, step := Bounds("range", bounds)
	return func(yield func(N) bool) {
		if step > 0 {
			for v := start; v < end; v += step {
				if !yield(v) {
					return
				}
			}
			return
		}
		for v := start; v > end; v += step {
			if !yield(v) {
				return
			}
		}
	}
}

// CountNum yields start, start+step, start+2*step, ... without end. step defaults to 1.
func CountNum[N Number](start N, step ...N) iter.Seq[N] {
	var d N = 1
	switch len(step) {
	case 0:
	case 1:
		d = step[0]
	default:
		seqerr.InvalidArgument("countNum", "expected at most 1 step, got %d", len(step))
	}
	return func(yield func(N) bool) {
		for v := start; ; v += d {
			if !yield(v) {
				return
			}
		}
	}
}

// Repeat yields item forever, or exactly count times when count is given.
func Repeat[T any](item T, count ...int) iter.Seq[T] {
	switch len(count) {
	case 0:
		return func(yield func(T) bool) {
			for yield(item) {
			}
		}
	case 1:
		if count[0] < 0 {
			seqerr.InvalidArgument("repeat", "count %d should not be negative", count[0])
		}
	default:
		seqerr.InvalidArgument("repeat", "expected at most 1 count, got %d", len(count))
	}
	n := count[0]
	return func(yield func(T) bool) {
		for range Range(n) {
			if !yield(item) {
				return
			}
		}
	}
}

// ChainFromIterable yields every element of every inner sequence, in order.
// Each inner sequence is drained before the outer sequence is advanced.
func ChainFromIterable[T any](seqs iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}
