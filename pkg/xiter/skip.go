// Package xiter provides adapters for Go 1.23+ iter.Seq, including Skip and ISlice.
//
// This file contains adapters that drop leading or interleaved elements.
package xiter

import (
	"iter"

	"github.com/norio-nomura/lazyseq/pkg/seqerr"
	"github.com/norio-nomura/lazyseq/pkg/source"
)

// Skip drops the first n elements of seq and yields the rest.
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// SkipWhile drops leading elements while pred(v, i) holds, then yields the first element that fails pred
// and everything after it. pred is not called again after the first failure.
func SkipWhile[T any](seq iter.Seq[T], pred func(T, int) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipping := true
		for i, v := range Enumerate(seq) {
			if skipping {
				if pred(v, i) {
					continue
				}
				skipping = false
			}
			if !yield(v) {
				return
			}
		}
	}
}

// DropWhile is an alias of SkipWhile.
func DropWhile[T any](seq iter.Seq[T], pred func(T, int) bool) iter.Seq[T] {
	return SkipWhile(seq, pred)
}

// StepBy yields every step-th element, starting with the first.
// StepBy panics with seqerr.ErrInvalidArgument if step < 1.
func StepBy[T any](seq iter.Seq[T], step int) iter.Seq[T] {
	if step < 1 {
		seqerr.InvalidArgument("stepBy", "step %d should be positive", step)
	}
	return ISliceFrom(seq, 0, step)
}

// ISlice yields the elements of seq at indices start, start+step, ... below end.
// bounds is (end), (start, end) or (start, end, step), as for source.Range.
// seq is not pulled past index end-1.
//
// ISlice panics with seqerr.ErrInvalidArgument if step < 1, if start or end is negative,
// or if bounds does not hold 1 to 3 values.
func ISlice[T any](seq iter.Seq[T], bounds ...int) iter.Seq[T] {
	start, end, step := source.Bounds("islice", bounds)
	checkSlice(start, end, step)
	return islice(seq, start, step, func(next int) bool { return next < end })
}

// ISliceFrom is ISlice without an upper bound. step defaults to 1.
func ISliceFrom[T any](seq iter.Seq[T], start int, step ...int) iter.Seq[T] {
	s := 1
	switch len(step) {
	case 0:
	case 1:
		s = step[0]
	default:
		seqerr.InvalidArgument("islice", "expected at most 1 step, got %d", len(step))
	}
	checkSlice(start, start, s)
	return islice(seq, start, s, func(int) bool { return true })
}

func checkSlice(start, end, step int) {
	if step < 1 {
		seqerr.InvalidArgument("islice", "step %d should be positive", step)
	}
	if start < 0 || end < 0 {
		seqerr.InvalidArgument("islice", "indices %d:%d should not be negative", start, end)
	}
}

// islice yields the elements at start, start+step, ... as long as inRange accepts the index.
func islice[T any](seq iter.Seq[T], start, step int, inRange func(int) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		next := start
		if !inRange(next) {
			return
		}
		for i, v := range Enumerate(seq) {
			if i != next {
				continue
			}
			if !yield(v) {
				return
			}
			next += step
			if !inRange(next) {
				return
			}
		}
	}
}
