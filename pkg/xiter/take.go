// Package xiter provides adapters for Go 1.23+ iter.Seq, including Take.
//
// This file contains adapters that end a sequence early.
package xiter

import "iter"

// Take yields at most the first n elements of seq. seq is not pulled again once n elements have been yielded.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// TakeWhile yields leading elements while pred(v, i) holds and stops at the first element that fails it.
func TakeWhile[T any](seq iter.Seq[T], pred func(T, int) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, v := range Enumerate(seq) {
			if !pred(v, i) || !yield(v) {
				return
			}
		}
	}
}
