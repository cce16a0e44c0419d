// Package xiter provides adapters for Go 1.23+ iter.Seq, including Filter.
//
// This file contains Filter-related adapters.
package xiter

import (
	"iter"

	"github.com/norio-nomura/lazyseq/pkg/option"
)

// Filter returns a new iter.Seq[T] that yields only the elements of seq for which pred(v, i) returns true.
// i is the index of v in seq, not in the filtered output.
func Filter[T any](seq iter.Seq[T], pred func(T, int) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, v := range Enumerate(seq) {
			if pred(v, i) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// FilterMap yields the payload of f(v, i) for each element where it is Some, skipping None.
func FilterMap[T, U any](seq iter.Seq[T], f func(T, int) option.Option[U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for i, v := range Enumerate(seq) {
			if u, ok := f(v, i).Get(); ok {
				if !yield(u) {
					return
				}
			}
		}
	}
}

// Compress yields the elements of seq whose positional selector is true.
// It stops at the end of the shorter of seq and selectors.
func Compress[T any](seq iter.Seq[T], selectors iter.Seq[bool]) iter.Seq[T] {
	return Map(
		Filter(Zip(seq, selectors), func(z Zipped[T, bool], _ int) bool { return z.V2 }),
		func(z Zipped[T, bool], _ int) T { return z.V1 },
	)
}

// Dedupe returns a new iter.Seq[T] that yields only the first occurrence of each unique value in seq.
// Values are considered duplicates if they are equal (==).
func Dedupe[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		unseen := func(v T, _ int) bool {
			if _, exists := seen[v]; exists {
				return false
			}
			seen[v] = struct{}{}
			return true
		}
		for v := range Filter(seq, unseen) {
			if !yield(v) {
				return
			}
		}
	}
}
