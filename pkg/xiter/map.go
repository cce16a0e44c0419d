// Package xiter provides adapters for Go 1.23+ iter.Seq, including Map.
//
// This file contains Map-related adapters.
package xiter

import (
	"iter"

	"github.com/norio-nomura/lazyseq/pkg/option"
	"github.com/norio-nomura/lazyseq/pkg/source"
)

// Map returns a new iter.Seq[U] that yields f(v, i) for each v at index i in seq.
func Map[T, U any](seq iter.Seq[T], f func(T, int) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for i, v := range Enumerate(seq) {
			if !yield(f(v, i)) {
				return
			}
		}
	}
}

// MapWhile yields the payloads of f(v, i) until f returns None.
// The first None ends the sequence; seq is not pulled again after it.
func MapWhile[T, U any](seq iter.Seq[T], f func(T, int) option.Option[U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for i, v := range Enumerate(seq) {
			u, ok := f(v, i).Get()
			if !ok || !yield(u) {
				return
			}
		}
	}
}

// Inspect calls fn(v, i) for each element as it passes through, and yields the element unchanged.
func Inspect[T any](seq iter.Seq[T], fn func(T, int)) iter.Seq[T] {
	return Map(seq, func(v T, i int) T {
		fn(v, i)
		return v
	})
}

// Flatten yields the elements of each inner sequence in order. See source.ChainFromIterable.
func Flatten[T any](seqs iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return source.ChainFromIterable(seqs)
}

// FlatMap maps each element to a sequence with f and flattens the results.
func FlatMap[T, U any](seq iter.Seq[T], f func(T, int) iter.Seq[U]) iter.Seq[U] {
	return Flatten(Map(seq, f))
}
