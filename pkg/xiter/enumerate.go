// Package xiter provides lazy adapters for Go 1.23+ iter.Seq, including Enumerate.
//
// Every adapter is pull-driven: nothing is read from upstream until the consumer asks for the next
// element, and no state survives between two range loops over the same adapter.
//
// This file contains Enumerate and the index-only adapters built on it.
package xiter

import "iter"

// Enumerate returns an iter.Seq2 that yields (index, value) for each value in seq, counting from 0.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Entries is an alias of Enumerate.
func Entries[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return Enumerate(seq)
}

// Fill returns a new iter.Seq[U] that yields value once for each element of seq.
func Fill[T, U any](seq iter.Seq[T], value U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for range seq {
			if !yield(value) {
				return
			}
		}
	}
}
