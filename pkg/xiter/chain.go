// Package xiter provides adapters for Go 1.23+ iter.Seq, including Chain.
//
// This file contains Chain and Concat.
package xiter

import (
	"iter"
	"slices"

	"github.com/norio-nomura/lazyseq/pkg/source"
)

// Chain yields the elements of each seq in turn.
func Chain[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return source.ChainFromIterable(slices.Values(seqs))
}

// Concat is an alias of Chain.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return Chain(seqs...)
}
