// Package xiter provides adapters for Go 1.23+ iter.Seq, including Product.
//
// This file contains the cartesian product.
package xiter

import "iter"

// Product yields the cartesian product of seqs as rows, with the first sequence varying slowest.
// Each yielded row is a fresh slice.
//
// The first sequence is read lazily, once. The product of the other sequences is computed while the
// first row is produced and kept in memory for the remaining rows, so every sequence after the first
// must be finite. An empty input, or no input at all, yields nothing.
func Product[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	switch len(seqs) {
	case 0:
		return func(func([]T) bool) {}
	case 1:
		return Map(seqs[0], func(v T, _ int) []T { return []T{v} })
	}
	head, tail := seqs[0], Product(seqs[1:]...)
	return func(yield func([]T) bool) {
		var rows [][]T
		cached := false
		for v := range head {
			if !cached {
				cached = true
				for row := range tail {
					rows = append(rows, row)
					if !yield(prepend(v, row)) {
						return
					}
				}
				if len(rows) == 0 {
					return
				}
				continue
			}
			for _, row := range rows {
				if !yield(prepend(v, row)) {
					return
				}
			}
		}
	}
}

func prepend[T any](v T, row []T) []T {
	out := make([]T, 0, len(row)+1)
	out = append(out, v)
	return append(out, row...)
}
