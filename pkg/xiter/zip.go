// Package xiter provides adapters for Go 1.23+ iter.Seq, including Zip and ZipLongest.
//
// This file contains Zip-related adapters.
package xiter

import (
	"iter"
)

// Zipped holds a pair of values and their presence flags.
type Zipped[T, U any] struct {
	V1  T
	OK1 bool
	V2  U
	OK2 bool
}

// Zipped3 holds one value from each of three sequences.
type Zipped3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Zipped4 holds one value from each of four sequences.
type Zipped4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Zip takes two sequences and returns a new sequence that yields Zipped elements from the two sequences.
// If either sequence is exhausted, iteration stops (shortest sequence wins).
func Zip[T, U any](seqT iter.Seq[T], seqU iter.Seq[U]) iter.Seq[Zipped[T, U]] {
	return func(yield func(Zipped[T, U]) bool) {
		uNext, uStop := iter.Pull(seqU)
		defer uStop()
		for t := range seqT {
			u, ok := uNext()
			if !ok || !yield(Zipped[T, U]{V1: t, OK1: true, V2: u, OK2: true}) {
				return
			}
		}
	}
}

// Zip3 is Zip for three sequences. Sequences are pulled in argument order and a later one is not
// pulled once an earlier one is exhausted.
func Zip3[A, B, C any](seqA iter.Seq[A], seqB iter.Seq[B], seqC iter.Seq[C]) iter.Seq[Zipped3[A, B, C]] {
	return func(yield func(Zipped3[A, B, C]) bool) {
		bNext, bStop := iter.Pull(seqB)
		defer bStop()
		cNext, cStop := iter.Pull(seqC)
		defer cStop()
		for a := range seqA {
			b, ok := bNext()
			if !ok {
				return
			}
			c, ok := cNext()
			if !ok || !yield(Zipped3[A, B, C]{V1: a, V2: b, V3: c}) {
				return
			}
		}
	}
}

// Zip4 is Zip for four sequences.
func Zip4[A, B, C, D any](seqA iter.Seq[A], seqB iter.Seq[B], seqC iter.Seq[C], seqD iter.Seq[D]) iter.Seq[Zipped4[A, B, C, D]] {
	return func(yield func(Zipped4[A, B, C, D]) bool) {
		bNext, bStop := iter.Pull(seqB)
		defer bStop()
		cNext, cStop := iter.Pull(seqC)
		defer cStop()
		dNext, dStop := iter.Pull(seqD)
		defer dStop()
		for a := range seqA {
			b, ok := bNext()
			if !ok {
				return
			}
			c, ok := cNext()
			if !ok {
				return
			}
			d, ok := dNext()
			if !ok || !yield(Zipped4[A, B, C, D]{V1: a, V2: b, V3: c, V4: d}) {
				return
			}
		}
	}
}

// ZipN zips any number of sequences of the same element type into rows.
// Each yielded row is a fresh slice. With no sequences it yields nothing.
func ZipN[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		nexts := make([]func() (T, bool), len(seqs))
		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[i] = next
		}
		for {
			row := make([]T, 0, len(nexts))
			for _, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				row = append(row, v)
			}
			if !yield(row) {
				return
			}
		}
	}
}

// ZipLongest is Zip that runs until both sequences are exhausted.
// Once one side ends, its value is the zero value and its OK flag is false; that side is not pulled again.
func ZipLongest[T, U any](seqT iter.Seq[T], seqU iter.Seq[U]) iter.Seq[Zipped[T, U]] {
	return func(yield func(Zipped[T, U]) bool) {
		uNext, uStop := iter.Pull(seqU)
		defer uStop()
		uDone := false
		for t := range seqT {
			z := Zipped[T, U]{V1: t, OK1: true}
			if !uDone {
				z.V2, z.OK2 = uNext()
				uDone = !z.OK2
			}
			if !yield(z) {
				return
			}
		}
		for !uDone {
			u, ok := uNext()
			if !ok || !yield(Zipped[T, U]{V2: u, OK2: true}) {
				return
			}
		}
	}
}
