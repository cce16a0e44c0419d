package accum

import (
	"cmp"
	"iter"

	"github.com/norio-nomura/lazyseq/pkg/option"
	"github.com/norio-nomura/lazyseq/pkg/xiter"
)

// Cmp compares seq1 and seq2 lexicographically using the < and > operators of T.
// A sequence that is a proper prefix of the other compares Less.
// Elements that are neither less nor greater, such as NaN against anything, compare Equal.
func Cmp[T cmp.Ordered](seq1, seq2 iter.Seq[T]) Ordering {
	return CmpFunc(seq1, seq2, natural[T])
}

func natural[T cmp.Ordered](a, b T, _ int) Ordering {
	switch {
	case a > b:
		return Greater
	case a < b:
		return Less
	}
	return Equal
}

// CmpFunc compares seq1 and seq2 lexicographically, calling f with both elements and their index.
// Both sequences are pulled in lockstep and comparison stops at the first non-Equal result.
func CmpFunc[T, U any](seq1 iter.Seq[T], seq2 iter.Seq[U], f func(T, U, int) Ordering) Ordering {
	for i, z := range xiter.Enumerate(xiter.ZipLongest(seq1, seq2)) {
		switch {
		case !z.OK1:
			return Less
		case !z.OK2:
			return Greater
		}
		if o := f(z.V1, z.V2, i); o != Equal {
			return o
		}
	}
	return Equal
}

// Eq reports whether seq1 and seq2 have equal elements and equal lengths.
func Eq[T comparable](seq1, seq2 iter.Seq[T]) bool {
	return EqFunc(seq1, seq2, func(a, b T, _ int) bool { return a == b })
}

// EqFunc is Eq with a custom element equality.
func EqFunc[T, U any](seq1 iter.Seq[T], seq2 iter.Seq[U], eq func(T, U, int) bool) bool {
	return CmpFunc(seq1, seq2, func(a T, b U, i int) Ordering {
		if eq(a, b, i) {
			return Equal
		}
		return Less
	}) == Equal
}

// Max returns the largest element, or None for an empty sequence. The first of equal maxima wins.
func Max[T cmp.Ordered](seq iter.Seq[T]) option.Option[T] {
	return MaxFunc(seq, func(a, b T) bool { return a > b })
}

// MaxFunc returns the element e for which isBigger(e, current) last held, starting from the first element.
// isBigger must be strict for the first of equal maxima to win.
func MaxFunc[T any](seq iter.Seq[T], isBigger func(T, T) bool) option.Option[T] {
	var best T
	found := false
	for v := range seq {
		if !found || isBigger(v, best) {
			best, found = v, true
		}
	}
	return option.FromOK(best, found)
}

// Min returns the smallest element, or None for an empty sequence. The first of equal minima wins.
func Min[T cmp.Ordered](seq iter.Seq[T]) option.Option[T] {
	return MinFunc(seq, func(a, b T) bool { return a < b })
}

// MinFunc is MaxFunc with the comparison read the other way: isSmaller(a, b) reports whether a is smaller than b.
func MinFunc[T any](seq iter.Seq[T], isSmaller func(T, T) bool) option.Option[T] {
	return MaxFunc(seq, isSmaller)
}
