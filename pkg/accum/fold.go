package accum

import (
	"iter"
	"math"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/norio-nomura/lazyseq/pkg/option"
	"github.com/norio-nomura/lazyseq/pkg/xiter"
)

// truthy reports whether v is neither the zero value of its type nor a floating-point NaN.
func truthy[T any](v T, _ int) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return false
		}
	}
	return !rv.IsZero()
}

// All reports whether pred holds for every element, stopping at the first that fails.
// A nil pred tests that each element is not the zero value and not NaN. All of an empty sequence is true.
func All[T any](seq iter.Seq[T], pred func(T, int) bool) bool {
	if pred == nil {
		pred = truthy[T]
	}
	for i, v := range xiter.Enumerate(seq) {
		if !pred(v, i) {
			return false
		}
	}
	return true
}

// Every is an alias of All.
func Every[T any](seq iter.Seq[T], pred func(T, int) bool) bool {
	return All(seq, pred)
}

// Any reports whether pred holds for some element, stopping at the first that does.
// A nil pred tests that an element is not the zero value and not NaN. Any of an empty sequence is false.
func Any[T any](seq iter.Seq[T], pred func(T, int) bool) bool {
	if pred == nil {
		pred = truthy[T]
	}
	return FindIndex(seq, pred).IsSome()
}

// ForEach calls fn for each element and its index.
func ForEach[T any](seq iter.Seq[T], fn func(T, int)) {
	for i, v := range xiter.Enumerate(seq) {
		fn(v, i)
	}
}

// Foldl folds seq from the left: acc = fn(v, acc, i) for each element, starting from init.
func Foldl[T, A any](seq iter.Seq[T], fn func(T, A, int) A, init A) A {
	acc := init
	for i, v := range xiter.Enumerate(seq) {
		acc = fn(v, acc, i)
	}
	return acc
}

// Reduce is an alias of Foldl.
func Reduce[T, A any](seq iter.Seq[T], fn func(T, A, int) A, init A) A {
	return Foldl(seq, fn, init)
}

// Number is the set of types Sum adds.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Sum adds up the elements. The sum of an empty sequence is 0.
func Sum[N Number](seq iter.Seq[N]) N {
	return Foldl(seq, func(v, acc N, _ int) N { return acc + v }, 0)
}

// Len counts the elements of seq.
func Len[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Count is an alias of Len.
func Count[T any](seq iter.Seq[T]) int {
	return Len(seq)
}

// Last returns the final element, or None for an empty sequence.
func Last[T any](seq iter.Seq[T]) option.Option[T] {
	last := option.None[T]()
	for v := range seq {
		last = option.Some(v)
	}
	return last
}

// Collect returns the elements of seq in order. An empty sequence gives an empty, non-nil slice.
func Collect[T any](seq iter.Seq[T]) []T {
	return slices.AppendSeq([]T{}, seq)
}

// Join concatenates the elements of seq, separated by sep.
func Join[S ~string](seq iter.Seq[S], sep string) S {
	parts := Collect(xiter.Map(seq, func(s S, _ int) string { return string(s) }))
	return S(strings.Join(parts, sep))
}
