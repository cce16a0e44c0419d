// Package sample is a fixture for signature listing.
package sample

import "iter"

// Double returns n twice.
func Double(n int) int { return 2 * n }

// Evens yields the even values of seq.
func Evens[T ~int](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if v%2 == 0 && !yield(v) {
				return
			}
		}
	}
}

func helper() {}

// Counter counts.
type Counter struct{ n int }

// Add adds n.
func (c *Counter) Add(n int) { c.n += n }

// Total returns the count so far.
// It never resets.
func (c Counter) Total() int { return c.n }

type hidden struct{}

// Visible is exported but its receiver type is not.
func (hidden) Visible() {}

// Pair returns both values.
func Pair[K comparable, V any](k K, v V) (K, V) { return k, v }
