package accum

import (
	"math"
	"slices"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/norio-nomura/lazyseq/pkg/option"
	"github.com/norio-nomura/lazyseq/pkg/source"
	"github.com/norio-nomura/lazyseq/pkg/xiter"
)

func TestOrdering_String(t *testing.T) {
	assert.Equal(t, Less.String(), "less")
	assert.Equal(t, Equal.String(), "equal")
	assert.Equal(t, Greater.String(), "greater")
	assert.Equal(t, Ordering(7).String(), "Ordering(7)")
}

func TestCmp(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want Ordering
	}{
		{"both empty", nil, nil, Equal},
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, Equal},
		{"first differs", []int{1, 5}, []int{1, 4, 9}, Greater},
		{"smaller element", []int{0, 9}, []int{1}, Less},
		{"shorter prefix", []int{1, 2}, []int{1, 2, 3}, Less},
		{"longer", []int{1, 2, 3}, []int{1, 2}, Greater},
		{"empty versus non-empty", nil, []int{0}, Less},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Cmp(slices.Values(tt.a), slices.Values(tt.b)), tt.want)
		})
	}
}

func TestCmp_NaN(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, Cmp(source.Of(nan), source.Of(1.0)), Equal)
	assert.Equal(t, Cmp(source.Of(1.0), source.Of(nan)), Equal)
	assert.Equal(t, Cmp(source.Of(nan, 1.0), source.Of(-5.0, 2.0)), Less)
	assert.Equal(t, Cmp(source.Of(nan), source.Of(nan, 0.0)), Less)
}

func TestCmp_SameSequence(t *testing.T) {
	for _, s := range [][]string{{}, {"a"}, {"a", "a", "b"}} {
		assert.Equal(t, Cmp(slices.Values(s), slices.Values(s)), Equal)
		assert.Assert(t, Eq(slices.Values(s), slices.Values(s)))
	}
}

func TestCmp_StopsAtFirstDifference(t *testing.T) {
	got := Cmp(source.CountNum(0), xiter.Chain(source.Of(0, 1, 5), source.CountNum(0)))
	assert.Equal(t, got, Less)
}

func TestCmpFunc(t *testing.T) {
	byLen := func(a, b string, _ int) Ordering {
		switch {
		case len(a) < len(b):
			return Less
		case len(a) > len(b):
			return Greater
		}
		return Equal
	}
	assert.Equal(t, CmpFunc(source.Of("ab", "c"), source.Of("xy", "zz"), byLen), Less)
	assert.Equal(t, CmpFunc(source.Of("ab", "c"), source.Of("xy", "z"), byLen), Equal)
}

func TestEq(t *testing.T) {
	assert.Assert(t, Eq(source.Range(3), source.Of(0, 1, 2)))
	assert.Assert(t, !Eq(source.Range(3), source.Of(0, 1)))
	assert.Assert(t, !Eq(source.Range(2), source.Of(0, 1, 2)))
	assert.Assert(t, !Eq(source.Range(3), source.Of(0, 9, 2)))
}

func TestEqFunc(t *testing.T) {
	fold := func(a, b string, _ int) bool { return strings.EqualFold(a, b) }
	assert.Assert(t, EqFunc(source.Of("A", "b"), source.Of("a", "B"), fold))
	assert.Assert(t, !EqFunc(source.Of("A", "b"), source.Of("a"), fold))
}

func TestMax(t *testing.T) {
	assert.Equal(t, Max(source.Of(3, 9, 2, 9, 1)), option.Some(9))
	assert.Equal(t, Max(source.Of[int]()), option.None[int]())
}

func TestMin(t *testing.T) {
	assert.Equal(t, Min(source.Of(3, 9, 2, 9, 1)), option.Some(1))
	assert.Equal(t, Min(source.Of[float64]()), option.None[float64]())
}

func TestMaxFunc_TieKeepsFirst(t *testing.T) {
	type item struct {
		key  int
		name string
	}
	items := source.Of(item{1, "a"}, item{3, "b"}, item{3, "c"}, item{2, "d"})
	got := MaxFunc(items, func(a, b item) bool { return a.key > b.key })
	assert.Equal(t, got.Unwrap().name, "b")
}

func TestMinFunc_TieKeepsFirst(t *testing.T) {
	words := source.Of("bb", "a", "c", "dd")
	got := MinFunc(words, func(a, b string) bool { return len(a) < len(b) })
	assert.Equal(t, got, option.Some("a"))
}
