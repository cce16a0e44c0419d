package xiter

import (
	"slices"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/norio-nomura/lazyseq/pkg/source"
)

func TestSkip(t *testing.T) {
	assert.DeepEqual(t, slices.Collect(Skip(source.Range(5), 2)), []int{2, 3, 4})
	assert.DeepEqual(t, slices.Collect(Skip(source.Range(3), 0)), []int{0, 1, 2})
	assert.Equal(t, len(slices.Collect(Skip(source.Range(3), 5))), 0)
}

func TestSkipWhile(t *testing.T) {
	seq := source.Of(1, 2, 5, 1, 7)
	got := slices.Collect(SkipWhile(seq, func(n, _ int) bool { return n < 3 }))
	assert.DeepEqual(t, got, []int{5, 1, 7})
}

func TestSkipWhile_SingleCursor(t *testing.T) {
	calls := 0
	got := slices.Collect(SkipWhile(once(t, 1, 2, 5, 1, 7), func(n, _ int) bool {
		calls++
		return n < 3
	}))
	assert.DeepEqual(t, got, []int{5, 1, 7})
	assert.Equal(t, calls, 3, "pred is not evaluated after the first failure")
}

func TestSkipWhile_AllSkipped(t *testing.T) {
	got := slices.Collect(SkipWhile(source.Range(4), func(_, _ int) bool { return true }))
	assert.Equal(t, len(got), 0)
}

func TestDropWhile(t *testing.T) {
	got := slices.Collect(DropWhile(source.Of("", "", "a", "", "b"), func(s string, _ int) bool { return s == "" }))
	assert.DeepEqual(t, got, []string{"a", "", "b"})
}

func TestStepBy(t *testing.T) {
	assert.DeepEqual(t, slices.Collect(StepBy(source.Range(10), 3)), []int{0, 3, 6, 9})
	assert.DeepEqual(t, slices.Collect(StepBy(source.Range(3), 1)), []int{0, 1, 2})
	assertInvalidArgument(t, func() { StepBy(source.Range(3), 0) })
}

func TestISlice(t *testing.T) {
	tests := []struct {
		name   string
		bounds []int
		want   []int
	}{
		{"end only", []int{3}, []int{10, 11, 12}},
		{"start and end", []int{2, 5}, []int{12, 13, 14}},
		{"step", []int{1, 8, 3}, []int{11, 14, 17}},
		{"end past upstream", []int{18, 40}, []int{28, 29}},
		{"start past end", []int{5, 2}, []int{}},
		{"empty", []int{0}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := append([]int{}, slices.Collect(ISlice(source.Range(10, 30), tt.bounds...))...)
			assert.DeepEqual(t, got, tt.want)
		})
	}
}

func TestISlice_StopsPullingAtEnd(t *testing.T) {
	pulls := 0
	got := slices.Collect(ISlice(counted(source.CountNum(0), &pulls), 2, 7, 2))
	assert.DeepEqual(t, got, []int{2, 4, 6})
	assert.Equal(t, pulls, 7)
}

func TestISlice_InvalidArguments(t *testing.T) {
	assertInvalidArgument(t, func() { ISlice(source.Range(3), 0, 3, 0) })
	assertInvalidArgument(t, func() { ISlice(source.Range(3), 0, 3, -1) })
	assertInvalidArgument(t, func() { ISlice(source.Range(3), -1, 3) })
	assertInvalidArgument(t, func() { ISlice(source.Range(3)) })
	assertInvalidArgument(t, func() { ISliceFrom(source.Range(3), 0, 0) })
}

func TestISliceFrom(t *testing.T) {
	got := slices.Collect(Take(ISliceFrom(source.CountNum(0), 5, 10), 3))
	assert.DeepEqual(t, got, []int{5, 15, 25})
	assert.DeepEqual(t, slices.Collect(ISliceFrom(source.Range(4), 1)), []int{1, 2, 3})
}
