package xiter

import (
	"slices"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/norio-nomura/lazyseq/pkg/source"
)

func TestTake(t *testing.T) {
	assert.DeepEqual(t, slices.Collect(Take(source.CountNum(1), 3)), []int{1, 2, 3})
	assert.DeepEqual(t, slices.Collect(Take(source.Range(2), 5)), []int{0, 1})
	assert.Equal(t, len(slices.Collect(Take(source.Range(2), 0))), 0)
}

func TestTake_NoExtraPull(t *testing.T) {
	pulls := 0
	for range Take(counted(source.CountNum(0), &pulls), 4) {
	}
	assert.Equal(t, pulls, 4)

	pulls = 0
	for range Take(counted(source.CountNum(0), &pulls), 0) {
	}
	assert.Equal(t, pulls, 0)
}

func TestTakeWhile(t *testing.T) {
	got := slices.Collect(TakeWhile(source.Of(1, 2, 5, 1), func(n, _ int) bool { return n < 3 }))
	assert.DeepEqual(t, got, []int{1, 2})
}

func TestTakeWhile_ByIndex(t *testing.T) {
	got := slices.Collect(TakeWhile(source.Repeat("z"), func(_ string, i int) bool { return i < 2 }))
	assert.DeepEqual(t, got, []string{"z", "z"})
}

func TestTakeWhile_StopsAtFailure(t *testing.T) {
	pulls := 0
	for range TakeWhile(counted(source.CountNum(0), &pulls), func(n, _ int) bool { return n < 3 }) {
	}
	assert.Equal(t, pulls, 4)
}
