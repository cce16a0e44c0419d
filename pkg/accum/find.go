package accum

import (
	"iter"

	"github.com/norio-nomura/lazyseq/pkg/option"
	"github.com/norio-nomura/lazyseq/pkg/xiter"
)

// Entry is an element together with its index in the sequence it came from.
type Entry[T any] struct {
	Index int
	Value T
}

func entryValue[T any](e Entry[T]) T   { return e.Value }
func entryIndex[T any](e Entry[T]) int { return e.Index }

// FindWithIdx returns the first element satisfying pred, with its index. It stops pulling at the match.
func FindWithIdx[T any](seq iter.Seq[T], pred func(T, int) bool) option.Option[Entry[T]] {
	for i, v := range xiter.Enumerate(seq) {
		if pred(v, i) {
			return option.Some(Entry[T]{Index: i, Value: v})
		}
	}
	return option.None[Entry[T]]()
}

// Find returns the first element satisfying pred.
func Find[T any](seq iter.Seq[T], pred func(T, int) bool) option.Option[T] {
	return option.Map(FindWithIdx(seq, pred), entryValue[T])
}

// FindIndex returns the index of the first element satisfying pred.
func FindIndex[T any](seq iter.Seq[T], pred func(T, int) bool) option.Option[int] {
	return option.Map(FindWithIdx(seq, pred), entryIndex[T])
}

// IndexOf returns the index of the first element equal to target.
func IndexOf[T comparable](seq iter.Seq[T], target T) option.Option[int] {
	return FindIndex(seq, func(v T, _ int) bool { return v == target })
}

// FindLastWithIdx returns the last element satisfying pred, with its index. It drains seq.
func FindLastWithIdx[T any](seq iter.Seq[T], pred func(T, int) bool) option.Option[Entry[T]] {
	found := option.None[Entry[T]]()
	for i, v := range xiter.Enumerate(seq) {
		if pred(v, i) {
			found = option.Some(Entry[T]{Index: i, Value: v})
		}
	}
	return found
}

// FindLast returns the last element satisfying pred. It drains seq.
func FindLast[T any](seq iter.Seq[T], pred func(T, int) bool) option.Option[T] {
	return option.Map(FindLastWithIdx(seq, pred), entryValue[T])
}

// FindLastIndex returns the index of the last element satisfying pred. It drains seq.
func FindLastIndex[T any](seq iter.Seq[T], pred func(T, int) bool) option.Option[int] {
	return option.Map(FindLastWithIdx(seq, pred), entryIndex[T])
}

// LastIndexOf returns the index of the last element equal to target. It drains seq.
func LastIndexOf[T comparable](seq iter.Seq[T], target T) option.Option[int] {
	return FindLastIndex(seq, func(v T, _ int) bool { return v == target })
}
