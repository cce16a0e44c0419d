// Package accum provides terminal reducers for Go 1.23+ iter.Seq: folds, searches, comparisons and collection.
//
// Reducers pull from their input until they have an answer. Those that need the whole input
// (Len, Last, Collect, Join, Sum, Foldl, the FindLast family, Max and Min) never return on an
// infinite sequence; bound such sequences first, e.g. with xiter.Take.
package accum

import "strconv"

// Ordering is the result of a three-way comparison. The values match the sign convention of cmp.Compare.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "Ordering(" + strconv.Itoa(int(o)) + ")"
}
