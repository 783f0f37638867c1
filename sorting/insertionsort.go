package sorting

import (
	"github.com/gostonefire/filestructs/array"
	"github.com/gostonefire/filestructs/list"
	"go.uber.org/multierr"
)

// InsertionSort - Sorts arrays by swapping neighbours and lists by building a sorted copy
type InsertionSort struct{}

// Name - Returns Insertion
func (InsertionSort) Name() string {
	return Insertion
}

// SortArray - For every element from index 1, swaps it towards the front while its left neighbour is larger
func (InsertionSort) SortArray(a array.Array) (err error) {
	var left, right float64

	for i := 1; i < a.Length(); i++ {
		for b := i - 1; b >= 0; b-- {
			if left, err = a.Get(b); err != nil {
				return
			}
			if right, err = a.Get(b + 1); err != nil {
				return
			}
			if left <= right {
				break
			}

			if err = a.Swap(b, b+1); err != nil {
				return
			}
		}
	}

	return
}

// SortList - Inserts every element of l, head to tail, into a new list of the same backend with
// InsertSorted and then lets l take over the new list's content.
// Equal elements end up in reverse order since every value is inserted in front of its equals.
func (InsertionSort) SortList(l list.List) (err error) {
	if l.Length() < 2 {
		return
	}

	sorted, err := l.Scratch("")
	if err != nil {
		return
	}

	if err = fillSorted(l, sorted); err != nil {
		return multierr.Append(err, sorted.Dispose())
	}

	return l.ReplaceContent(sorted)
}

// fillSorted - Walks from with its cursor and inserts every value into to
func fillSorted(from, to list.List) (err error) {
	var value float64
	var hasNext bool

	from.MoveToFirst()
	if value, err = from.Get(); err != nil {
		return
	}
	if err = to.InsertSorted(value); err != nil {
		return
	}

	for {
		if hasNext, err = from.HasNext(); err != nil || !hasNext {
			return
		}
		if value, err = from.Next(); err != nil {
			return
		}
		if err = to.InsertSorted(value); err != nil {
			return
		}
	}
}
