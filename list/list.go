// Package list provides doubly linked lists of float64 with a memory and a disk backend.
//
// A list keeps a single cursor between calls. Next and Previous position an unset cursor on the
// head or tail respectively; moving past either end fails with storeerr.InvalidCursor and leaves the
// cursor where it was.
package list

import (
	"fmt"
	"io"

	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/storeerr"
)

// List - Capability set shared by every list backend. Algorithms depend on this interface only.
type List interface {
	// Add - Appends value after the tail
	Add(value float64) error

	// MoveToFirst - Places the cursor on the head
	MoveToFirst()

	// Get - Returns the value under the cursor, fails with storeerr.InvalidCursor if the cursor is unset
	Get() (float64, error)

	// Next - Advances the cursor and returns the value under it
	Next() (float64, error)

	// Previous - Moves the cursor back and returns the value under it
	Previous() (float64, error)

	// HasNext - Tells whether Next would succeed, without moving the cursor
	HasNext() (bool, error)

	// HasPrevious - Tells whether Previous would succeed, without moving the cursor
	HasPrevious() (bool, error)

	// InsertSorted - Inserts value before the first element that is not smaller than it
	InsertSorted(value float64) error

	// Length - Returns the number of elements
	Length() int

	// ReplaceContent - Takes over the structure of other, which must live in the same backend, and
	// disposes other's storage. The cursor is unset afterwards.
	ReplaceContent(other List) error

	// Sort - Sorts the list in ascending order with a stable merge sort
	Sort() error

	// Backend - Tells which backend the list lives in
	Backend() backend.Kind

	// Scratch - Returns a new, empty list in the same backend.
	// A disk list places the new file in dir, or next to its own file if dir is empty.
	Scratch(dir string) (List, error)

	// Close - Releases resources held by the list without deleting anything
	Close() error

	// Dispose - Releases the list's storage, a disk list deletes its file
	Dispose() error

	backend.Printable
}

// Values - Returns every value from head to tail. The cursor is left on the tail.
func Values(l List) (values []float64, err error) {
	values = make([]float64, 0, l.Length())
	if l.Length() == 0 {
		return
	}

	var v float64
	var hasNext bool
	l.MoveToFirst()
	for {
		v, err = l.Get()
		if err != nil {
			return
		}
		values = append(values, v)

		hasNext, err = l.HasNext()
		if err != nil || !hasNext {
			return
		}
		if _, err = l.Next(); err != nil {
			return
		}
	}
}

// printValues - Walks count values from index from using the walk function, writing each one
func printValues(w io.Writer, walk func(func(float64) bool) error, from, count int) error {
	var index, printed int
	var writeErr error

	err := walk(func(v float64) bool {
		if index >= from {
			if _, writeErr = fmt.Fprintf(w, "%.3f\n", v); writeErr != nil {
				return false
			}
			printed++
		}
		index++

		return printed < count
	})
	if err != nil {
		return err
	}

	return writeErr
}

// mismatch - Returns the BackendMismatch error for replacing the content of a kind list with other
func mismatch(kind backend.Kind, other List) error {
	if other == nil {
		return storeerr.NewBackendMismatch("can not replace content of a %s list with a nil list", kind)
	}

	return storeerr.NewBackendMismatch("can not replace content of a %s list with a %s list", kind, other.Backend())
}
