// Package array provides fixed length arrays of float64 with a memory and a disk backend.
package array

import (
	"fmt"
	"io"

	"github.com/gostonefire/filestructs/backend"
)

// Array - Capability set shared by every array backend. Algorithms depend on this interface only.
type Array interface {
	// Get - Returns the element at index
	Get(index int) (float64, error)

	// Set - Stores value at index, fails with storeerr.OutOfRange if index is not in [0, Length())
	Set(index int, value float64) error

	// SetLength - (Re)allocates storage for length elements, prior content is undefined afterwards
	SetLength(length int) error

	// Swap - Exchanges the elements at indexes a and b
	Swap(a, b int) error

	// Length - Returns the number of elements
	Length() int

	// Backend - Tells which backend the array lives in
	Backend() backend.Kind

	// Scratch - Returns a new, compatible array of the given length in the same backend.
	// A disk array places the new file in dir, or next to its own file if dir is empty.
	Scratch(dir string, length int) (Array, error)

	// Close - Releases resources held by the array without deleting anything
	Close() error

	// Dispose - Releases the array's storage, a disk array deletes its file
	Dispose() error

	backend.Printable
}

// printValues - Writes count values fetched by get, starting at index from
func printValues(w io.Writer, get func(int) (float64, error), from, count int) (err error) {
	var v float64
	for i := from; i < from+count; i++ {
		v, err = get(i)
		if err != nil {
			return
		}

		_, err = fmt.Fprintf(w, "%.3f\n", v)
		if err != nil {
			return
		}
	}

	return
}
