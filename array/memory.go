package array

import (
	"io"

	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/internal/utils"
	"github.com/gostonefire/filestructs/storeerr"
)

// Memory - Array backed by a contiguous slice
type Memory struct {
	data []float64
}

// NewMemory - Returns a pointer to a new Memory array with length zero valued elements
func NewMemory(length int) *Memory {
	if length < 0 {
		length = 0
	}

	return &Memory{data: make([]float64, length)}
}

// NewMemoryFrom - Returns a pointer to a new Memory array holding a copy of values
func NewMemoryFrom(values []float64) *Memory {
	data := make([]float64, len(values))
	copy(data, values)

	return &Memory{data: data}
}

// Get - Returns the element at index
func (M *Memory) Get(index int) (value float64, err error) {
	if err = utils.CheckIndex(index, len(M.data)); err != nil {
		return
	}
	value = M.data[index]

	return
}

// Set - Stores value at index
func (M *Memory) Set(index int, value float64) (err error) {
	if err = utils.CheckIndex(index, len(M.data)); err != nil {
		return
	}
	M.data[index] = value

	return
}

// SetLength - Allocates a new slice of length elements
func (M *Memory) SetLength(length int) (err error) {
	if length < 0 {
		return storeerr.NewOutOfRange("negative array length %d", length)
	}
	M.data = make([]float64, length)

	return
}

// Swap - Exchanges the elements at indexes a and b
func (M *Memory) Swap(a, b int) (err error) {
	if err = utils.CheckIndex(a, len(M.data)); err != nil {
		return
	}
	if err = utils.CheckIndex(b, len(M.data)); err != nil {
		return
	}
	M.data[a], M.data[b] = M.data[b], M.data[a]

	return
}

// Length - Returns the number of elements
func (M *Memory) Length() int {
	return len(M.data)
}

// Backend - Returns backend.Memory
func (M *Memory) Backend() backend.Kind {
	return backend.Memory
}

// Scratch - Returns a new Memory array, dir is ignored
func (M *Memory) Scratch(_ string, length int) (Array, error) {
	return NewMemory(length), nil
}

// Close - Nothing to release
func (M *Memory) Close() error {
	return nil
}

// Dispose - Drops the slice
func (M *Memory) Dispose() error {
	M.data = nil
	return nil
}

// Values - Returns a copy of the elements
func (M *Memory) Values() []float64 {
	values := make([]float64, len(M.data))
	copy(values, M.data)

	return values
}

// Print - Writes every element
func (M *Memory) Print(w io.Writer) error {
	return printValues(w, M.Get, 0, len(M.data))
}

// PrintRange - Writes count elements starting at from
func (M *Memory) PrintRange(w io.Writer, from, count int) (err error) {
	if err = utils.CheckRange(from, count, len(M.data)); err != nil {
		return
	}

	return printValues(w, M.Get, from, count)
}
