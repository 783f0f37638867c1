package list

import (
	"io"

	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/internal/linked"
	"github.com/gostonefire/filestructs/internal/utils"
	"github.com/gostonefire/filestructs/storeerr"
)

// node - One element of a Memory list
type node struct {
	next     *node
	previous *node
	value    float64
}

// Memory - Doubly linked list with its nodes on the heap
type Memory struct {
	first   *node
	last    *node
	current *node
	length  int
}

// NewMemory - Returns a pointer to a new, empty Memory list
func NewMemory() *Memory {
	return &Memory{}
}

// Add - Appends value after the tail
func (M *Memory) Add(value float64) error {
	n := &node{value: value}

	if M.first == nil {
		M.first = n
	} else {
		n.previous = M.last
		M.last.next = n
	}
	M.last = n
	M.length++

	return nil
}

// MoveToFirst - Places the cursor on the head
func (M *Memory) MoveToFirst() {
	M.current = M.first
}

// Get - Returns the value under the cursor
func (M *Memory) Get() (value float64, err error) {
	if M.current == nil {
		err = storeerr.NewInvalidCursor("cursor is not positioned on an element")
		return
	}

	return M.current.value, nil
}

// Next - Advances the cursor, an unset cursor goes to the head
func (M *Memory) Next() (value float64, err error) {
	switch {
	case M.current == nil && M.first == nil:
		err = storeerr.NewInvalidCursor("list is empty")
		return
	case M.current == nil:
		M.current = M.first
	case M.current.next == nil:
		err = storeerr.NewInvalidCursor("cursor is on the last element")
		return
	default:
		M.current = M.current.next
	}

	return M.current.value, nil
}

// Previous - Moves the cursor back, an unset cursor goes to the tail
func (M *Memory) Previous() (value float64, err error) {
	switch {
	case M.current == nil && M.last == nil:
		err = storeerr.NewInvalidCursor("list is empty")
		return
	case M.current == nil:
		M.current = M.last
	case M.current.previous == nil:
		err = storeerr.NewInvalidCursor("cursor is on the first element")
		return
	default:
		M.current = M.current.previous
	}

	return M.current.value, nil
}

// HasNext - Tells whether Next would succeed
func (M *Memory) HasNext() (bool, error) {
	if M.current == nil {
		return M.first != nil, nil
	}

	return M.current.next != nil, nil
}

// HasPrevious - Tells whether Previous would succeed
func (M *Memory) HasPrevious() (bool, error) {
	if M.current == nil {
		return M.last != nil, nil
	}

	return M.current.previous != nil, nil
}

// InsertSorted - Inserts value before the first element that is not smaller than it
func (M *Memory) InsertSorted(value float64) error {
	if M.first == nil {
		return M.Add(value)
	}

	if value <= M.first.value || M.first == M.last {
		if value > M.first.value {
			return M.Add(value)
		}

		n := &node{next: M.first, value: value}
		M.first.previous = n
		M.first = n
		M.length++

		return nil
	}

	at := M.first
	for at.next != nil && at.next.value < value {
		at = at.next
	}

	n := &node{next: at.next, previous: at, value: value}
	if at.next != nil {
		at.next.previous = n
	} else {
		M.last = n
	}
	at.next = n
	M.length++

	return nil
}

// Length - Returns the number of elements
func (M *Memory) Length() int {
	return M.length
}

// ReplaceContent - Takes over the nodes of other, which must be a Memory list
func (M *Memory) ReplaceContent(other List) error {
	donor, ok := other.(*Memory)
	if !ok {
		return mismatch(backend.Memory, other)
	}
	if donor == M {
		return nil
	}

	M.first, M.last, M.length = donor.first, donor.last, donor.length
	M.current = nil

	return donor.Dispose()
}

// Sort - Sorts the list in ascending order
func (M *Memory) Sort() (err error) {
	if M.length < 2 {
		return
	}

	first, last, err := linked.Sort[*node](memoryNodes{}, M.first)
	if err != nil {
		return
	}
	M.first, M.last = first, last

	return
}

// Backend - Returns backend.Memory
func (M *Memory) Backend() backend.Kind {
	return backend.Memory
}

// Scratch - Returns a new, empty Memory list, dir is ignored
func (M *Memory) Scratch(_ string) (List, error) {
	return NewMemory(), nil
}

// Close - Nothing to release
func (M *Memory) Close() error {
	return nil
}

// Dispose - Drops all nodes
func (M *Memory) Dispose() error {
	M.first, M.last, M.current = nil, nil, nil
	M.length = 0

	return nil
}

// Print - Writes every element from head to tail
func (M *Memory) Print(w io.Writer) error {
	if M.length == 0 {
		return nil
	}

	return printValues(w, M.walk, 0, M.length)
}

// PrintRange - Writes count elements starting at index from
func (M *Memory) PrintRange(w io.Writer, from, count int) (err error) {
	if err = utils.CheckRange(from, count, M.length); err != nil {
		return
	}

	return printValues(w, M.walk, from, count)
}

// walk - Calls visit for every value from head to tail until it returns false, the cursor is untouched
func (M *Memory) walk(visit func(float64) bool) error {
	for n := M.first; n != nil; n = n.next {
		if !visit(n.value) {
			break
		}
	}

	return nil
}

// memoryNodes - Gives the linked package access to Memory list nodes
type memoryNodes struct{}

func (memoryNodes) None() *node { return nil }

func (memoryNodes) Next(n *node) (*node, error) { return n.next, nil }

func (memoryNodes) SetNext(n, next *node) error {
	n.next = next
	return nil
}

func (memoryNodes) SetPrevious(n, previous *node) error {
	n.previous = previous
	return nil
}

func (memoryNodes) Value(n *node) (float64, error) { return n.value, nil }
