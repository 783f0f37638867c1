package backend

import (
	"fmt"
	"io"
	"strings"
)

// Kind - Tags which storage backend a structure lives in
type Kind int

const (
	// Memory - Elements are held in process memory
	Memory Kind = iota
	// Disk - Elements are held in a file and addressed by byte offset
	Disk
)

// String - Returns the lower case name of the kind
func (K Kind) String() string {
	switch K {
	case Memory:
		return "memory"
	case Disk:
		return "disk"
	default:
		return fmt.Sprintf("kind(%d)", int(K))
	}
}

// ParseKind - Returns the Kind named by s. "normal" is accepted as an alias for memory.
func ParseKind(s string) (kind Kind, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory", "mem", "normal":
		kind = Memory
	case "disk", "file":
		kind = Disk
	default:
		err = fmt.Errorf("unknown backend %q, expected memory or disk", s)
	}

	return
}

// Printable - A structure that can write its elements, one per line, to a writer
type Printable interface {
	// Print - Writes every element
	Print(w io.Writer) error

	// PrintRange - Writes length elements starting at element from
	PrintRange(w io.Writer, from, length int) error
}
