// Package sorting holds sorting algorithms that work on any array or list backend through the array.Array
// and list.List interfaces only. Every algorithm sorts in ascending order.
//
// Both algorithms keep equal array elements in their original order, and so does MergeSort for lists.
// InsertionSort builds a sorted list through InsertSorted, which places a value in front of its equals,
// so equal list elements come out in reverse order.
package sorting

import (
	"fmt"
	"strings"

	"github.com/gostonefire/filestructs/array"
	"github.com/gostonefire/filestructs/list"
	"go.uber.org/zap"
)

// Algorithm - A sorting algorithm for arrays and lists
type Algorithm interface {
	// SortArray - Sorts the array in place
	SortArray(a array.Array) error

	// SortList - Sorts the list, leaving it with the same backend and an unset cursor.
	// Only MergeSort keeps equal list elements in their original order.
	SortList(l list.List) error

	// Name - Returns the name the algorithm is known by in ByName
	Name() string
}

// Insertion and Merge are the names accepted by ByName
const (
	Insertion = "insertion"
	Merge     = "merge"
)

// ByName - Returns the algorithm with the given name.
//   - workDir is where MergeSort creates its working directory for disk arrays, empty means the system temp dir
//   - logger is optional, nil disables logging
func ByName(name, workDir string, logger *zap.Logger) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Insertion:
		return InsertionSort{}, nil
	case Merge:
		return MergeSort{WorkDir: workDir, Logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown sorting algorithm %q, use %q or %q", name, Insertion, Merge)
	}
}
