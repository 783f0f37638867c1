package list

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/internal/conf"
	"github.com/gostonefire/filestructs/internal/file"
	"github.com/gostonefire/filestructs/internal/linked"
	"github.com/gostonefire/filestructs/internal/model"
	"github.com/gostonefire/filestructs/internal/utils"
	"github.com/gostonefire/filestructs/storeerr"
	"go.uber.org/zap"
)

// Disk - Doubly linked list with its nodes stored as 16 byte records in a file.
// Nodes refer to each other by file address, new nodes are always appended at the end of the file and
// a node keeps its address for as long as it lives. Abandoned records are never reclaimed.
type Disk struct {
	fileName string
	file     *os.File
	first    file.Address
	last     file.Address
	current  file.Address
	length   int
	logger   *zap.Logger
}

// NewDisk - Returns a pointer to a new, empty Disk list backed by a new file.
// If the file already exists it is truncated, hence deleting all existing data.
//   - fileName is the file to store nodes in
//   - logger is optional, nil disables logging
func NewDisk(fileName string, logger *zap.Logger) (diskList *Disk, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	f, err := file.CreateNewFile(fileName, 0)
	if err != nil {
		err = fmt.Errorf("error while creating list file %s: %w", fileName, err)
		return
	}

	diskList = &Disk{
		fileName: fileName,
		file:     f,
		first:    file.NoAddress,
		last:     file.NoAddress,
		current:  file.NoAddress,
		logger:   logger,
	}
	logger.Debug("list file created", zap.String("file", fileName))

	return
}

// FileName - Returns the name of the backing file
func (D *Disk) FileName() string {
	return D.fileName
}

// Add - Appends value after the tail
func (D *Disk) Add(value float64) (err error) {
	address, err := D.appendNode(file.NoAddress, D.last, value)
	if err != nil {
		return
	}

	if D.first.IsNone() {
		D.first = address
	}
	D.last = address
	D.length++

	return
}

// MoveToFirst - Places the cursor on the head
func (D *Disk) MoveToFirst() {
	D.current = D.first
}

// Get - Returns the value under the cursor
func (D *Disk) Get() (value float64, err error) {
	if D.current.IsNone() {
		err = storeerr.NewInvalidCursor("cursor is not positioned on an element")
		return
	}

	return D.value(D.current)
}

// Next - Advances the cursor, an unset cursor goes to the head
func (D *Disk) Next() (value float64, err error) {
	to := D.first
	if !D.current.IsNone() {
		to, err = D.next(D.current)
		if err != nil {
			return
		}
		if to.IsNone() {
			err = storeerr.NewInvalidCursor("cursor is on the last element")
			return
		}
	} else if to.IsNone() {
		err = storeerr.NewInvalidCursor("list is empty")
		return
	}

	value, err = D.value(to)
	if err != nil {
		return
	}
	D.current = to

	return
}

// Previous - Moves the cursor back, an unset cursor goes to the tail
func (D *Disk) Previous() (value float64, err error) {
	to := D.last
	if !D.current.IsNone() {
		to, err = D.previous(D.current)
		if err != nil {
			return
		}
		if to.IsNone() {
			err = storeerr.NewInvalidCursor("cursor is on the first element")
			return
		}
	} else if to.IsNone() {
		err = storeerr.NewInvalidCursor("list is empty")
		return
	}

	value, err = D.value(to)
	if err != nil {
		return
	}
	D.current = to

	return
}

// HasNext - Tells whether Next would succeed
func (D *Disk) HasNext() (bool, error) {
	if D.current.IsNone() {
		return !D.first.IsNone(), nil
	}

	next, err := D.next(D.current)

	return !next.IsNone() && err == nil, err
}

// HasPrevious - Tells whether Previous would succeed
func (D *Disk) HasPrevious() (bool, error) {
	if D.current.IsNone() {
		return !D.last.IsNone(), nil
	}

	previous, err := D.previous(D.current)

	return !previous.IsNone() && err == nil, err
}

// InsertSorted - Inserts value before the first element that is not smaller than it.
// The scan reads one record per visited node, starting at the head.
func (D *Disk) InsertSorted(value float64) (err error) {
	if D.first.IsNone() {
		return D.Add(value)
	}

	firstValue, err := D.value(D.first)
	if err != nil {
		return
	}

	// One element, or the new element becomes the head
	if value <= firstValue || D.first == D.last {
		if value > firstValue {
			return D.Add(value)
		}

		var address file.Address
		address, err = D.appendNode(D.first, file.NoAddress, value)
		if err != nil {
			return
		}
		D.first = address
		D.length++

		return
	}

	// Find the node to insert after
	at := D.first
	next, err := D.next(at)
	if err != nil {
		return
	}
	for !next.IsNone() {
		var nextValue float64
		nextValue, err = D.value(next)
		if err != nil {
			return
		}
		if nextValue >= value {
			break
		}

		at = next
		next, err = D.next(at)
		if err != nil {
			return
		}
	}

	address, err := D.appendNode(next, at, value)
	if err != nil {
		return
	}
	if next.IsNone() {
		D.last = address
	}
	D.length++

	return
}

// Length - Returns the number of elements
func (D *Disk) Length() int {
	return D.length
}

// ReplaceContent - Takes over the file and structure of other, which must be a Disk list.
// Both files are closed before this list's file is removed and other's file is renamed to take its place.
func (D *Disk) ReplaceContent(other List) (err error) {
	donor, ok := other.(*Disk)
	if !ok {
		return mismatch(backend.Disk, other)
	}
	if donor == D {
		return
	}

	if err = donor.Close(); err != nil {
		return
	}
	if err = D.Close(); err != nil {
		return
	}

	err = file.ReplaceFile(D.fileName, donor.fileName)
	if err != nil {
		err = fmt.Errorf("error while replacing list file %s with %s: %w", D.fileName, donor.fileName, err)
		return
	}

	D.file, _, err = file.OpenExistingFile(D.fileName)
	if err != nil {
		err = fmt.Errorf("error while reopening list file %s: %w", D.fileName, err)
		return
	}

	D.first, D.last, D.length = donor.first, donor.last, donor.length
	D.current = file.NoAddress
	donor.reset()

	D.logger.Debug("list content replaced", zap.String("file", D.fileName), zap.String("donor", donor.fileName))

	return
}

// Sort - Sorts the list in ascending order by rewriting node links on file
func (D *Disk) Sort() (err error) {
	if D.length < 2 {
		return
	}

	first, last, err := linked.Sort[file.Address](diskNodes{f: D.file}, D.first)
	if err != nil {
		return
	}
	D.first, D.last = first, last

	return
}

// Backend - Returns backend.Disk
func (D *Disk) Backend() backend.Kind {
	return backend.Disk
}

// Scratch - Returns a new, empty Disk list in dir (or next to this list's file) with a unique file name
func (D *Disk) Scratch(dir string) (List, error) {
	if dir == "" {
		dir = filepath.Dir(D.fileName)
	}

	scratch, err := NewDisk(filepath.Join(dir, fmt.Sprintf("scratch-%s.bin", uuid.NewString())), D.logger)
	if err != nil {
		return nil, err
	}

	return scratch, nil
}

// Close - Closes the file, the list can not be used afterwards
func (D *Disk) Close() (err error) {
	if D.file == nil {
		return
	}

	err = file.CloseFile(D.file)
	D.file = nil
	D.logger.Debug("list file closed", zap.String("file", D.fileName))

	return
}

// Dispose - Closes and removes the file
func (D *Disk) Dispose() (err error) {
	if err = D.Close(); err != nil {
		return
	}
	D.reset()

	return file.RemoveFile(D.fileName)
}

// Print - Writes every element from head to tail
func (D *Disk) Print(w io.Writer) error {
	if D.length == 0 {
		return nil
	}

	return printValues(w, D.walk, 0, D.length)
}

// PrintRange - Writes count elements starting at index from
func (D *Disk) PrintRange(w io.Writer, from, count int) (err error) {
	if err = utils.CheckRange(from, count, D.length); err != nil {
		return
	}

	return printValues(w, D.walk, from, count)
}

// walk - Calls visit for every value from head to tail until it returns false, the cursor is untouched
func (D *Disk) walk(visit func(float64) bool) (err error) {
	var node model.ListNode
	for address := D.first; !address.IsNone(); address = node.Next {
		node, err = D.readNode(address)
		if err != nil {
			return
		}

		if !visit(node.Value) {
			break
		}
	}

	return
}

// reset - Forgets the structure, used once the file has been handed over or removed
func (D *Disk) reset() {
	D.first, D.last, D.current = file.NoAddress, file.NoAddress, file.NoAddress
	D.length = 0
}

// appendNode - Writes a new node at the end of the file and links it in between previous and next
func (D *Disk) appendNode(next, previous file.Address, value float64) (address file.Address, err error) {
	address, err = file.Append(D.file, nodeToBytes(model.ListNode{Next: next, Previous: previous, Value: value}))
	if err != nil {
		return
	}

	if !previous.IsNone() {
		if err = file.WriteAddress(D.file, previous+file.Address(conf.ListNextOffset), address); err != nil {
			return
		}
	}
	if !next.IsNone() {
		err = file.WriteAddress(D.file, next+file.Address(conf.ListPreviousOffset), address)
	}

	return
}

// readNode - Reads the whole node record at address
func (D *Disk) readNode(address file.Address) (node model.ListNode, err error) {
	buf, err := file.ReadBytes(D.file, address, conf.ListNodeLength)
	if err != nil {
		return
	}

	return bytesToNode(buf, address), nil
}

func (D *Disk) next(address file.Address) (file.Address, error) {
	return diskNodes{f: D.file}.Next(address)
}

func (D *Disk) previous(address file.Address) (file.Address, error) {
	return file.ReadAddress(D.file, address+file.Address(conf.ListPreviousOffset))
}

func (D *Disk) value(address file.Address) (float64, error) {
	return diskNodes{f: D.file}.Value(address)
}

// diskNodes - Gives the linked package access to Disk list node records
type diskNodes struct {
	f *os.File
}

func (diskNodes) None() file.Address { return file.NoAddress }

func (N diskNodes) Next(address file.Address) (file.Address, error) {
	return file.ReadAddress(N.f, address+file.Address(conf.ListNextOffset))
}

func (N diskNodes) SetNext(address, next file.Address) error {
	return file.WriteAddress(N.f, address+file.Address(conf.ListNextOffset), next)
}

func (N diskNodes) SetPrevious(address, previous file.Address) error {
	return file.WriteAddress(N.f, address+file.Address(conf.ListPreviousOffset), previous)
}

func (N diskNodes) Value(address file.Address) (float64, error) {
	return file.ReadFloat64(N.f, address+file.Address(conf.ListValueOffset))
}
