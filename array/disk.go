package array

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/internal/conf"
	"github.com/gostonefire/filestructs/internal/file"
	"github.com/gostonefire/filestructs/internal/utils"
	"github.com/gostonefire/filestructs/storeerr"
	"go.uber.org/zap"
)

// Disk - Array that stores its elements in a file, element i at byte offset i*8.
// Every operation goes straight to the file, nothing is cached.
type Disk struct {
	fileName string
	file     *os.File
	length   int
	logger   *zap.Logger
}

// NewDisk - Returns a pointer to a new Disk array backed by a new file.
// If the file already exists it is truncated, hence deleting all existing data.
//   - fileName is the file to store elements in
//   - length is the number of zero valued elements to allocate
//   - logger is optional, nil disables logging
func NewDisk(fileName string, length int, logger *zap.Logger) (diskArray *Disk, err error) {
	if length < 0 {
		err = storeerr.NewOutOfRange("negative array length %d", length)
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	f, err := file.CreateNewFile(fileName, int64(length)*conf.FloatLength)
	if err != nil {
		err = fmt.Errorf("error while creating array file %s: %w", fileName, err)
		return
	}

	diskArray = &Disk{fileName: fileName, file: f, length: length, logger: logger}
	logger.Debug("array file created", zap.String("file", fileName), zap.Int("length", length))

	return
}

// OpenDisk - Returns a pointer to a Disk array backed by an existing file, the length is given by the
// file size. It fails if the file size is not a whole number of elements.
func OpenDisk(fileName string, logger *zap.Logger) (diskArray *Disk, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	f, size, err := file.OpenExistingFile(fileName)
	if err != nil {
		err = fmt.Errorf("unable to open existing array file: %w", err)
		return
	}

	if size%conf.FloatLength != 0 {
		_ = f.Close()
		err = storeerr.NewIOFailure("open", fmt.Errorf("array file size %d is not a multiple of %d", size, conf.FloatLength))
		return
	}

	diskArray = &Disk{fileName: fileName, file: f, length: int(size / conf.FloatLength), logger: logger}
	logger.Debug("array file opened", zap.String("file", fileName), zap.Int("length", diskArray.length))

	return
}

// FileName - Returns the name of the backing file
func (D *Disk) FileName() string {
	return D.fileName
}

// Get - Returns the element at index
func (D *Disk) Get(index int) (value float64, err error) {
	if err = utils.CheckIndex(index, D.length); err != nil {
		return
	}

	return file.ReadFloat64(D.file, elementAddress(index))
}

// Set - Stores value at index
func (D *Disk) Set(index int, value float64) (err error) {
	if err = utils.CheckIndex(index, D.length); err != nil {
		return
	}

	return file.WriteFloat64(D.file, elementAddress(index), value)
}

// SetLength - Truncates the file to zero and then to length elements
func (D *Disk) SetLength(length int) (err error) {
	if length < 0 {
		return storeerr.NewOutOfRange("negative array length %d", length)
	}

	if err = file.Truncate(D.file, 0); err != nil {
		return
	}
	if err = file.Truncate(D.file, int64(length)*conf.FloatLength); err != nil {
		return
	}
	D.length = length

	return
}

// Swap - Exchanges the elements at indexes a and b. Both values are read before any is written back.
func (D *Disk) Swap(a, b int) (err error) {
	if err = utils.CheckIndex(a, D.length); err != nil {
		return
	}
	if err = utils.CheckIndex(b, D.length); err != nil {
		return
	}

	valueA, err := file.ReadFloat64(D.file, elementAddress(a))
	if err != nil {
		return
	}
	valueB, err := file.ReadFloat64(D.file, elementAddress(b))
	if err != nil {
		return
	}

	if err = file.WriteFloat64(D.file, elementAddress(a), valueB); err != nil {
		return
	}

	return file.WriteFloat64(D.file, elementAddress(b), valueA)
}

// Length - Returns the number of elements
func (D *Disk) Length() int {
	return D.length
}

// Backend - Returns backend.Disk
func (D *Disk) Backend() backend.Kind {
	return backend.Disk
}

// Scratch - Returns a new Disk array in dir (or next to this array's file) with a unique file name
func (D *Disk) Scratch(dir string, length int) (Array, error) {
	if dir == "" {
		dir = filepath.Dir(D.fileName)
	}

	scratch, err := NewDisk(filepath.Join(dir, fmt.Sprintf("scratch-%s.bin", uuid.NewString())), length, D.logger)
	if err != nil {
		return nil, err
	}

	return scratch, nil
}

// Close - Closes the file, the array can not be used afterwards
func (D *Disk) Close() (err error) {
	if D.file == nil {
		return
	}

	err = file.CloseFile(D.file)
	D.file = nil
	D.logger.Debug("array file closed", zap.String("file", D.fileName))

	return
}

// Dispose - Closes and removes the file
func (D *Disk) Dispose() (err error) {
	if err = D.Close(); err != nil {
		return
	}
	D.length = 0

	return file.RemoveFile(D.fileName)
}

// Print - Writes every element
func (D *Disk) Print(w io.Writer) error {
	return printValues(w, D.Get, 0, D.length)
}

// PrintRange - Writes count elements starting at from
func (D *Disk) PrintRange(w io.Writer, from, count int) (err error) {
	if err = utils.CheckRange(from, count, D.length); err != nil {
		return
	}

	return printValues(w, D.Get, from, count)
}

// elementAddress - Returns the file address of element index
func elementAddress(index int) file.Address {
	return file.Address(int64(index) * conf.FloatLength)
}
