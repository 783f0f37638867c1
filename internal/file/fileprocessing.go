package file

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gostonefire/filestructs/internal/conf"
	"github.com/gostonefire/filestructs/storeerr"
)

// errAddressSpace - The file has grown past what a 32-bit address can point at
var errAddressSpace = errors.New("file exceeds 32-bit address space")

// errClosed - An operation was attempted on a closed file
var errClosed = errors.New("file is closed")

// CreateNewFile - Creates a new file. If it already exists it will first be truncated to zero length
// and then to fileSize, hence deleting all existing data.
func CreateNewFile(fileName string, fileSize int64) (filePtr *os.File, err error) {
	filePtr, err = os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_RDWR, conf.FileMode)
	if err != nil {
		err = storeerr.NewIOFailure("create", err)
		return
	}

	if fileSize > 0 {
		err = filePtr.Truncate(fileSize)
		if err != nil {
			_ = filePtr.Close()
			filePtr = nil
			err = storeerr.NewIOFailure("truncate", fmt.Errorf("new file to length %d: %w", fileSize, err))
		}
	}

	return
}

// OpenExistingFile - Opens an existing file for reading and writing and returns its current size
func OpenExistingFile(fileName string) (filePtr *os.File, size int64, err error) {
	stat, err := os.Stat(fileName)
	if err != nil {
		err = storeerr.NewIOFailure("stat", err)
		return
	}
	if stat.IsDir() {
		err = storeerr.NewIOFailure("open", fmt.Errorf("%s is a directory", fileName))
		return
	}

	filePtr, err = os.OpenFile(fileName, os.O_RDWR, conf.FileMode)
	if err != nil {
		err = storeerr.NewIOFailure("open", err)
		return
	}
	size = stat.Size()

	return
}

// CloseFile - Syncs and closes the file, a nil file is ignored
func CloseFile(f *os.File) (err error) {
	if f == nil {
		return
	}

	syncErr := f.Sync()
	err = f.Close()
	if err == nil {
		err = syncErr
	}

	return storeerr.NewIOFailure("close", err)
}

// RemoveFile - Removes the file, make sure to close it first before calling this function.
// Only tries to remove if it exists and is not by accident a directory.
func RemoveFile(fileName string) (err error) {
	if stat, ok := os.Stat(fileName); ok == nil {
		if !stat.IsDir() {
			err = os.Remove(fileName)
			if err != nil {
				err = storeerr.NewIOFailure("remove", err)
			}
		}
	}

	return
}

// ReplaceFile - Makes the contents of source reachable under the name target and discards
// whatever target held before. Both files must be closed before calling this function.
func ReplaceFile(target, source string) (err error) {
	err = RemoveFile(target)
	if err != nil {
		return
	}

	err = os.Rename(source, target)
	if err != nil {
		err = storeerr.NewIOFailure("rename", err)
	}

	return
}

// Truncate - Sets the file size, new bytes are zero
func Truncate(f *os.File, size int64) (err error) {
	if f == nil {
		return storeerr.NewIOFailure("truncate", errClosed)
	}

	return storeerr.NewIOFailure("truncate", f.Truncate(size))
}

// End - Returns the address just past the last byte in the file, which is where the next appended record lands
func End(f *os.File) (address Address, err error) {
	if f == nil {
		err = storeerr.NewIOFailure("seek", errClosed)
		return
	}

	offset, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		err = storeerr.NewIOFailure("seek", err)
		return
	}
	if offset > math.MaxInt32 {
		err = storeerr.NewIOFailure("allocate", errAddressSpace)
		return
	}
	address = Address(offset)

	return
}

// ReadBytes - Reads n bytes starting at address
func ReadBytes(f *os.File, address Address, n int64) (buf []byte, err error) {
	if f == nil {
		err = storeerr.NewIOFailure("read", errClosed)
		return
	}

	_, err = f.Seek(int64(address), io.SeekStart)
	if err != nil {
		err = storeerr.NewIOFailure("seek", err)
		return
	}

	buf = make([]byte, n)
	_, err = io.ReadFull(f, buf)
	if err != nil {
		buf = nil
		err = storeerr.NewIOFailure("read", fmt.Errorf("%d bytes at address %d: %w", n, address, err))
	}

	return
}

// WriteBytes - Writes buf starting at address
func WriteBytes(f *os.File, address Address, buf []byte) (err error) {
	if f == nil {
		return storeerr.NewIOFailure("write", errClosed)
	}

	_, err = f.Seek(int64(address), io.SeekStart)
	if err != nil {
		return storeerr.NewIOFailure("seek", err)
	}

	_, err = f.Write(buf)

	return storeerr.NewIOFailure("write", err)
}

// Append - Writes buf at the end of the file and returns the address it was written to
func Append(f *os.File, buf []byte) (address Address, err error) {
	address, err = End(f)
	if err != nil {
		return
	}
	if int64(address)+int64(len(buf)) > math.MaxInt32 {
		err = storeerr.NewIOFailure("allocate", errAddressSpace)
		return
	}

	_, err = f.Write(buf)
	if err != nil {
		err = storeerr.NewIOFailure("write", err)
	}

	return
}

// ReadAddress - Reads an int32 address stored at address
func ReadAddress(f *os.File, address Address) (value Address, err error) {
	buf, err := ReadBytes(f, address, conf.AddressLength)
	if err != nil {
		return
	}
	value = GetAddress(buf)

	return
}

// WriteAddress - Writes value as an int32 address at address
func WriteAddress(f *os.File, address, value Address) (err error) {
	buf := make([]byte, conf.AddressLength)
	PutAddress(buf, value)

	return WriteBytes(f, address, buf)
}

// ReadFloat64 - Reads a float64 stored at address
func ReadFloat64(f *os.File, address Address) (value float64, err error) {
	buf, err := ReadBytes(f, address, conf.FloatLength)
	if err != nil {
		return
	}
	value = GetFloat64(buf)

	return
}

// WriteFloat64 - Writes value as a float64 at address
func WriteFloat64(f *os.File, address Address, value float64) (err error) {
	buf := make([]byte, conf.FloatLength)
	PutFloat64(buf, value)

	return WriteBytes(f, address, buf)
}

// ReadString - Reads a length prefixed string stored at address
func ReadString(f *os.File, address Address) (s string, err error) {
	prefix, err := ReadBytes(f, address, conf.StringLengthPrefix)
	if err != nil {
		return
	}

	n := int64(binary.LittleEndian.Uint16(prefix))
	if n == 0 {
		return
	}

	buf, err := ReadBytes(f, address+Address(conf.StringLengthPrefix), n)
	if err != nil {
		return
	}
	s = string(buf)

	return
}

// WriteString - Writes s with its length prefix at address
func WriteString(f *os.File, address Address, s string) (err error) {
	buf := make([]byte, 0, StringLength(s))
	buf = AppendString(buf, s)

	return WriteBytes(f, address, buf)
}
