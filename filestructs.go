// Package filestructs creates arrays, lists and hash tables in either of two backends: memory, or disk
// where every element lives in a binary file and structure is kept through file addresses.
//
// The structures themselves live in the array, list and hashtable packages and the algorithms working on
// them in the sorting package. This package picks the backend from a Conf.
package filestructs

import (
	"fmt"
	"os"

	"github.com/gostonefire/filestructs/array"
	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/hashfunc"
	"github.com/gostonefire/filestructs/hashtable"
	"github.com/gostonefire/filestructs/internal/conf"
	"github.com/gostonefire/filestructs/list"
	"go.uber.org/zap"
)

// Conf - Parameters shared by all constructors
//   - Backend selects memory or disk
//   - FileName is the file a disk structure is stored in, it is mandatory for the disk backend and ignored for memory
//   - Logger is optional, nil disables logging
type Conf struct {
	Backend  backend.Kind
	FileName string
	Logger   *zap.Logger
}

// HashTableInfo - Information about a hash table
//   - Backend is where the table lives
//   - Capacity is the current number of slots
//   - Elements is the number of distinct keys
//   - Chains is the number of non-empty slots
//   - LoadFactor is Elements / Capacity, the table doubles before a put when it exceeds 0.75
//   - FileSize is the size of the backing file, zero for the memory backend
type HashTableInfo struct {
	Backend    backend.Kind
	Capacity   int
	Elements   int
	Chains     int
	LoadFactor float64
	FileSize   int64
}

// fileBacked - Implemented by every disk structure
type fileBacked interface {
	FileName() string
}

// NewArray - Returns a new array with length zero valued elements.
// A disk array truncates any existing file with the same name.
func NewArray(structConf Conf, length int) (a array.Array, err error) {
	if err = structConf.validate(); err != nil {
		return
	}

	switch structConf.Backend {
	case backend.Disk:
		var diskArray *array.Disk
		if diskArray, err = array.NewDisk(structConf.FileName, length, structConf.Logger); err != nil {
			return
		}
		return diskArray, nil
	default:
		if length < 0 {
			return nil, fmt.Errorf("array length must not be negative, got %d", length)
		}
		return array.NewMemory(length), nil
	}
}

// OpenArray - Opens an existing disk array file, the length is given by the file size
func OpenArray(fileName string, logger *zap.Logger) (a array.Array, err error) {
	if fileName == "" {
		err = fmt.Errorf("file name can not be empty")
		return
	}

	diskArray, err := array.OpenDisk(fileName, logger)
	if err != nil {
		return
	}

	return diskArray, nil
}

// NewList - Returns a new, empty list.
// A disk list truncates any existing file with the same name.
func NewList(structConf Conf) (l list.List, err error) {
	if err = structConf.validate(); err != nil {
		return
	}

	switch structConf.Backend {
	case backend.Disk:
		var diskList *list.Disk
		if diskList, err = list.NewDisk(structConf.FileName, structConf.Logger); err != nil {
			return
		}
		return diskList, nil
	default:
		return list.NewMemory(), nil
	}
}

// NewHashTable - Returns a new, empty hash table.
//   - structConf is the backend selection
//   - capacity is the initial number of slots, it must be greater than zero and doubles whenever the load factor is exceeded
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface
//
// It returns:
//   - h is the new hash table
//   - info is a HashTableInfo struct describing the new table
//   - err is a normal Go error which should be nil if everything went ok
func NewHashTable(structConf Conf, capacity int, hashAlgorithm hashfunc.HashAlgorithm) (h hashtable.HashTable, info HashTableInfo, err error) {
	if err = structConf.validate(); err != nil {
		return
	}

	hashConf := hashtable.Conf{
		FileName:      structConf.FileName,
		Capacity:      capacity,
		HashAlgorithm: hashAlgorithm,
		Logger:        structConf.Logger,
	}

	switch structConf.Backend {
	case backend.Disk:
		var diskTable *hashtable.Disk
		if diskTable, err = hashtable.NewDisk(hashConf); err != nil {
			return
		}
		h = diskTable
	default:
		var memoryTable *hashtable.Memory
		if memoryTable, err = hashtable.NewMemory(hashConf); err != nil {
			return
		}
		h = memoryTable
	}

	info, err = Stat(h)

	return
}

// Stat - Returns current information about a hash table
func Stat(h hashtable.HashTable) (info HashTableInfo, err error) {
	info = HashTableInfo{
		Backend:  h.Backend(),
		Capacity: h.Capacity(),
		Elements: h.ElementCount(),
		Chains:   h.ChainCount(),
	}
	if info.Capacity > 0 {
		info.LoadFactor = float64(info.Elements) / float64(info.Capacity)
	}

	if fb, ok := h.(fileBacked); ok {
		var stat os.FileInfo
		stat, err = os.Stat(fb.FileName())
		if err != nil {
			err = fmt.Errorf("error while getting size of hash table file: %w", err)
			return
		}
		info.FileSize = stat.Size()
	}

	return
}

// OverLoaded - Tells whether the next put into a table described by info will double its capacity first
func (H HashTableInfo) OverLoaded() bool {
	return H.LoadFactor > conf.LoadFactor
}

// validate - Checks that the configuration names a known backend and, for disk, a file
func (C Conf) validate() error {
	switch C.Backend {
	case backend.Memory:
		return nil
	case backend.Disk:
		if C.FileName == "" {
			return fmt.Errorf("file name can not be empty for the %s backend", C.Backend)
		}
		return nil
	default:
		return fmt.Errorf("unknown backend %s", C.Backend)
	}
}
