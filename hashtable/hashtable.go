// Package hashtable provides string to string hash tables using separate chaining, with a memory and
// a disk backend that behave the same way.
//
// Both backends double their capacity before a put whenever the element count exceeds capacity*0.75,
// and neither accepts an update that makes a stored value longer than the value it replaces.
package hashtable

import (
	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/hashfunc"
	"github.com/gostonefire/filestructs/internal/conf"
	"github.com/gostonefire/filestructs/internal/hash"
	"github.com/gostonefire/filestructs/storeerr"
	"go.uber.org/zap"
)

// HashTable - Capability set shared by every hash table backend
type HashTable interface {
	// Put - Inserts key with value, or updates the value of an existing key, and returns the stored value.
	// An update fails with storeerr.ValueTooLong if value is longer than the value currently stored.
	Put(key, value string) (string, error)

	// Get - Returns the value of key, or storeerr.NoRecordFound if it is not in the table
	Get(key string) (string, error)

	// Hash - Returns the slot index key maps to at the current capacity
	Hash(key string) int

	// ChainCount - Returns the number of non-empty slots
	ChainCount() int

	// ElementCount - Returns the number of distinct keys
	ElementCount() int

	// Capacity - Returns the current number of slots
	Capacity() int

	// Backend - Tells which backend the table lives in
	Backend() backend.Kind

	// Close - Releases resources held by the table without deleting anything
	Close() error

	// Dispose - Releases the table's storage, a disk table deletes its file
	Dispose() error
}

// Conf - Parameters for creating a hash table
type Conf struct {
	// FileName is the file to store a disk table in, it is ignored by the memory backend
	FileName string
	// Capacity is the initial number of slots, must be greater than zero
	Capacity int
	// HashAlgorithm is optional, the internal xxhash based algorithm is used if nil
	HashAlgorithm hashfunc.HashAlgorithm
	// Logger is optional, nil disables logging
	Logger *zap.Logger
}

// prepare - Validates the configuration and fills in defaults
func (C Conf) prepare() (Conf, error) {
	if C.Capacity <= 0 {
		return C, storeerr.NewOutOfRange("hash table capacity must be greater than zero, got %d", C.Capacity)
	}

	if C.HashAlgorithm == nil {
		C.HashAlgorithm = hash.NewChainingHashAlgorithm(int64(C.Capacity))
	} else {
		C.HashAlgorithm.SetTableSize(int64(C.Capacity))
	}

	if C.Logger == nil {
		C.Logger = zap.NewNop()
	}

	return C, nil
}

// checkLengths - Makes sure both strings fit behind a length prefix
func checkLengths(key, value string) error {
	if int64(len(key)) > conf.MaxStringLength {
		return storeerr.NewValueTooLong("key of %d bytes exceeds max length %d", len(key), conf.MaxStringLength)
	}
	if int64(len(value)) > conf.MaxStringLength {
		return storeerr.NewValueTooLong("value of %d bytes exceeds max length %d", len(value), conf.MaxStringLength)
	}

	return nil
}

// checkUpdate - Makes sure an update does not grow the stored value
func checkUpdate(key, oldValue, newValue string) error {
	if len(newValue) > len(oldValue) {
		return storeerr.NewValueTooLong("new value for key %q is %d bytes, stored value is %d bytes", key, len(newValue), len(oldValue))
	}

	return nil
}

// overLoaded - Tells whether the table has to grow before the next put
func overLoaded(elements, capacity int) bool {
	return float64(elements) > float64(capacity)*conf.LoadFactor
}

// slotOf - Hashes key and validates the slot against capacity, a custom hash algorithm may misbehave
func slotOf(hashAlgorithm hashfunc.HashAlgorithm, key string, capacity int) (slot int, err error) {
	h := hashAlgorithm.HashFunc([]byte(key))
	if h < 0 || h >= int64(capacity) {
		err = storeerr.NewOutOfRange("hash algorithm returned slot %d for capacity %d", h, capacity)
		return
	}

	return int(h), nil
}
