package hash

import (
	"github.com/cespare/xxhash/v2"
)

// ChainingHashAlgorithm - The internally used slot selection algorithm is implemented using xxhash to
// create a 64-bit hash value over the key and then applying slot = hash % tableSize to get the slot index.
// The hash value is unsigned, so the slot index is never negative.
type ChainingHashAlgorithm struct {
	tableSize int64
}

// NewChainingHashAlgorithm - Returns a pointer to a new ChainingHashAlgorithm instance
func NewChainingHashAlgorithm(tableSize int64) *ChainingHashAlgorithm {
	ha := &ChainingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm, a size lower than 1 is treated as 1
//   - tableSize is the number of slots the hash table addresses
func (C *ChainingHashAlgorithm) SetTableSize(tableSize int64) {
	if tableSize < 1 {
		tableSize = 1
	}
	C.tableSize = tableSize
}

// HashFunc - Given key it generates an index (slot) between 0 and table size - 1
func (C *ChainingHashAlgorithm) HashFunc(key []byte) int64 {
	return int64(xxhash.Sum64(key) % uint64(C.tableSize))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (C *ChainingHashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}
