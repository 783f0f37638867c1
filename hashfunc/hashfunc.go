package hashfunc

// HashAlgorithm - Interface that permits a caller of the hash tables to supply a custom slot
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a hash table is created and every time it doubles its capacity. Hence, if a custom
	// hash algorithm already has a table size, it will be overwritten by the capacity of the hash table.
	//   - tableSize is the number of slots the hash table addresses
	SetTableSize(tableSize int64)

	// HashFunc - Given key it generates a slot index between 0 and table size - 1.
	// The same key must always give the same index for the same table size, and a number outside
	// 0 -> table size - 1 will result in an error down stream.
	HashFunc(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is currently supporting
	GetTableSize() int64
}
