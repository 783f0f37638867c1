package conf

// FloatLength - Length of one float64 element on disk, which is also the stride of an array file
const FloatLength int64 = 8

// AddressLength - Length of a file address (int32) stored inside records
const AddressLength int64 = 4

// NoAddress - Address value meaning "no record"
const NoAddress int32 = -1

// ListNodeLength - Length of one list node record
const ListNodeLength int64 = 16

// ListNextOffset - Record offset to the address of the next node - 4 bytes
const ListNextOffset int64 = 0

// ListPreviousOffset - Record offset to the address of the previous node - 4 bytes
const ListPreviousOffset int64 = 4

// ListValueOffset - Record offset to the node value - 8 bytes
const ListValueOffset int64 = 8

// SlotLength - Length of one slot in the hash table slot table
const SlotLength int64 = 4

// ChainNextOffset - Chain node offset to the address of the next node in the chain - 4 bytes
const ChainNextOffset int64 = 0

// ChainKeyOffset - Chain node offset to the length prefixed key
const ChainKeyOffset int64 = 4

// StringLengthPrefix - Length of the length prefix in front of every stored string
const StringLengthPrefix int64 = 2

// MaxStringLength - Max number of bytes in a stored string
const MaxStringLength int64 = 1<<16 - 1

// LoadFactor - Share of capacity that may be exceeded by the element count before the hash table doubles
const LoadFactor float64 = 0.75

// FileMode - Permission bits for created files
const FileMode = 0644
