package hashtable

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/hashfunc"
	"github.com/gostonefire/filestructs/internal/chain"
	"github.com/gostonefire/filestructs/internal/conf"
	"github.com/gostonefire/filestructs/internal/file"
	"github.com/gostonefire/filestructs/internal/model"
	"github.com/gostonefire/filestructs/storeerr"
	"go.uber.org/zap"
)

// Disk - Represents a hash table using separate chaining where everything lives in one file.
// The file starts with the slot table, capacity int32 addresses of chain heads, followed by chain nodes
// appended in the order they were created. A chain node holds the address of the next node in the chain,
// the key and the value, both strings being length prefixed.
type Disk struct {
	fileName      string
	file          *os.File
	capacity      int
	elements      int
	chains        int
	hashAlgorithm hashfunc.HashAlgorithm
	logger        *zap.Logger
}

// NewDisk - Returns a pointer to a new, empty Disk hash table.
// It always creates a new file (or opens and truncates an existing file)
//   - hashConf is a Conf struct where FileName and Capacity are mandatory
//
// It returns:
//   - diskTable which is a pointer to the created instance
//   - err which is storeerr.OutOfRange for a capacity below one or storeerr.IOFailure if the file could not be created
func NewDisk(hashConf Conf) (diskTable *Disk, err error) {
	hashConf, err = hashConf.prepare()
	if err != nil {
		return
	}

	f, err := file.CreateNewFile(hashConf.FileName, 0)
	if err != nil {
		err = fmt.Errorf("error while creating hash table file %s: %w", hashConf.FileName, err)
		return
	}

	err = file.WriteBytes(f, 0, emptySlotTable(hashConf.Capacity))
	if err != nil {
		_ = file.CloseFile(f)
		err = fmt.Errorf("error while writing slot table to %s: %w", hashConf.FileName, err)
		return
	}

	diskTable = &Disk{
		fileName:      hashConf.FileName,
		file:          f,
		capacity:      hashConf.Capacity,
		hashAlgorithm: hashConf.HashAlgorithm,
		logger:        hashConf.Logger,
	}
	diskTable.logger.Debug("hash table file created", zap.String("file", hashConf.FileName), zap.Int("capacity", hashConf.Capacity))

	return
}

// FileName - Returns the name of the backing file
func (D *Disk) FileName() string {
	return D.fileName
}

// Put - Inserts or updates key with value.
// If the table is over its load factor it first doubles its capacity. An empty slot gets a new chain at
// the end of the file, otherwise the chain is searched for key. A found key has its value overwritten in
// place, a new key is appended at the end of the file and linked from the last node in the chain.
//   - key and value may each be at most 65535 bytes
//
// It returns:
//   - stored is the value now stored for key
//   - err is storeerr.ValueTooLong if an update would grow the stored value, or a standard error
func (D *Disk) Put(key, value string) (stored string, err error) {
	if err = checkLengths(key, value); err != nil {
		return
	}

	if overLoaded(D.elements, D.capacity) {
		if err = D.resize(D.capacity * 2); err != nil {
			return
		}
	}

	slot, err := slotOf(D.hashAlgorithm, key, D.capacity)
	if err != nil {
		return
	}
	chainAddress, err := file.ReadAddress(D.file, slotAddress(slot))
	if err != nil {
		return
	}

	newNode := chainNodeToBytes(model.ChainNode{Next: file.NoAddress, Key: key, Value: value})

	// Empty slot, start a new chain
	if chainAddress.IsNone() {
		var address file.Address
		address, err = file.Append(D.file, newNode)
		if err != nil {
			return
		}
		if err = file.WriteAddress(D.file, slotAddress(slot), address); err != nil {
			return
		}

		D.chains++
		D.elements++

		return value, nil
	}

	// Search the chain for key, keeping track of the last node in case it is not found
	var node model.ChainNode
	records := chain.NewRecords(D.readNode, chainAddress)
	for records.HasNext() {
		node, err = records.Next()
		if err != nil {
			return
		}

		if node.Key == key {
			if err = checkUpdate(key, node.Value, value); err != nil {
				return
			}
			if err = file.WriteString(D.file, node.ValueAddress(), value); err != nil {
				return
			}

			return value, nil
		}
	}

	address, err := file.Append(D.file, newNode)
	if err != nil {
		return
	}
	if err = file.WriteAddress(D.file, node.Address+file.Address(conf.ChainNextOffset), address); err != nil {
		return
	}
	D.elements++

	return value, nil
}

// Get - Gets the value stored for key.
// It returns:
//   - value is the stored value if found, if not found an error of type storeerr.NoRecordFound is returned.
//   - err is either of type storeerr.NoRecordFound or a standard error, if something went wrong
func (D *Disk) Get(key string) (value string, err error) {
	slot, err := slotOf(D.hashAlgorithm, key, D.capacity)
	if err != nil {
		return
	}
	chainAddress, err := file.ReadAddress(D.file, slotAddress(slot))
	if err != nil {
		return
	}

	var node model.ChainNode
	records := chain.NewRecords(D.readNode, chainAddress)
	for records.HasNext() {
		node, err = records.Next()
		if err != nil {
			return
		}
		if node.Key == key {
			return node.Value, nil
		}
	}

	err = storeerr.NewNoRecordFound("no record found for key %q", key)

	return
}

// Hash - Returns the slot index for key
func (D *Disk) Hash(key string) int {
	return int(D.hashAlgorithm.HashFunc([]byte(key)))
}

// ChainCount - Returns the number of non-empty slots
func (D *Disk) ChainCount() int {
	return D.chains
}

// ElementCount - Returns the number of distinct keys
func (D *Disk) ElementCount() int {
	return D.elements
}

// Capacity - Returns the number of slots
func (D *Disk) Capacity() int {
	return D.capacity
}

// Backend - Returns backend.Disk
func (D *Disk) Backend() backend.Kind {
	return backend.Disk
}

// Close - Closes the file, the table can not be used afterwards
func (D *Disk) Close() (err error) {
	if D.file == nil {
		return
	}

	err = file.CloseFile(D.file)
	D.file = nil
	D.logger.Debug("hash table file closed", zap.String("file", D.fileName))

	return
}

// Dispose - Closes and removes the file
func (D *Disk) Dispose() (err error) {
	if err = D.Close(); err != nil {
		return
	}
	D.elements, D.chains = 0, 0

	return file.RemoveFile(D.fileName)
}

// resize - Rehashes every element into a new table with the given capacity and then takes over its file.
// The new table is built in a uniquely named file next to this table's file, so the final rename stays
// within one directory.
func (D *Disk) resize(capacity int) (err error) {
	tempName := filepath.Join(filepath.Dir(D.fileName), fmt.Sprintf("temp-%s.bin", uuid.NewString()))

	// The hash algorithm is shared with the new table, which resets its table size
	defer func() {
		if err != nil {
			D.hashAlgorithm.SetTableSize(int64(D.capacity))
		}
	}()

	temp, err := NewDisk(Conf{FileName: tempName, Capacity: capacity, HashAlgorithm: D.hashAlgorithm, Logger: D.logger})
	if err != nil {
		err = fmt.Errorf("error while creating table for resize: %w", err)
		return
	}

	if err = D.rehashInto(temp); err != nil {
		if disposeErr := temp.Dispose(); disposeErr != nil {
			D.logger.Warn("unable to remove resize table", zap.String("file", tempName), zap.Error(disposeErr))
		}
		return
	}

	// Both handles must be closed before the files are swapped
	if err = temp.Close(); err != nil {
		return
	}
	if err = D.Close(); err != nil {
		return
	}

	if err = file.ReplaceFile(D.fileName, tempName); err != nil {
		err = fmt.Errorf("error while replacing hash table file %s: %w", D.fileName, err)
		return
	}

	D.file, _, err = file.OpenExistingFile(D.fileName)
	if err != nil {
		err = fmt.Errorf("error while reopening hash table file %s: %w", D.fileName, err)
		return
	}

	D.logger.Debug("hash table resized",
		zap.String("file", D.fileName),
		zap.Int("from", D.capacity),
		zap.Int("to", temp.capacity),
		zap.Int("elements", temp.elements))

	D.capacity = temp.capacity
	D.elements = temp.elements
	D.chains = temp.chains

	return
}

// rehashInto - Puts every element of every chain into target
func (D *Disk) rehashInto(target *Disk) (err error) {
	var chainAddress file.Address
	var node model.ChainNode

	for slot := 0; slot < D.capacity; slot++ {
		chainAddress, err = file.ReadAddress(D.file, slotAddress(slot))
		if err != nil {
			return
		}

		records := chain.NewRecords(D.readNode, chainAddress)
		for records.HasNext() {
			node, err = records.Next()
			if err != nil {
				return
			}
			if _, err = target.Put(node.Key, node.Value); err != nil {
				return
			}
		}
	}

	return
}

// readNode - Reads the chain node stored at address
func (D *Disk) readNode(address file.Address) (node model.ChainNode, err error) {
	node.Address = address

	node.Next, err = file.ReadAddress(D.file, address+file.Address(conf.ChainNextOffset))
	if err != nil {
		return
	}
	node.Key, err = file.ReadString(D.file, address+file.Address(conf.ChainKeyOffset))
	if err != nil {
		return
	}
	node.Value, err = file.ReadString(D.file, node.ValueAddress())

	return
}
