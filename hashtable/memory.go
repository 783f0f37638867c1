package hashtable

import (
	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/hashfunc"
	"github.com/gostonefire/filestructs/storeerr"
	"go.uber.org/zap"
)

// Memory - Hash table with one native map per slot standing in for a chain
type Memory struct {
	slots         []map[string]string
	elements      int
	chains        int
	hashAlgorithm hashfunc.HashAlgorithm
	logger        *zap.Logger
}

// NewMemory - Returns a pointer to a new, empty Memory hash table, hashConf.FileName is ignored
func NewMemory(hashConf Conf) (memoryTable *Memory, err error) {
	hashConf, err = hashConf.prepare()
	if err != nil {
		return
	}

	memoryTable = &Memory{
		slots:         make([]map[string]string, hashConf.Capacity),
		hashAlgorithm: hashConf.HashAlgorithm,
		logger:        hashConf.Logger,
	}

	return
}

// Put - Inserts or updates key with value, doubling the capacity first if the table is over its load factor
func (M *Memory) Put(key, value string) (stored string, err error) {
	if err = checkLengths(key, value); err != nil {
		return
	}

	if overLoaded(M.elements, len(M.slots)) {
		if err = M.resize(len(M.slots) * 2); err != nil {
			return
		}
	}

	slot, err := slotOf(M.hashAlgorithm, key, len(M.slots))
	if err != nil {
		return
	}

	if old, ok := M.slots[slot][key]; ok {
		if err = checkUpdate(key, old, value); err != nil {
			return
		}
		M.slots[slot][key] = value

		return value, nil
	}

	M.insert(slot, key, value)

	return value, nil
}

// Get - Returns the value stored for key, or storeerr.NoRecordFound
func (M *Memory) Get(key string) (value string, err error) {
	slot, err := slotOf(M.hashAlgorithm, key, len(M.slots))
	if err != nil {
		return
	}

	value, ok := M.slots[slot][key]
	if !ok {
		err = storeerr.NewNoRecordFound("no record found for key %q", key)
	}

	return
}

// Hash - Returns the slot index for key
func (M *Memory) Hash(key string) int {
	return int(M.hashAlgorithm.HashFunc([]byte(key)))
}

// ChainCount - Returns the number of non-empty slots
func (M *Memory) ChainCount() int {
	return M.chains
}

// ElementCount - Returns the number of distinct keys
func (M *Memory) ElementCount() int {
	return M.elements
}

// Capacity - Returns the number of slots
func (M *Memory) Capacity() int {
	return len(M.slots)
}

// Backend - Returns backend.Memory
func (M *Memory) Backend() backend.Kind {
	return backend.Memory
}

// Close - Nothing to release
func (M *Memory) Close() error {
	return nil
}

// Dispose - Drops all slots
func (M *Memory) Dispose() error {
	M.slots = nil
	M.elements, M.chains = 0, 0

	return nil
}

// insert - Adds a key known to be absent to slot
func (M *Memory) insert(slot int, key, value string) {
	if M.slots[slot] == nil {
		M.slots[slot] = make(map[string]string)
		M.chains++
	}
	M.slots[slot][key] = value
	M.elements++
}

// resize - Rehashes every element into a new slot table with the given capacity
func (M *Memory) resize(capacity int) (err error) {
	old := M.slots
	M.hashAlgorithm.SetTableSize(int64(capacity))

	M.slots = make([]map[string]string, capacity)
	M.elements, M.chains = 0, 0

	var slot int
	for _, chain := range old {
		for key, value := range chain {
			slot, err = slotOf(M.hashAlgorithm, key, capacity)
			if err != nil {
				M.slots = old
				M.hashAlgorithm.SetTableSize(int64(len(old)))
				M.recount()
				return
			}
			M.insert(slot, key, value)
		}
	}

	M.logger.Debug("hash table resized", zap.Int("from", len(old)), zap.Int("to", capacity), zap.Int("elements", M.elements))

	return
}

// recount - Recomputes element and chain counts from the slots
func (M *Memory) recount() {
	M.elements, M.chains = 0, 0
	for _, chain := range M.slots {
		if len(chain) > 0 {
			M.chains++
			M.elements += len(chain)
		}
	}
}
