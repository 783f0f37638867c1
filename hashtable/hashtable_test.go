//go:build unit

package hashtable

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/storeerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// constantHash - Puts every key in slot 0, giving a single chain
type constantHash struct {
	tableSize int64
}

func (C *constantHash) SetTableSize(tableSize int64) { C.tableSize = tableSize }
func (C *constantHash) HashFunc(_ []byte) int64 { return 0 }
func (C *constantHash) GetTableSize() int64 { return C.tableSize }

// outOfRangeHash - Returns a slot outside the table
type outOfRangeHash struct {
	constantHash
}

func (O *outOfRangeHash) HashFunc(_ []byte) int64 { return O.tableSize }

// backends - Returns a constructor per backend so the same checks run against both
func backends(t *testing.T) map[string]func(hashConf Conf) HashTable {
	dir := t.TempDir()
	return map[string]func(hashConf Conf) HashTable{
		"memory": func(hashConf Conf) HashTable {
			h, err := NewMemory(hashConf)
			require.NoError(t, err, "create memory table")
			return h
		},
		"disk": func(hashConf Conf) HashTable {
			hashConf.FileName = filepath.Join(dir, "unittest.bin")
			h, err := NewDisk(hashConf)
			require.NoError(t, err, "create disk table")
			return h
		},
	}
}

func TestHashTable_New(t *testing.T) {
	t.Run("capacity must be greater than zero", func(t *testing.T) {
		for _, capacity := range []int{0, -3} {
			_, err := NewMemory(Conf{Capacity: capacity})
			assert.True(t, errors.Is(err, storeerr.OutOfRange{}), "memory capacity %d", capacity)

			_, err = NewDisk(Conf{FileName: filepath.Join(t.TempDir(), "unittest.bin"), Capacity: capacity})
			assert.True(t, errors.Is(err, storeerr.OutOfRange{}), "disk capacity %d", capacity)
		}
	})

	t.Run("disk file starts with an empty slot table", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "unittest.bin")

		// Execute
		h, err := NewDisk(Conf{FileName: fileName, Capacity: 10})
		require.NoError(t, err)
		defer func() { _ = h.Dispose() }()

		// Check
		buf, err := os.ReadFile(fileName)
		assert.NoError(t, err)
		assert.Len(t, buf, 40, "four bytes per slot")
		for i, b := range buf {
			assert.Equal(t, byte(0xff), b, "byte %d of slot table", i)
		}
		assert.Equal(t, backend.Disk, h.Backend())
		assert.Equal(t, 10, h.Capacity())
	})
}

func TestHashTable_PutGet(t *testing.T) {
	for name, newTable := range backends(t) {
		t.Run(name+" stores and returns values", func(t *testing.T) {
			// Prepare
			h := newTable(Conf{Capacity: 16})
			defer func() { _ = h.Dispose() }()

			// Execute
			stored, err := h.Put("alpha", "one")
			assert.NoError(t, err)
			assert.Equal(t, "one", stored, "put returns the stored value")
			_, err = h.Put("beta", "two")
			assert.NoError(t, err)
			_, err = h.Put("", "empty key")
			assert.NoError(t, err)

			// Check
			for key, want := range map[string]string{"alpha": "one", "beta": "two", "": "empty key"} {
				got, err := h.Get(key)
				assert.NoError(t, err, "get %q", key)
				assert.Equal(t, want, got, "value of %q", key)
			}
			assert.Equal(t, 3, h.ElementCount())
		})

		t.Run(name+" missing key gives NoRecordFound", func(t *testing.T) {
			h := newTable(Conf{Capacity: 4})
			defer func() { _ = h.Dispose() }()
			_, err := h.Put("present", "x")
			require.NoError(t, err)

			_, err = h.Get("absent")
			assert.True(t, errors.Is(err, storeerr.NoRecordFound{}))
		})

		t.Run(name+" update in place", func(t *testing.T) {
			// Prepare
			h := newTable(Conf{Capacity: 8})
			defer func() { _ = h.Dispose() }()
			_, err := h.Put("key", "value")
			require.NoError(t, err)

			// Execute
			_, err = h.Put("key", "new")

			// Check
			assert.NoError(t, err, "shorter value fits")
			got, err := h.Get("key")
			assert.NoError(t, err)
			assert.Equal(t, "new", got)
			assert.Equal(t, 1, h.ElementCount(), "update does not add an element")
		})

		t.Run(name+" update with a longer value fails and changes nothing", func(t *testing.T) {
			// Prepare
			h := newTable(Conf{Capacity: 8})
			defer func() { _ = h.Dispose() }()
			_, err := h.Put("key", "value")
			require.NoError(t, err)
			_, err = h.Put("key", "abc")
			require.NoError(t, err)

			// Execute
			_, err = h.Put("key", "abcd")

			// Check
			assert.True(t, errors.Is(err, storeerr.ValueTooLong{}), "longer than the currently stored value")
			got, err := h.Get("key")
			assert.NoError(t, err)
			assert.Equal(t, "abc", got)
			assert.Equal(t, 1, h.ElementCount())
		})

		t.Run(name+" rejects strings that do not fit a length prefix", func(t *testing.T) {
			h := newTable(Conf{Capacity: 8})
			defer func() { _ = h.Dispose() }()

			long := strings.Repeat("x", 1<<16)
			_, err := h.Put(long, "v")
			assert.True(t, errors.Is(err, storeerr.ValueTooLong{}), "key too long")
			_, err = h.Put("k", long)
			assert.True(t, errors.Is(err, storeerr.ValueTooLong{}), "value too long")
			assert.Equal(t, 0, h.ElementCount())

			_, err = h.Put("k", long[:1<<16-1])
			assert.NoError(t, err, "max length is accepted")
		})
	}
}

func TestHashTable_Resize(t *testing.T) {
	for name, newTable := range backends(t) {
		t.Run(name+" grows and keeps every element", func(t *testing.T) {
			// Prepare
			h := newTable(Conf{Capacity: 4})
			defer func() { _ = h.Dispose() }()

			// Execute
			for i := 0; i < 200; i++ {
				_, err := h.Put(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i))
				require.NoError(t, err, "put %d", i)
			}

			// Check
			assert.Equal(t, 200, h.ElementCount())
			assert.Equal(t, 512, h.Capacity(), "doubled from 4 until the load factor holds")
			assert.LessOrEqual(t, h.ChainCount(), h.Capacity())
			assert.Greater(t, h.ChainCount(), 0)
			for i := 0; i < 200; i++ {
				got, err := h.Get(fmt.Sprintf("key-%d", i))
				assert.NoError(t, err)
				assert.Equal(t, fmt.Sprintf("value-%d", i), got)
			}
		})

		t.Run(name+" resizes before the put that exceeds the load factor", func(t *testing.T) {
			// Prepare: capacity 4 allows 3 elements (3 <= 3.0)
			h := newTable(Conf{Capacity: 4})
			defer func() { _ = h.Dispose() }()
			for _, key := range []string{"a", "b", "c", "d"} {
				_, err := h.Put(key, key)
				require.NoError(t, err)
			}
			assert.Equal(t, 4, h.Capacity(), "4 elements were put without a resize")

			// Execute
			_, err := h.Put("e", "e")

			// Check
			assert.NoError(t, err)
			assert.Equal(t, 8, h.Capacity())
			assert.Equal(t, 5, h.ElementCount())
		})
	}

	t.Run("disk resize leaves no temporary files", func(t *testing.T) {
		// Prepare
		dir := t.TempDir()
		h, err := NewDisk(Conf{FileName: filepath.Join(dir, "table.bin"), Capacity: 2})
		require.NoError(t, err)
		defer func() { _ = h.Dispose() }()

		// Execute
		for i := 0; i < 50; i++ {
			_, err = h.Put(fmt.Sprintf("k%d", i), "v")
			require.NoError(t, err)
		}

		// Check
		entries, err := os.ReadDir(dir)
		assert.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "table.bin", entries[0].Name())
	})
}

func TestHashTable_Chains(t *testing.T) {
	for name, newTable := range backends(t) {
		t.Run(name+" colliding keys share one chain", func(t *testing.T) {
			// Prepare
			h := newTable(Conf{Capacity: 100, HashAlgorithm: &constantHash{}})
			defer func() { _ = h.Dispose() }()

			// Execute
			for i := 0; i < 20; i++ {
				_, err := h.Put(fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i))
				require.NoError(t, err)
			}
			_, err := h.Put("k7", "up")
			require.NoError(t, err)

			// Check
			assert.Equal(t, 1, h.ChainCount())
			assert.Equal(t, 20, h.ElementCount())
			assert.Equal(t, 0, h.Hash("anything"))
			for i := 0; i < 20; i++ {
				want := fmt.Sprintf("v%d", i)
				if i == 7 {
					want = "up"
				}
				got, err := h.Get(fmt.Sprintf("k%d", i))
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})

		t.Run(name+" hash is deterministic and within capacity", func(t *testing.T) {
			h := newTable(Conf{Capacity: 13})
			defer func() { _ = h.Dispose() }()

			for _, key := range []string{"", "a", "abcde", "zzzzz", "12345"} {
				slot := h.Hash(key)
				assert.Equal(t, slot, h.Hash(key), "same key same slot")
				assert.GreaterOrEqual(t, slot, 0)
				assert.Less(t, slot, 13)
			}
		})

		t.Run(name+" slot outside the table is rejected", func(t *testing.T) {
			h := newTable(Conf{Capacity: 4, HashAlgorithm: &outOfRangeHash{}})
			defer func() { _ = h.Dispose() }()

			_, err := h.Put("k", "v")
			assert.True(t, errors.Is(err, storeerr.OutOfRange{}))
			_, err = h.Get("k")
			assert.True(t, errors.Is(err, storeerr.OutOfRange{}))
		})
	}
}

func TestDisk_Close(t *testing.T) {
	t.Run("close keeps the file and dispose removes it", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "unittest.bin")
		h, err := NewDisk(Conf{FileName: fileName, Capacity: 4})
		require.NoError(t, err)
		_, err = h.Put("k", "v")
		require.NoError(t, err)

		assert.NoError(t, h.Close())
		assert.NoError(t, h.Close(), "closing twice is harmless")
		_, err = h.Get("k")
		assert.True(t, errors.Is(err, storeerr.IOFailure{}), "closed table fails with IOFailure")
		_, err = os.Stat(fileName)
		assert.NoError(t, err, "file still exists")

		assert.NoError(t, h.Dispose())
		_, err = os.Stat(fileName)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestHashTable_Model(t *testing.T) {
	for name, newTable := range backends(t) {
		t.Run(name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				h := newTable(Conf{Capacity: rapid.IntRange(1, 8).Draw(rt, "capacity")})
				defer func() { _ = h.Dispose() }()

				model := make(map[string]string)
				key := rapid.StringMatching(`[a-e]{1,2}`)
				value := rapid.StringMatching(`[0-9]{0,6}`)

				steps := rapid.IntRange(0, 80).Draw(rt, "steps")
				for i := 0; i < steps; i++ {
					k, v := key.Draw(rt, "key"), value.Draw(rt, "value")
					_, err := h.Put(k, v)

					old, exists := model[k]
					if exists && len(v) > len(old) {
						if !errors.Is(err, storeerr.ValueTooLong{}) {
							rt.Fatalf("expected ValueTooLong for %q, got %v", k, err)
						}
						continue
					}
					if err != nil {
						rt.Fatalf("put %q: %v", k, err)
					}
					model[k] = v
				}

				if h.ElementCount() != len(model) {
					rt.Fatalf("element count %d, want %d", h.ElementCount(), len(model))
				}
				if h.ChainCount() > h.Capacity() || (len(model) > 0 && h.ChainCount() == 0) {
					rt.Fatalf("chain count %d inconsistent with capacity %d", h.ChainCount(), h.Capacity())
				}
				for k, want := range model {
					got, err := h.Get(k)
					if err != nil || got != want {
						rt.Fatalf("get %q = %q, %v; want %q", k, got, err, want)
					}
				}
			})
		})
	}
}
