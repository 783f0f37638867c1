//go:build unit

package list

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/storeerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// backends - Returns a constructor per backend so the same checks run against both
func backends(t *testing.T) map[string]func() List {
	dir := t.TempDir()
	return map[string]func() List{
		"memory": func() List { return NewMemory() },
		"disk": func() List {
			l, err := NewDisk(filepath.Join(dir, "unittest.bin"), nil)
			require.NoError(t, err, "create disk list")
			return l
		},
	}
}

func add(t require.TestingT, l List, values ...float64) {
	for _, v := range values {
		require.NoError(t, l.Add(v), "add %v", v)
	}
}

func forward(t require.TestingT, l List) []float64 {
	values, err := Values(l)
	require.NoError(t, err, "walk forward")
	return values
}

// backward - Walks from tail to head using Previous and returns the values in head to tail order
func backward(t require.TestingT, l List) (values []float64) {
	if l.Length() == 0 {
		return []float64{}
	}

	// Values leaves the cursor on the tail
	_, err := Values(l)
	require.NoError(t, err)

	v, err := l.Get()
	require.NoError(t, err)
	values = append(values, v)
	for {
		hasPrevious, err := l.HasPrevious()
		require.NoError(t, err)
		if !hasPrevious {
			break
		}
		v, err = l.Previous()
		require.NoError(t, err)
		values = append([]float64{v}, values...)
	}

	return
}

func TestList_Add(t *testing.T) {
	for name, newList := range backends(t) {
		t.Run(name+" appends at the tail", func(t *testing.T) {
			// Prepare
			l := newList()
			defer func() { _ = l.Dispose() }()

			// Execute
			add(t, l, 3, 1, 2)

			// Check
			assert.Equal(t, 3, l.Length())
			assert.Equal(t, []float64{3, 1, 2}, forward(t, l))
			assert.Equal(t, []float64{3, 1, 2}, backward(t, l), "previous links match")
		})
	}
}

func TestList_Cursor(t *testing.T) {
	for name, newList := range backends(t) {
		t.Run(name+" empty list has no cursor positions", func(t *testing.T) {
			l := newList()
			defer func() { _ = l.Dispose() }()

			_, err := l.Get()
			assert.True(t, errors.Is(err, storeerr.InvalidCursor{}), "get on unset cursor")
			_, err = l.Next()
			assert.True(t, errors.Is(err, storeerr.InvalidCursor{}), "next on empty list")
			_, err = l.Previous()
			assert.True(t, errors.Is(err, storeerr.InvalidCursor{}), "previous on empty list")

			hasNext, err := l.HasNext()
			assert.NoError(t, err)
			assert.False(t, hasNext)
			hasPrevious, err := l.HasPrevious()
			assert.NoError(t, err)
			assert.False(t, hasPrevious)
		})

		t.Run(name+" unset cursor moves to head or tail", func(t *testing.T) {
			// Prepare
			l := newList()
			defer func() { _ = l.Dispose() }()
			add(t, l, 1, 2, 3)

			// Execute & Check
			hasNext, err := l.HasNext()
			assert.NoError(t, err)
			assert.True(t, hasNext, "unset cursor has next when the list is not empty")

			v, err := l.Next()
			assert.NoError(t, err)
			assert.Equal(t, 1.0, v, "first next lands on head")

			v, err = l.Next()
			assert.NoError(t, err)
			assert.Equal(t, 2.0, v)

			v, err = l.Previous()
			assert.NoError(t, err)
			assert.Equal(t, 1.0, v)
		})

		t.Run(name+" unset cursor previous lands on tail", func(t *testing.T) {
			l := newList()
			defer func() { _ = l.Dispose() }()
			add(t, l, 1, 2, 3)

			hasPrevious, err := l.HasPrevious()
			assert.NoError(t, err)
			assert.True(t, hasPrevious)

			v, err := l.Previous()
			assert.NoError(t, err)
			assert.Equal(t, 3.0, v)
		})

		t.Run(name+" moving past either end fails and keeps the cursor", func(t *testing.T) {
			// Prepare
			l := newList()
			defer func() { _ = l.Dispose() }()
			add(t, l, 1, 2)
			l.MoveToFirst()

			// Execute & Check
			_, err := l.Previous()
			assert.True(t, errors.Is(err, storeerr.InvalidCursor{}), "previous at head")
			v, err := l.Get()
			assert.NoError(t, err)
			assert.Equal(t, 1.0, v, "cursor still on head")

			_, err = l.Next()
			assert.NoError(t, err)
			hasNext, err := l.HasNext()
			assert.NoError(t, err)
			assert.False(t, hasNext, "tail has no next")

			_, err = l.Next()
			assert.True(t, errors.Is(err, storeerr.InvalidCursor{}), "next at tail")
			v, err = l.Get()
			assert.NoError(t, err)
			assert.Equal(t, 2.0, v, "cursor still on tail")
		})
	}
}

func TestList_InsertSorted(t *testing.T) {
	for name, newList := range backends(t) {
		t.Run(name+" builds an ascending list", func(t *testing.T) {
			// Prepare
			l := newList()
			defer func() { _ = l.Dispose() }()

			// Execute
			for _, v := range []float64{5, 3, 8, 1} {
				require.NoError(t, l.InsertSorted(v))
			}

			// Check
			assert.Equal(t, 4, l.Length())
			assert.Equal(t, []float64{1, 3, 5, 8}, forward(t, l))
			assert.Equal(t, []float64{1, 3, 5, 8}, backward(t, l), "previous links match")
		})

		t.Run(name+" inserts into the middle and after the tail", func(t *testing.T) {
			l := newList()
			defer func() { _ = l.Dispose() }()
			add(t, l, 1, 4, 9)

			require.NoError(t, l.InsertSorted(5))
			require.NoError(t, l.InsertSorted(10))
			require.NoError(t, l.InsertSorted(0))
			require.NoError(t, l.InsertSorted(4))

			assert.Equal(t, []float64{0, 1, 4, 4, 5, 9, 10}, forward(t, l))
			assert.Equal(t, []float64{0, 1, 4, 4, 5, 9, 10}, backward(t, l))
			assert.Equal(t, 7, l.Length())
		})
	}
}

func TestList_Sort(t *testing.T) {
	for name, newList := range backends(t) {
		t.Run(name+" sorts ascending with consistent links", func(t *testing.T) {
			// Prepare
			l := newList()
			defer func() { _ = l.Dispose() }()
			add(t, l, 5, -1, 3, 3, 0, 12.5, -7)

			// Execute
			err := l.Sort()

			// Check
			assert.NoError(t, err)
			assert.Equal(t, []float64{-7, -1, 0, 3, 3, 5, 12.5}, forward(t, l))
			assert.Equal(t, []float64{-7, -1, 0, 3, 3, 5, 12.5}, backward(t, l))
			assert.Equal(t, 7, l.Length())
		})

		t.Run(name+" keeps equal elements in insertion order", func(t *testing.T) {
			// Prepare: 0 and -0 compare equal but are told apart by the sign bit
			l := newList()
			defer func() { _ = l.Dispose() }()
			add(t, l, 1, math.Copysign(0, -1), 0, -1)

			// Execute
			require.NoError(t, l.Sort())

			// Check
			values := forward(t, l)
			require.Len(t, values, 4)
			assert.Equal(t, -1.0, values[0])
			assert.True(t, math.Signbit(values[1]), "negative zero stays first")
			assert.False(t, math.Signbit(values[2]))
			assert.Equal(t, 1.0, values[3])
		})

		t.Run(name+" empty and single lists are untouched", func(t *testing.T) {
			l := newList()
			defer func() { _ = l.Dispose() }()

			assert.NoError(t, l.Sort())
			add(t, l, 2)
			assert.NoError(t, l.Sort())
			assert.Equal(t, []float64{2}, forward(t, l))
		})
	}
}

func TestList_ReplaceContent(t *testing.T) {
	for name, newList := range backends(t) {
		t.Run(name+" takes over the other list", func(t *testing.T) {
			// Prepare
			l := newList()
			defer func() { _ = l.Dispose() }()
			add(t, l, 9, 9)
			l.MoveToFirst()

			other, err := l.Scratch("")
			require.NoError(t, err)
			add(t, other, 1, 2, 3)

			// Execute
			err = l.ReplaceContent(other)

			// Check
			assert.NoError(t, err)
			assert.Equal(t, 3, l.Length())
			_, err = l.Get()
			assert.True(t, errors.Is(err, storeerr.InvalidCursor{}), "cursor is reset")
			assert.Equal(t, []float64{1, 2, 3}, forward(t, l))
			assert.Equal(t, []float64{1, 2, 3}, backward(t, l))
			assert.Equal(t, 0, other.Length(), "other is emptied")
		})

		t.Run(name+" rejects a list from another backend", func(t *testing.T) {
			l := newList()
			defer func() { _ = l.Dispose() }()
			add(t, l, 1)

			var other List = NewMemory()
			if l.Backend() == backend.Memory {
				d, err := NewDisk(filepath.Join(t.TempDir(), "other.bin"), nil)
				require.NoError(t, err)
				defer func() { _ = d.Dispose() }()
				other = d
			}

			err := l.ReplaceContent(other)
			assert.True(t, errors.Is(err, storeerr.BackendMismatch{}))
			assert.True(t, errors.Is(l.ReplaceContent(nil), storeerr.BackendMismatch{}), "nil list")
			assert.Equal(t, []float64{1}, forward(t, l), "content untouched")
		})
	}

	t.Run("disk donor file is moved into place", func(t *testing.T) {
		// Prepare
		dir := t.TempDir()
		l, err := NewDisk(filepath.Join(dir, "target.bin"), nil)
		require.NoError(t, err)
		defer func() { _ = l.Dispose() }()
		add(t, l, 4)

		donor, err := NewDisk(filepath.Join(dir, "donor.bin"), nil)
		require.NoError(t, err)
		add(t, donor, 7, 8)

		// Execute
		err = l.ReplaceContent(donor)

		// Check
		assert.NoError(t, err)
		_, err = os.Stat(donor.FileName())
		assert.True(t, os.IsNotExist(err), "donor file is gone")
		stat, err := os.Stat(l.FileName())
		assert.NoError(t, err)
		assert.Equal(t, int64(32), stat.Size(), "target file holds the donor records")
		assert.NoError(t, l.Add(9), "list is writable after the swap")
		assert.Equal(t, []float64{7, 8, 9}, forward(t, l))
	})
}

func TestList_Print(t *testing.T) {
	for name, newList := range backends(t) {
		t.Run(name+" prints all or a range", func(t *testing.T) {
			// Prepare
			l := newList()
			defer func() { _ = l.Dispose() }()
			add(t, l, 1, 2.5, 1.0/3, 4)

			// Execute
			var all, part bytes.Buffer
			assert.NoError(t, l.Print(&all))
			assert.NoError(t, l.PrintRange(&part, 1, 2))

			// Check
			assert.Equal(t, "1.000\n2.500\n0.333\n4.000\n", all.String())
			assert.Equal(t, "2.500\n0.333\n", part.String())
			assert.True(t, errors.Is(l.PrintRange(&part, 3, 2), storeerr.OutOfRange{}), "range past end")
			_, err := l.Get()
			assert.True(t, errors.Is(err, storeerr.InvalidCursor{}), "printing leaves the cursor alone")
		})
	}
}

func TestDisk_Dispose(t *testing.T) {
	t.Run("scratch lives in the requested directory and dispose removes it", func(t *testing.T) {
		// Prepare
		dir := t.TempDir()
		l, err := NewDisk(filepath.Join(t.TempDir(), "unittest.bin"), nil)
		require.NoError(t, err)
		defer func() { _ = l.Dispose() }()

		// Execute
		s, err := l.Scratch(dir)
		require.NoError(t, err)

		// Check
		scratch := s.(*Disk)
		assert.Equal(t, dir, filepath.Dir(scratch.FileName()))
		assert.NoError(t, s.Dispose())
		_, err = os.Stat(scratch.FileName())
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("scratch in a missing directory returns no list", func(t *testing.T) {
		// Prepare
		l, err := NewDisk(filepath.Join(t.TempDir(), "unittest.bin"), nil)
		require.NoError(t, err)
		defer func() { _ = l.Dispose() }()

		// Execute
		s, err := l.Scratch(filepath.Join(t.TempDir(), "missing"))

		// Check
		assert.Error(t, err)
		assert.True(t, s == nil, "no typed nil behind the interface")
	})

	t.Run("closed list fails with IOFailure", func(t *testing.T) {
		l, err := NewDisk(filepath.Join(t.TempDir(), "unittest.bin"), nil)
		require.NoError(t, err)
		add(t, l, 1)

		assert.NoError(t, l.Close())
		assert.NoError(t, l.Close(), "closing twice is harmless")
		assert.True(t, errors.Is(l.Add(2), storeerr.IOFailure{}))
		assert.NoError(t, l.Dispose())
	})

	t.Run("failed sort keeps head and tail", func(t *testing.T) {
		// Prepare
		l, err := NewDisk(filepath.Join(t.TempDir(), "unittest.bin"), nil)
		require.NoError(t, err)
		add(t, l, 3, 1, 2)
		first, last := l.first, l.last
		require.NoError(t, l.Close())

		// Execute
		err = l.Sort()

		// Check
		assert.True(t, errors.Is(err, storeerr.IOFailure{}))
		assert.Equal(t, first, l.first)
		assert.Equal(t, last, l.last)
		assert.False(t, l.last.IsNone(), "tail still present while length is 3")

		// Clean up
		assert.NoError(t, l.Dispose())
	})
}

func TestList_Properties(t *testing.T) {
	for name, newList := range backends(t) {
		t.Run(name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				l := newList()
				defer func() { _ = l.Dispose() }()

				values := rapid.SliceOf(rapid.Float64Range(-1000, 1000)).Draw(rt, "values")
				useInsert := rapid.Bool().Draw(rt, "insertSorted")
				for _, v := range values {
					if useInsert {
						require.NoError(rt, l.InsertSorted(v))
					} else {
						require.NoError(rt, l.Add(v))
					}
				}
				if !useInsert {
					require.NoError(rt, l.Sort())
				}

				want := append([]float64{}, values...)
				sort.Float64s(want)
				if diff := cmp.Diff(want, forward(rt, l)); diff != "" {
					rt.Fatalf("forward order (-want +got):\n%s", diff)
				}
				if diff := cmp.Diff(want, backward(rt, l)); diff != "" {
					rt.Fatalf("backward order (-want +got):\n%s", diff)
				}
				if l.Length() != len(values) {
					rt.Fatalf("length %d, want %d", l.Length(), len(values))
				}
			})
		})
	}
}
