package sorting

import (
	"os"

	"github.com/gostonefire/filestructs/array"
	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/list"
	"github.com/gostonefire/filestructs/storeerr"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// MergeSort - Top down merge sort.
// Arrays are split at the midpoint and every merge copies both halves to scratch arrays of the same
// backend before merging them back. For disk arrays the scratch files live in a working directory that
// is created before sorting and removed with all its content afterwards.
type MergeSort struct {
	// WorkDir is the directory in which the working directory is created, empty means the system temp dir
	WorkDir string
	// Logger is optional, nil disables logging
	Logger *zap.Logger
}

// Name - Returns Merge
func (M MergeSort) Name() string {
	return Merge
}

// SortArray - Sorts the array
func (M MergeSort) SortArray(a array.Array) (err error) {
	if a.Length() < 2 {
		return
	}

	var workDir string
	if a.Backend() == backend.Disk {
		workDir, err = os.MkdirTemp(M.WorkDir, "merge_sort-*")
		if err != nil {
			err = storeerr.NewIOFailure("mkdir", err)
			return
		}
		M.logger().Debug("merge sort working directory created", zap.String("dir", workDir))

		defer func() {
			removeErr := os.RemoveAll(workDir)
			switch {
			case removeErr == nil:
				M.logger().Debug("merge sort working directory removed", zap.String("dir", workDir))
			case err != nil:
				M.logger().Warn("unable to remove merge sort working directory", zap.String("dir", workDir), zap.Error(removeErr))
			default:
				err = storeerr.NewIOFailure("remove", removeErr)
			}
		}()
	}

	err = M.sort(a, workDir, 0, a.Length()-1)

	return
}

// SortList - Delegates to the list's own merge sort, which relinks nodes instead of copying values
func (M MergeSort) SortList(l list.List) error {
	if l.Length() < 2 {
		return nil
	}

	return l.Sort()
}

// sort - Recursively sorts the elements from left to right, both inclusive
func (M MergeSort) sort(a array.Array, workDir string, left, right int) (err error) {
	if right <= left {
		return
	}

	middle := (left + right) / 2

	if err = M.sort(a, workDir, left, middle); err != nil {
		return
	}
	if err = M.sort(a, workDir, middle+1, right); err != nil {
		return
	}

	return merge(a, workDir, left, middle, right)
}

// merge - Merges the sorted runs left..middle and middle+1..right, taking from the left run on ties
func merge(a array.Array, workDir string, left, middle, right int) (err error) {
	leftRun, err := copyRun(a, workDir, left, middle-left+1)
	if err != nil {
		return
	}
	defer func() { err = multierr.Append(err, leftRun.Dispose()) }()

	rightRun, err := copyRun(a, workDir, middle+1, right-middle)
	if err != nil {
		return
	}
	defer func() { err = multierr.Append(err, rightRun.Dispose()) }()

	var i, j int
	var leftValue, rightValue float64
	to := left

	for i < leftRun.Length() && j < rightRun.Length() {
		if leftValue, err = leftRun.Get(i); err != nil {
			return
		}
		if rightValue, err = rightRun.Get(j); err != nil {
			return
		}

		if leftValue <= rightValue {
			err = a.Set(to, leftValue)
			i++
		} else {
			err = a.Set(to, rightValue)
			j++
		}
		if err != nil {
			return
		}
		to++
	}

	// Only one of the runs has elements left
	if err = drain(a, leftRun, i, to); err != nil {
		return
	}

	return drain(a, rightRun, j, to+leftRun.Length()-i)
}

// copyRun - Copies count elements starting at from into a new scratch array
func copyRun(a array.Array, workDir string, from, count int) (run array.Array, err error) {
	run, err = a.Scratch(workDir, count)
	if err != nil {
		return
	}

	var value float64
	for i := 0; i < count; i++ {
		if value, err = a.Get(from + i); err != nil {
			break
		}
		if err = run.Set(i, value); err != nil {
			break
		}
	}

	if err != nil {
		err = multierr.Append(err, run.Dispose())
		run = nil
	}

	return
}

// drain - Copies the rest of run, starting at index from, into a starting at index to
func drain(a, run array.Array, from, to int) (err error) {
	var value float64
	for ; from < run.Length(); from++ {
		if value, err = run.Get(from); err != nil {
			return
		}
		if err = a.Set(to, value); err != nil {
			return
		}
		to++
	}

	return
}

func (M MergeSort) logger() *zap.Logger {
	if M.Logger == nil {
		return zap.NewNop()
	}

	return M.Logger
}
