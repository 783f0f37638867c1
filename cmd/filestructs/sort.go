package main

import (
	"fmt"
	"time"

	"github.com/gostonefire/filestructs"
	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/internal/generate"
	"github.com/gostonefire/filestructs/sorting"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sortFlags - Flags shared by the sort subcommands
type sortFlags struct {
	algorithm  string
	backend    string
	length     int
	seed       int64
	printFrom  int
	printCount int
	keep       bool
}

func (a *app) newSortCmd() *cobra.Command {
	flags := &sortFlags{}

	sortCmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort generated data with insertion or merge sort",
	}

	arrayCmd := &cobra.Command{
		Use:   "array",
		Short: "Sort an array of generated values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.sortArray(cmd, flags)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Sort a doubly linked list of generated values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.sortList(cmd, flags)
		},
	}

	for _, c := range []*cobra.Command{arrayCmd, listCmd} {
		c.Flags().StringVarP(&flags.algorithm, "algorithm", "a", sorting.Merge, "sorting algorithm, insertion or merge")
		c.Flags().StringVarP(&flags.backend, "backend", "b", "memory", "storage backend, memory or disk")
		c.Flags().IntVarP(&flags.length, "length", "n", 1000, "number of elements")
		c.Flags().Int64Var(&flags.seed, "seed", 0, "seed for generated values (default from config)")
		c.Flags().IntVar(&flags.printFrom, "print-from", 0, "first element to print after sorting")
		c.Flags().IntVar(&flags.printCount, "print-count", 10, "number of elements to print after sorting, 0 prints none")
		c.Flags().BoolVar(&flags.keep, "keep", false, "keep the data file of a disk structure")
	}

	sortCmd.AddCommand(arrayCmd, listCmd)

	return sortCmd
}

// sortArray - Generates, sorts and prints an array
func (a *app) sortArray(cmd *cobra.Command, flags *sortFlags) (err error) {
	kind, algorithm, seed, err := a.sortSetup(cmd, flags)
	if err != nil {
		return
	}

	fileName := a.dataFile("array-%d.bin", flags.length)
	arr, err := filestructs.NewArray(filestructs.Conf{Backend: kind, FileName: fileName, Logger: a.logger}, flags.length)
	if err != nil {
		return
	}
	defer func() { a.release(arr.Close, arr.Dispose, flags.keep) }()

	if err = generate.FillArray(arr, seed); err != nil {
		return
	}

	start := time.Now()
	if err = algorithm.SortArray(arr); err != nil {
		return
	}
	elapsed := time.Since(start)

	a.logger.Debug("array sorted",
		zap.String("algorithm", algorithm.Name()),
		zap.Stringer("backend", kind),
		zap.Int("length", flags.length),
		zap.Duration("elapsed", elapsed))
	a.printf("Sorted %d elements in a %s array with %s sort in %s\n", flags.length, kind, algorithm.Name(), elapsed)
	a.reportFileSize(kind, fileName)

	return a.printWindow(arr, arr.Length(), flags)
}

// sortList - Generates, sorts and prints a list
func (a *app) sortList(cmd *cobra.Command, flags *sortFlags) (err error) {
	kind, algorithm, seed, err := a.sortSetup(cmd, flags)
	if err != nil {
		return
	}

	fileName := a.dataFile("list-%d.bin", flags.length)
	l, err := filestructs.NewList(filestructs.Conf{Backend: kind, FileName: fileName, Logger: a.logger})
	if err != nil {
		return
	}
	defer func() { a.release(l.Close, l.Dispose, flags.keep) }()

	if err = generate.FillList(l, seed, flags.length); err != nil {
		return
	}

	start := time.Now()
	if err = algorithm.SortList(l); err != nil {
		return
	}
	elapsed := time.Since(start)

	a.logger.Debug("list sorted",
		zap.String("algorithm", algorithm.Name()),
		zap.Stringer("backend", kind),
		zap.Int("length", flags.length),
		zap.Duration("elapsed", elapsed))
	a.printf("Sorted %d elements in a %s list with %s sort in %s\n", flags.length, kind, algorithm.Name(), elapsed)
	a.reportFileSize(kind, fileName)

	return a.printWindow(l, l.Length(), flags)
}

// sortSetup - Resolves the backend, algorithm and seed of a sort command
func (a *app) sortSetup(cmd *cobra.Command, flags *sortFlags) (kind backend.Kind, algorithm sorting.Algorithm, seed int64, err error) {
	if flags.length < 0 {
		err = fmt.Errorf("--length must not be negative, got %d", flags.length)
		return
	}
	if kind, err = parseBackend(flags.backend); err != nil {
		return
	}
	if algorithm, err = sorting.ByName(flags.algorithm, a.cfg.WorkDir, a.logger); err != nil {
		return
	}

	seed = a.cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = flags.seed
	}

	return
}

// printWindow - Prints the requested elements, clipped to the structure's length
func (a *app) printWindow(p backend.Printable, length int, flags *sortFlags) error {
	count := flags.printCount
	if flags.printFrom+count > length {
		count = length - flags.printFrom
	}
	if count <= 0 {
		return nil
	}

	a.printf("Elements %d to %d:\n", flags.printFrom, flags.printFrom+count-1)

	return p.PrintRange(a.out, flags.printFrom, count)
}

// release - Closes a structure when keep is set, otherwise disposes it
func (a *app) release(closeFn, disposeFn func() error, keep bool) {
	release := disposeFn
	if keep {
		release = closeFn
	}

	if err := release(); err != nil {
		a.logger.Warn("failed to release structure", zap.Error(err))
	}
}
