package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gostonefire/filestructs"
	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/internal/generate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newHashCmd() *cobra.Command {
	var (
		backendName string
		count       int
		seed        int64
		capacity    int
	)

	hashCmd := &cobra.Command{
		Use:   "hash",
		Short: "Store and search keys in a chaining hash table",
	}

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Put generated keys into a hash table and look every one of them up",
		Long: `Generates --count random keys, puts each one into a new hash table with the
key as its value and then gets every key back, reporting timings and how the
keys spread over chains.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}
			if !cmd.Flags().Changed("capacity") {
				capacity = a.cfg.HashTable.InitialCapacity
			}
			return a.hashSearch(backendName, count, seed, capacity)
		},
	}
	searchCmd.Flags().StringVarP(&backendName, "backend", "b", "memory", "storage backend, memory or disk")
	searchCmd.Flags().IntVarP(&count, "count", "n", 1000, "number of keys to generate")
	searchCmd.Flags().Int64Var(&seed, "seed", 0, "seed for generated keys (default from config)")
	searchCmd.Flags().IntVar(&capacity, "capacity", 0, "initial capacity (default from config)")

	sameChainCmd := &cobra.Command{
		Use:   "same-chain <key1> <key2>",
		Short: "Tell whether two keys land in the same chain",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("capacity") {
				capacity = a.cfg.HashTable.InitialCapacity
			}
			return a.sameChain(args[0], args[1], capacity)
		},
	}
	sameChainCmd.Flags().IntVar(&capacity, "capacity", 0, "table capacity (default from config)")

	hashCmd.AddCommand(searchCmd, sameChainCmd)

	return hashCmd
}

// hashSearch - Fills a hash table with generated keys and gets them all back
func (a *app) hashSearch(backendName string, count int, seed int64, capacity int) (err error) {
	if count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", count)
	}
	kind, err := parseBackend(backendName)
	if err != nil {
		return
	}

	structConf := filestructs.Conf{Backend: kind, FileName: a.dataFile("hashtable-%d.bin", count), Logger: a.logger}
	h, info, err := filestructs.NewHashTable(structConf, capacity, nil)
	if err != nil {
		return
	}
	defer func() {
		if disposeErr := h.Dispose(); disposeErr != nil {
			a.logger.Warn("failed to dispose hash table", zap.Error(disposeErr))
		}
	}()

	keys := generate.Strings(seed, count, generate.KeyLength)

	start := time.Now()
	for _, key := range keys {
		if _, err = h.Put(key, key); err != nil {
			return
		}
	}
	putElapsed := time.Since(start)

	start = time.Now()
	for _, key := range keys {
		var value string
		if value, err = h.Get(key); err != nil {
			return
		}
		if value != key {
			return fmt.Errorf("key %q returned value %q", key, value)
		}
	}
	getElapsed := time.Since(start)

	if info, err = filestructs.Stat(h); err != nil {
		return
	}

	a.logger.Debug("hash search done",
		zap.Stringer("backend", kind),
		zap.Int("keys", count),
		zap.Duration("put", putElapsed),
		zap.Duration("get", getElapsed))

	a.printf("Put %d keys in %s and got them back in %s\n", count, putElapsed, getElapsed)
	a.printf("Backend %s, capacity %d, elements %d, chains %d, load factor %.3f\n",
		info.Backend, info.Capacity, info.Elements, info.Chains, info.LoadFactor)
	if info.Chains > 0 {
		a.printf("Average chain length %.2f\n", float64(info.Elements)/float64(info.Chains))
	}
	if kind == backend.Disk {
		a.printf("Data file %s is %s\n", structConf.FileName, humanize.Bytes(uint64(info.FileSize)))
	}

	return
}

// sameChain - Reports the slots of two keys in a table with the given capacity
func (a *app) sameChain(key1, key2 string, capacity int) (err error) {
	h, _, err := filestructs.NewHashTable(filestructs.Conf{Backend: backend.Memory, Logger: a.logger}, capacity, nil)
	if err != nil {
		return
	}
	defer func() { _ = h.Dispose() }()

	slot1, slot2 := h.Hash(key1), h.Hash(key2)

	a.printf("%q is in chain %d, %q is in chain %d of %d\n", key1, slot1, key2, slot2, capacity)
	if slot1 == slot2 {
		a.printf("Same chain\n")
	} else {
		a.printf("Different chains\n")
	}

	return
}
