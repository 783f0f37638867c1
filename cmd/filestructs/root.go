package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gostonefire/filestructs/backend"
	"github.com/gostonefire/filestructs/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app - State shared by the commands of one invocation
type app struct {
	out        io.Writer
	configPath string
	verbose    bool
	cfg        *config.Config
	logger     *zap.Logger
}

// newRootCmd - Builds the command tree writing its results to out
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "filestructs",
		Short: "Sort and search file backed arrays, lists and hash tables",
		Long: `filestructs runs sorting and searching over arrays, doubly linked lists and
hash tables that live either in memory or in binary files on disk.

Data is generated from a seed so runs can be repeated and compared between
the memory and the disk backend.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "filestructs.yaml", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(a.newSortCmd(), a.newHashCmd(), a.newArrayCmd())

	return rootCmd
}

// setup - Loads the configuration and builds the logger
func (a *app) setup(cmd *cobra.Command, args []string) (err error) {
	a.cfg, err = config.Load(a.configPath)
	if err != nil {
		return
	}

	logConfig := zap.NewProductionConfig()
	if a.verbose || a.cfg.Log.Verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = logConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err = os.MkdirAll(a.cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	return
}

// dataFile - Returns the path of a data file in the configured data directory
func (a *app) dataFile(format string, v ...any) string {
	return filepath.Join(a.cfg.DataDir, fmt.Sprintf(format, v...))
}

// printf - Writes to the command output
func (a *app) printf(format string, v ...any) {
	_, _ = fmt.Fprintf(a.out, format, v...)
}

// reportFileSize - Prints the size of a data file when the backend is disk
func (a *app) reportFileSize(kind backend.Kind, fileName string) {
	if kind != backend.Disk {
		return
	}

	stat, err := os.Stat(fileName)
	if err != nil {
		a.logger.Warn("unable to stat data file", zap.String("file", fileName), zap.Error(err))
		return
	}
	a.printf("Data file %s is %s\n", fileName, humanize.Bytes(uint64(stat.Size())))
}

// parseBackend - Parses a --backend flag value
func parseBackend(value string) (backend.Kind, error) {
	kind, err := backend.ParseKind(value)
	if err != nil {
		return kind, fmt.Errorf("invalid --backend: %w", err)
	}

	return kind, nil
}
