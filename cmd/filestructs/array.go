package main

import (
	"github.com/gostonefire/filestructs"
	"github.com/gostonefire/filestructs/backend"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newArrayCmd() *cobra.Command {
	var from, count int

	arrayCmd := &cobra.Command{
		Use:   "array",
		Short: "Inspect disk array files",
	}

	showCmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the elements of a disk array file",
		Long: `Opens an existing disk array file, such as one kept with "sort array --keep",
and prints its elements. Without --count every element from --from on is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.showArray(args[0], from, count)
		},
	}
	showCmd.Flags().IntVar(&from, "from", 0, "first element to print")
	showCmd.Flags().IntVar(&count, "count", 0, "number of elements to print, 0 prints up to the end")

	arrayCmd.AddCommand(showCmd)

	return arrayCmd
}

// showArray - Prints a range of a disk array file
func (a *app) showArray(fileName string, from, count int) (err error) {
	arr, err := filestructs.OpenArray(fileName, a.logger)
	if err != nil {
		return
	}
	defer func() {
		if closeErr := arr.Close(); closeErr != nil {
			a.logger.Warn("failed to close array", zap.Error(closeErr))
		}
	}()

	a.printf("%s holds %d elements\n", fileName, arr.Length())
	a.reportFileSize(backend.Disk, fileName)

	if count == 0 {
		if count = arr.Length() - from; count == 0 {
			return
		}
	}

	return arr.PrintRange(a.out, from, count)
}
