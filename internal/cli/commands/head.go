package commands

import (
	"fmt"

	"github.com/leapstack-labs/leapframe/internal/loader"
	"github.com/leapstack-labs/leapframe/internal/render"
	"github.com/leapstack-labs/leapframe/pkg/frame"
	"github.com/spf13/cobra"
)

// NewHeadCommand creates the head command.
func NewHeadCommand() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "head <file.csv>",
		Short: "Render the first rows of a CSV file",
		Long: `Load a CSV file and render only its leading rows. The subset goes through
the container's two-argument row/column access, so the result is itself a
frame with the same columns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()

			f, err := loader.CSVFile(args[0])
			if err != nil {
				return err
			}

			head, err := headFrame(f, rows)
			if err != nil {
				return fmt.Errorf("failed to slice %s: %w", args[0], err)
			}
			return render.Frame(cmd.OutOrStdout(), head, renderOptions(cfg))
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 6, "Number of leading rows to keep")
	return cmd
}

// headFrame keeps the first n rows of f, clamped to the row count.
func headFrame(f *frame.Frame, n int) (*frame.Frame, error) {
	if n < 0 {
		n = 0
	}
	if n > f.RowCount() {
		n = f.RowCount()
	}
	selector := make([]int, n)
	for i := range selector {
		selector[i] = i + 1
	}

	keys := make([]frame.Key, f.ColumnCount())
	for i := range keys {
		keys[i] = frame.Pos(i + 1)
	}

	res, err := f.Slice(selector, keys...)
	if err != nil {
		return nil, err
	}
	// CSV frames are strict, so the result never drops to a raw vector.
	return res.Frame, nil
}
