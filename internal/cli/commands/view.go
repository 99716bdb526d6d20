package commands

import (
	"fmt"

	"github.com/leapstack-labs/leapframe/internal/cli/config"
	"github.com/leapstack-labs/leapframe/internal/loader"
	"github.com/leapstack-labs/leapframe/internal/render"
	"github.com/spf13/cobra"
)

// NewViewCommand creates the view command.
func NewViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file.csv>",
		Short: "Render a CSV file as a frame",
		Long: `Load a CSV file through the row-major builder and render the resulting
frame. The first record names the columns; each column's kind is inferred
from its values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			logger := config.GetLogger(cmd.Context())

			f, err := loader.CSVFile(args[0])
			if err != nil {
				return err
			}

			s := f.Describe()
			logger.Debug("loaded frame",
				"file", args[0],
				"rows", s.RowCount,
				"columns", len(s.Names),
				"policy", s.Policy.String(),
			)

			if err := render.Frame(cmd.OutOrStdout(), f, renderOptions(cfg)); err != nil {
				return fmt.Errorf("failed to render %s: %w", args[0], err)
			}
			return nil
		},
	}
}
