package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/leapframe/internal/loader"
	"github.com/spf13/cobra"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <file.csv>",
		Short: "Show a frame's metadata without its data",
		Long: `Load a CSV file and print the container's metadata projection: column
names, inferred kinds, row count, and active policy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()

			f, err := loader.CSVFile(args[0])
			if err != nil {
				return err
			}
			s := f.Describe()

			if cfg.Output == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}

			w := cmd.OutOrStdout()
			t := table.NewWriter()
			t.SetOutputMirror(w)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Column", "Kind"})
			for i, name := range s.Names {
				t.AppendRow(table.Row{name, s.Kinds[i].String()})
			}
			t.Render()

			_, _ = fmt.Fprintf(w, "Rows:   %d\n", s.RowCount)
			_, _ = fmt.Fprintf(w, "Policy: %s\n", s.Policy)
			return nil
		},
	}
}
