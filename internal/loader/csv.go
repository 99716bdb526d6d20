// Package loader ingests CSV files into frames. Like rendering, it is a
// collaborator outside the container core: it feeds the row-major builder
// and never touches frame internals.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/leapstack-labs/leapframe/pkg/frame"
)

// CSVFile reads the file at path and builds a frame from it.
func CSVFile(path string) (*frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	fr, err := CSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return fr, nil
}

// CSV reads comma-separated data whose first record names the columns and
// feeds the remaining cells, row-major, into frame.FromRows. Cells are
// parsed leniently: integers, floats, and booleans become typed values, and
// anything else stays text; the builder's kind inference settles each
// column's final kind. The resulting frame is always strict.
func CSV(r io.Reader) (*frame.Frame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return frame.FromRows(nil, nil)
	}

	names := records[0]
	values := make([]any, 0, (len(records)-1)*len(names))
	for _, record := range records[1:] {
		for _, cell := range record {
			values = append(values, parseCell(cell))
		}
	}
	return frame.FromRows(names, values)
}

// parseCell guesses the scalar value of one CSV cell.
func parseCell(cell string) any {
	if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(cell); err == nil {
		return b
	}
	return cell
}
