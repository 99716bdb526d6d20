// Package render presents frames for human and machine consumption. It sits
// on the consumer side of the container boundary: everything here goes
// through Describe and the public accessors, never the internals.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leapstack-labs/leapframe/pkg/column"
	"github.com/leapstack-labs/leapframe/pkg/frame"
)

// Options controls the output shape.
type Options struct {
	// Format is one of table, json, csv, md.
	Format string
	// MaxRows truncates table output after this many rows; 0 disables.
	MaxRows int
	// NoColor disables lipgloss styling of the table header.
	NoColor bool
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	kindStyle  = lipgloss.NewStyle().Faint(true)
)

// Frame renders f to w in the requested format.
func Frame(w io.Writer, f *frame.Frame, opts Options) error {
	switch opts.Format {
	case "json":
		return renderJSON(w, f)
	case "csv":
		return renderCSV(w, f)
	case "md", "markdown":
		return renderMarkdown(w, f)
	default:
		return renderTable(w, f, opts)
	}
}

// columnsOf gathers the frame's vectors in positional order. Positions are
// in range by construction, so the lookups cannot fail.
func columnsOf(f *frame.Frame) []*column.Vector {
	cols := make([]*column.Vector, f.ColumnCount())
	for i := range cols {
		cols[i], _ = f.ColumnAt(i + 1)
	}
	return cols
}

func renderTable(w io.Writer, f *frame.Frame, opts Options) error {
	s := f.Describe()

	title := fmt.Sprintf("A frame: %d x %d <%s>", s.RowCount, len(s.Names), s.Policy)
	if !opts.NoColor {
		title = titleStyle.Render(title)
	}
	_, _ = fmt.Fprintln(w, title)

	if len(s.Names) == 0 {
		_, _ = fmt.Fprintln(w, "(0 columns)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	// Column names are data; keep their case.
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)

	headerRow := make(table.Row, len(s.Names))
	for i, name := range s.Names {
		headerRow[i] = name
	}
	t.AppendHeader(headerRow)

	// Kind annotation row, tibble style.
	kindRow := make(table.Row, len(s.Kinds))
	for i, k := range s.Kinds {
		glyph := k.Glyph()
		if !opts.NoColor {
			glyph = kindStyle.Render(glyph)
		}
		kindRow[i] = glyph
	}
	t.AppendRow(kindRow)

	shown := s.RowCount
	if opts.MaxRows > 0 && shown > opts.MaxRows {
		shown = opts.MaxRows
	}

	cols := columnsOf(f)
	for r := 0; r < shown; r++ {
		row := make(table.Row, len(cols))
		for c, vec := range cols {
			row[c] = vec.Display(r)
		}
		t.AppendRow(row)
	}
	t.Render()

	if shown < s.RowCount {
		_, _ = fmt.Fprintf(w, "... with %d more rows\n", s.RowCount-shown)
	} else {
		_, _ = fmt.Fprintf(w, "(%d rows)\n", s.RowCount)
	}
	return nil
}

func renderJSON(w io.Writer, f *frame.Frame) error {
	s := f.Describe()
	cols := columnsOf(f)

	rows := make([]map[string]any, s.RowCount)
	for r := 0; r < s.RowCount; r++ {
		row := make(map[string]any, len(s.Names))
		for c, name := range s.Names {
			row[name] = cols[c].Value(r)
		}
		rows[r] = row
	}

	out := struct {
		Summary frame.Summary    `json:"summary"`
		Rows    []map[string]any `json:"rows"`
	}{Summary: s, Rows: rows}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderCSV(w io.Writer, f *frame.Frame) error {
	s := f.Describe()
	cols := columnsOf(f)

	_, _ = fmt.Fprintln(w, strings.Join(s.Names, ","))

	for r := 0; r < s.RowCount; r++ {
		values := make([]string, len(cols))
		for c, vec := range cols {
			values[c] = escapeCSV(vec.Display(r))
		}
		_, _ = fmt.Fprintln(w, strings.Join(values, ","))
	}
	return nil
}

func renderMarkdown(w io.Writer, f *frame.Frame) error {
	s := f.Describe()
	if len(s.Names) == 0 {
		_, _ = fmt.Fprintln(w, "(0 columns)")
		return nil
	}
	cols := columnsOf(f)

	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(s.Names, " | "))
	seps := make([]string, len(s.Names))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for r := 0; r < s.RowCount; r++ {
		values := make([]string, len(cols))
		for c, vec := range cols {
			values[c] = vec.Display(r)
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(values, " | "))
	}
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
