// Package frame implements the policy-driven tabular container.
//
// A Frame is an ordered sequence of (name, vector) pairs sharing one row
// count and one behavior policy. Frames are immutable values: every operator
// that "modifies" a frame returns a new one, sharing the storage of the
// columns it did not touch. A caller sees a change only by rebinding to the
// returned frame.
//
// The policy, core.Legacy or core.Strict, is fixed at construction and
// governs name resolution, dimension dropping, element extraction, and
// assignment lengths. Public column and row positions are 1-based throughout
// the package.
package frame

import (
	"github.com/leapstack-labs/leapframe/pkg/column"
	"github.com/leapstack-labs/leapframe/pkg/core"
)

// Column pairs a name with its vector for column-major construction.
type Column struct {
	Name   string
	Vector *column.Vector
}

// Frame is the tabular container. The zero value is not usable; construct
// with New or FromRows.
type Frame struct {
	policy core.Policy
	names  []string
	cols   []*column.Vector
	rows   int
}

// New builds a frame from column-major input. All vectors must share one
// length (UnequalColumnLengthError otherwise) and names must be unique
// (DuplicateColumnError). The policy is fixed for the frame's lifetime.
func New(cols []Column, policy core.Policy) (*Frame, error) {
	f := &Frame{
		policy: policy,
		names:  make([]string, 0, len(cols)),
		cols:   make([]*column.Vector, 0, len(cols)),
	}

	seen := make(map[string]struct{}, len(cols))
	for i, c := range cols {
		if _, dup := seen[c.Name]; dup {
			return nil, core.NewDuplicateColumnError(c.Name)
		}
		seen[c.Name] = struct{}{}

		if i == 0 {
			f.rows = c.Vector.Len()
		} else if c.Vector.Len() != f.rows {
			return nil, core.NewUnequalColumnLengthError(c.Name, c.Vector.Len(), f.rows)
		}

		f.names = append(f.names, c.Name)
		f.cols = append(f.cols, c.Vector)
	}
	return f, nil
}

// Policy returns the behavior profile fixed at construction.
func (f *Frame) Policy() core.Policy { return f.policy }

// RowCount returns the shared length of all columns.
func (f *Frame) RowCount() int { return f.rows }

// ColumnCount returns the number of columns.
func (f *Frame) ColumnCount() int { return len(f.cols) }

// Names returns the column names in positional order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// ColumnAt returns the vector at the 1-based position pos.
func (f *Frame) ColumnAt(pos int) (*column.Vector, error) {
	if pos < 1 || pos > len(f.cols) {
		return nil, core.NewIndexOutOfRangeError(pos, len(f.cols))
	}
	return f.cols[pos-1], nil
}

// Equal reports whether two frames hold the same policy, names, and column
// contents in the same order.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil || f.policy != other.policy || len(f.cols) != len(other.cols) || f.rows != other.rows {
		return false
	}
	for i := range f.cols {
		if f.names[i] != other.names[i] || !f.cols[i].Equal(other.cols[i]) {
			return false
		}
	}
	return true
}

// subset builds a new frame from the given 0-based column offsets, keeping
// the receiver's policy. Row selection, when present, has already been
// translated to 0-based offsets; nil keeps whole columns by shared storage.
func (f *Frame) subset(colOffsets []int, rowOffsets []int) *Frame {
	out := &Frame{
		policy: f.policy,
		names:  make([]string, len(colOffsets)),
		cols:   make([]*column.Vector, len(colOffsets)),
	}
	if rowOffsets == nil {
		out.rows = f.rows
	} else {
		out.rows = len(rowOffsets)
	}
	for i, o := range colOffsets {
		out.names[i] = f.names[o]
		if rowOffsets == nil {
			out.cols[i] = f.cols[o]
		} else {
			out.cols[i] = f.cols[o].Take(rowOffsets)
		}
	}
	return out
}
