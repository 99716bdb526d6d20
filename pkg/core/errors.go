package core

import "fmt"

// Hard errors abort the triggering operation and leave every container
// involved in its prior, valid state. They are ordinary Go errors so callers
// can match them with errors.As.

// IndexOutOfRangeError indicates a positional key beyond the container or
// column bounds. Raised under both policies.
type IndexOutOfRangeError struct {
	// Pos is the offending 1-based position.
	Pos int
	// Len is the number of addressable entries.
	Len int
}

// NewIndexOutOfRangeError creates a new out-of-range error.
func NewIndexOutOfRangeError(pos, length int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{Pos: pos, Len: length}
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range [1, %d]", e.Pos, e.Len)
}

// InvalidIndexError indicates a key shape the operator contract does not
// admit, e.g. a compound key given to Strict element extraction.
type InvalidIndexError struct {
	Reason string
}

// NewInvalidIndexError creates a new invalid-index error.
func NewInvalidIndexError(reason string) *InvalidIndexError {
	return &InvalidIndexError{Reason: reason}
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid index: %s", e.Reason)
}

// LengthMismatchError indicates a Strict assignment whose source length is
// neither 1 nor the row count. The assignment is rejected whole.
type LengthMismatchError struct {
	// Got is the source length.
	Got int
	// Want is the container row count.
	Want int
}

// NewLengthMismatchError creates a new length-mismatch error.
func NewLengthMismatchError(got, want int) *LengthMismatchError {
	return &LengthMismatchError{Got: got, Want: want}
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("source length %d must be 1 or %d", e.Got, e.Want)
}

// ShapeError indicates a row-major value list whose length is not an exact
// multiple of the column count.
type ShapeError struct {
	Values  int
	Columns int
}

// NewShapeError creates a new shape error.
func NewShapeError(values, columns int) *ShapeError {
	return &ShapeError{Values: values, Columns: columns}
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%d values do not partition into rows of %d columns", e.Values, e.Columns)
}

// UnequalColumnLengthError indicates a column-major construction where the
// named column's length disagrees with the container row count.
type UnequalColumnLengthError struct {
	Name string
	Got  int
	Want int
}

// NewUnequalColumnLengthError creates a new unequal-length error.
func NewUnequalColumnLengthError(name string, got, want int) *UnequalColumnLengthError {
	return &UnequalColumnLengthError{Name: name, Got: got, Want: want}
}

func (e *UnequalColumnLengthError) Error() string {
	return fmt.Sprintf("column %q has length %d, want %d", e.Name, e.Got, e.Want)
}

// DuplicateColumnError indicates a construction or selection that would
// produce two columns with the same name.
type DuplicateColumnError struct {
	Name string
}

// NewDuplicateColumnError creates a new duplicate-column error.
func NewDuplicateColumnError(name string) *DuplicateColumnError {
	return &DuplicateColumnError{Name: name}
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column name %q", e.Name)
}
