// Package column implements the homogeneous, fixed-length typed vector that
// stores one column of a tabular container.
//
// A Vector is an immutable value: constructors copy their input, accessors
// never expose backing storage, and every derived vector is a fresh value.
// Containers may therefore share column storage freely across versions.
package column

import (
	"strconv"

	"github.com/leapstack-labs/leapframe/pkg/core"
)

// Vector is an immutable, homogeneous sequence of one scalar kind.
// Exactly one backing slice is non-nil, selected by the kind tag.
type Vector struct {
	kind   core.Kind
	bools  []bool
	ints   []int64
	floats []float64
	strs   []string
}

// Bools creates a logical vector.
func Bools(vals ...bool) *Vector {
	v := &Vector{kind: core.KindBool, bools: make([]bool, len(vals))}
	copy(v.bools, vals)
	return v
}

// Ints creates an integer vector.
func Ints(vals ...int64) *Vector {
	v := &Vector{kind: core.KindInt, ints: make([]int64, len(vals))}
	copy(v.ints, vals)
	return v
}

// Floats creates a floating-point vector.
func Floats(vals ...float64) *Vector {
	v := &Vector{kind: core.KindFloat, floats: make([]float64, len(vals))}
	copy(v.floats, vals)
	return v
}

// Strings creates a text vector.
func Strings(vals ...string) *Vector {
	v := &Vector{kind: core.KindString, strs: make([]string, len(vals))}
	copy(v.strs, vals)
	return v
}

// Kind returns the scalar kind tag.
func (v *Vector) Kind() core.Kind { return v.kind }

// Len returns the fixed element count.
func (v *Vector) Len() int {
	switch v.kind {
	case core.KindBool:
		return len(v.bools)
	case core.KindInt:
		return len(v.ints)
	case core.KindFloat:
		return len(v.floats)
	default:
		return len(v.strs)
	}
}

// Value returns the element at the 0-based offset i as an untyped scalar.
// The caller is responsible for bounds; see At for a checked, 1-based read.
func (v *Vector) Value(i int) any {
	switch v.kind {
	case core.KindBool:
		return v.bools[i]
	case core.KindInt:
		return v.ints[i]
	case core.KindFloat:
		return v.floats[i]
	default:
		return v.strs[i]
	}
}

// At returns the element at the 1-based position pos, or an
// IndexOutOfRangeError when pos is outside [1, Len].
func (v *Vector) At(pos int) (any, error) {
	if pos < 1 || pos > v.Len() {
		return nil, core.NewIndexOutOfRangeError(pos, v.Len())
	}
	return v.Value(pos - 1), nil
}

// Bool returns the element at 0-based offset i of a logical vector.
func (v *Vector) Bool(i int) bool { return v.bools[i] }

// Int returns the element at 0-based offset i of an integer vector.
func (v *Vector) Int(i int) int64 { return v.ints[i] }

// Float returns the element at 0-based offset i of a floating-point vector.
func (v *Vector) Float(i int) float64 { return v.floats[i] }

// Str returns the element at 0-based offset i of a text vector.
func (v *Vector) Str(i int) string { return v.strs[i] }

// Display renders the element at 0-based offset i for human output.
func (v *Vector) Display(i int) string {
	switch v.kind {
	case core.KindBool:
		return strconv.FormatBool(v.bools[i])
	case core.KindInt:
		return strconv.FormatInt(v.ints[i], 10)
	case core.KindFloat:
		return strconv.FormatFloat(v.floats[i], 'g', -1, 64)
	default:
		return v.strs[i]
	}
}

// Take returns a new vector gathering the elements at the given 0-based
// offsets, in order. Offsets must be in range; Take is an internal gather
// used after positions have been validated.
func (v *Vector) Take(offsets []int) *Vector {
	switch v.kind {
	case core.KindBool:
		out := make([]bool, len(offsets))
		for i, o := range offsets {
			out[i] = v.bools[o]
		}
		return &Vector{kind: core.KindBool, bools: out}
	case core.KindInt:
		out := make([]int64, len(offsets))
		for i, o := range offsets {
			out[i] = v.ints[o]
		}
		return &Vector{kind: core.KindInt, ints: out}
	case core.KindFloat:
		out := make([]float64, len(offsets))
		for i, o := range offsets {
			out[i] = v.floats[o]
		}
		return &Vector{kind: core.KindFloat, floats: out}
	default:
		out := make([]string, len(offsets))
		for i, o := range offsets {
			out[i] = v.strs[o]
		}
		return &Vector{kind: core.KindString, strs: out}
	}
}

// Element returns a length-1 vector holding the element at the 1-based
// position pos. Element extraction chains treat scalars as length-1 vectors.
func (v *Vector) Element(pos int) (*Vector, error) {
	if pos < 1 || pos > v.Len() {
		return nil, core.NewIndexOutOfRangeError(pos, v.Len())
	}
	return v.Take([]int{pos - 1}), nil
}

// Equal reports whether two vectors hold the same kind and elements.
func (v *Vector) Equal(other *Vector) bool {
	if other == nil || v.kind != other.kind || v.Len() != other.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if v.Value(i) != other.Value(i) {
			return false
		}
	}
	return true
}
