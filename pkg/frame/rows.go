package frame

import (
	"github.com/leapstack-labs/leapframe/pkg/column"
	"github.com/leapstack-labs/leapframe/pkg/core"
)

// FromRows builds a frame from a flat, row-major value list. The value
// count must be an exact multiple of the name count (ShapeError otherwise).
//
// Values are partitioned into rows of len(names); each column gathers every
// len(names)-th value starting at its position, then infers the narrowest
// common scalar kind (see column.Infer).
//
// The result always carries the Strict policy: a full reconstruction never
// inherits Legacy behavior.
func FromRows(names []string, values []any) (*Frame, error) {
	width := len(names)
	if width == 0 {
		if len(values) != 0 {
			return nil, core.NewShapeError(len(values), 0)
		}
		return New(nil, core.Strict)
	}
	if len(values)%width != 0 {
		return nil, core.NewShapeError(len(values), width)
	}

	depth := len(values) / width
	cols := make([]Column, width)
	for p, name := range names {
		gathered := make([]any, depth)
		for r := 0; r < depth; r++ {
			gathered[r] = values[r*width+p]
		}
		cols[p] = Column{Name: name, Vector: column.Infer(gathered)}
	}
	return New(cols, core.Strict)
}
