package frame

import (
	"github.com/leapstack-labs/leapframe/pkg/column"
	"github.com/leapstack-labs/leapframe/pkg/core"
)

// WithColumn implements column assignment. It never mutates the receiver:
// on success it returns a new frame that shares every untouched column's
// storage and carries the installed column under the given name (replacing
// an existing column in place, or appending a new one).
//
// The target length is the current row count; a frame with no columns yet
// adopts the source length as its row count. Admissible source lengths
// follow the policy:
//   - Legacy recycles any length that evenly divides the row count. A
//     non-divisor length is rejected whole: the returned frame is the
//     receiver unchanged and a RecycleLengthWarning is attached. No
//     truncation or padding path exists.
//   - Strict accepts only length 1 (broadcast) or the exact row count;
//     anything else fails with LengthMismatchError and the receiver is
//     returned unchanged.
//
// Either way no partially-updated frame is ever observable.
func (f *Frame) WithColumn(name string, src *column.Vector) (*Frame, *core.Diagnostic, error) {
	if len(f.cols) == 0 {
		out := &Frame{
			policy: f.policy,
			names:  []string{name},
			cols:   []*column.Vector{src},
			rows:   src.Len(),
		}
		return out, nil, nil
	}

	recycled, ok := src.RecycleTo(f.rows, f.policy)
	if !ok {
		if f.policy == core.Legacy {
			return f, core.NewRecycleLengthWarning(src.Len(), f.rows), nil
		}
		return f, nil, core.NewLengthMismatchError(src.Len(), f.rows)
	}

	out := &Frame{
		policy: f.policy,
		names:  make([]string, len(f.names)),
		cols:   make([]*column.Vector, len(f.cols)),
		rows:   f.rows,
	}
	copy(out.names, f.names)
	copy(out.cols, f.cols)

	replaced := false
	for i, n := range out.names {
		if n == name {
			out.cols[i] = recycled
			replaced = true
			break
		}
	}
	if !replaced {
		out.names = append(out.names, name)
		out.cols = append(out.cols, recycled)
	}
	return out, nil, nil
}
