package frame

import (
	"github.com/leapstack-labs/leapframe/pkg/column"
	"github.com/leapstack-labs/leapframe/pkg/core"
)

// Lookup is the outcome of a single-column access. Vector is nil when the
// key resolved to nothing; Warning carries the Strict miss diagnostic.
// A soft miss is not an error: callers inspect, they do not unwrap.
type Lookup struct {
	Vector  *column.Vector
	Warning *core.Diagnostic
}

// Found reports whether the lookup resolved to a column.
func (l Lookup) Found() bool { return l.Vector != nil }

// Result is the outcome of the two-argument bracket. Exactly one of Frame
// and Vector is non-nil: Legacy drops to a raw vector when a single column
// resolves, Strict always keeps the frame shape.
type Result struct {
	Frame   *Frame
	Vector  *column.Vector
	Warning *core.Diagnostic
}

// IsVector reports whether the result dropped to a raw column vector.
func (r Result) IsVector() bool { return r.Vector != nil }

// Col implements name access (the `.name` operator). A miss yields an empty
// Lookup: silent under Legacy (including ambiguous prefixes), carrying a
// MissingColumnWarning under Strict.
func (f *Frame) Col(name string) Lookup {
	off, diag, err := f.resolveKey(Name(name))
	if err != nil || off == notFound {
		return Lookup{Warning: diag}
	}
	return Lookup{Vector: f.cols[off]}
}

// Select implements the single-key bracket. It ALWAYS returns a new frame
// holding the resolved columns in request order with the receiver's policy,
// regardless of how many columns were requested or resolved — single-bracket
// never unwraps to a raw vector under either policy.
//
// Soft misses are omitted from the result (with a warning under Strict);
// out-of-range positions and duplicate selections are hard errors.
func (f *Frame) Select(keys ...Key) (*Frame, *core.Diagnostic, error) {
	offsets, diag, err := f.resolveKeys(keys)
	if err != nil {
		return nil, nil, err
	}
	if err := checkDistinct(f, offsets); err != nil {
		return nil, nil, err
	}
	return f.subset(offsets, nil), diag, nil
}

// Slice implements the two-argument row/column bracket. The row selector is
// applied verbatim to every resolved column: nil selects all rows, otherwise
// 1-based row positions (out-of-range is a hard error).
//
// Dimension dropping is where the policies part ways: when exactly one
// column resolves, Legacy returns the raw vector while Strict keeps a
// one-column frame. With any other count both policies return a frame.
func (f *Frame) Slice(rows []int, keys ...Key) (Result, error) {
	rowOffsets, err := f.resolveRows(rows)
	if err != nil {
		return Result{}, err
	}
	colOffsets, diag, err := f.resolveKeys(keys)
	if err != nil {
		return Result{}, err
	}
	if err := checkDistinct(f, colOffsets); err != nil {
		return Result{}, err
	}

	if f.policy == core.Legacy && len(colOffsets) == 1 {
		vec := f.cols[colOffsets[0]]
		if rowOffsets != nil {
			vec = vec.Take(rowOffsets)
		}
		return Result{Vector: vec, Warning: diag}, nil
	}

	return Result{Frame: f.subset(colOffsets, rowOffsets), Warning: diag}, nil
}

// Extract implements the double-bracket element extraction.
//
// With a single scalar key, both policies return the whole resolved vector
// (a Strict name miss yields a nil vector plus a MissingColumnWarning, a
// Legacy miss a silent nil).
//
// With a compound key of two or more positions, Legacy reinterprets the key
// as chained indexing: the first position selects a column and every
// subsequent position is an element lookup into the previous step's result,
// so the outcome is a length-1 vector holding the reached element. Strict
// rejects any compound key with InvalidIndexError and never chains.
func (f *Frame) Extract(keys ...Key) (*column.Vector, *core.Diagnostic, error) {
	switch {
	case len(keys) == 0:
		return nil, nil, core.NewInvalidIndexError("element extraction requires a key")
	case len(keys) == 1:
		off, diag, err := f.resolveKey(keys[0])
		if err != nil {
			return nil, nil, err
		}
		if off == notFound {
			return nil, diag, nil
		}
		return f.cols[off], diag, nil
	}

	if f.policy == core.Strict {
		return nil, nil, core.NewInvalidIndexError("compound key supplied where only a scalar key is allowed")
	}
	for _, k := range keys {
		if !k.ByPos() {
			return nil, nil, core.NewInvalidIndexError("compound keys chain by position, not by name")
		}
	}

	vec, err := f.ColumnAt(keys[0].pos)
	if err != nil {
		return nil, nil, err
	}
	for _, k := range keys[1:] {
		vec, err = vec.Element(k.pos)
		if err != nil {
			return nil, nil, err
		}
	}
	return vec, nil, nil
}

// checkDistinct rejects a selection that would install the same column
// twice, which would break the unique-name invariant.
func checkDistinct(f *Frame, offsets []int) error {
	seen := make(map[int]struct{}, len(offsets))
	for _, o := range offsets {
		if _, dup := seen[o]; dup {
			return core.NewDuplicateColumnError(f.names[o])
		}
		seen[o] = struct{}{}
	}
	return nil
}
