package frame

import (
	"strings"

	"github.com/leapstack-labs/leapframe/pkg/core"
)

// notFound is the offset returned by soft lookup misses.
const notFound = -1

// resolveKey maps a lookup key to a 0-based column offset.
//
// Name resolution:
//  1. An exact match wins under both policies.
//  2. With no exact match, Legacy scans for names having the key as a
//     prefix. Exactly one prefix match resolves silently; zero or several
//     collapse into a silent notFound (ambiguity is not a visible signal).
//  3. With no exact match, Strict never prefix-matches: notFound plus a
//     MissingColumnWarning diagnostic.
//
// Positional keys are 1-based and behave identically under both policies;
// out-of-range positions are a hard IndexOutOfRangeError.
func (f *Frame) resolveKey(k Key) (int, *core.Diagnostic, error) {
	if k.byPos {
		if k.pos < 1 || k.pos > len(f.cols) {
			return notFound, nil, core.NewIndexOutOfRangeError(k.pos, len(f.cols))
		}
		return k.pos - 1, nil, nil
	}

	for i, name := range f.names {
		if name == k.name {
			return i, nil, nil
		}
	}

	if f.policy == core.Legacy {
		match := notFound
		for i, name := range f.names {
			if strings.HasPrefix(name, k.name) {
				if match != notFound {
					// Ambiguous prefix: silent not-found.
					return notFound, nil, nil
				}
				match = i
			}
		}
		return match, nil, nil
	}

	return notFound, core.NewMissingColumnWarning(k.name), nil
}

// resolveKeys resolves a key set in request order. Soft misses are dropped
// from the offsets; under Strict the first miss contributes a diagnostic.
// Hard errors abort resolution.
func (f *Frame) resolveKeys(keys []Key) ([]int, *core.Diagnostic, error) {
	offsets := make([]int, 0, len(keys))
	var diag *core.Diagnostic
	for _, k := range keys {
		off, d, err := f.resolveKey(k)
		if err != nil {
			return nil, nil, err
		}
		if d != nil && diag == nil {
			diag = d
		}
		if off == notFound {
			continue
		}
		offsets = append(offsets, off)
	}
	return offsets, diag, nil
}

// resolveRows validates a 1-based row selector and translates it to 0-based
// offsets. A nil selector means all rows and resolves to nil.
func (f *Frame) resolveRows(rows []int) ([]int, error) {
	if rows == nil {
		return nil, nil
	}
	offsets := make([]int, len(rows))
	for i, pos := range rows {
		if pos < 1 || pos > f.rows {
			return nil, core.NewIndexOutOfRangeError(pos, f.rows)
		}
		offsets[i] = pos - 1
	}
	return offsets, nil
}
