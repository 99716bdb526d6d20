package column

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/leapframe/pkg/core"
)

// Infer builds a vector from untyped scalars, choosing the narrowest common
// kind:
//
//   - all booleans        -> bool
//   - all integers        -> int
//   - numeric with floats -> float (integers widen)
//   - anything else mixed -> string (every element re-rendered as text)
//
// Booleans mixed with numbers count as non-numeric, so the column collapses
// to text. An empty sequence yields an empty text vector.
func Infer(values []any) *Vector {
	kind := inferKind(values)

	switch kind {
	case core.KindBool:
		out := make([]bool, len(values))
		for i, val := range values {
			out[i] = val.(bool)
		}
		return &Vector{kind: core.KindBool, bools: out}
	case core.KindInt:
		out := make([]int64, len(values))
		for i, val := range values {
			out[i], _ = asInt(val)
		}
		return &Vector{kind: core.KindInt, ints: out}
	case core.KindFloat:
		out := make([]float64, len(values))
		for i, val := range values {
			out[i], _ = asFloat(val)
		}
		return &Vector{kind: core.KindFloat, floats: out}
	default:
		out := make([]string, len(values))
		for i, val := range values {
			out[i] = displayAny(val)
		}
		return &Vector{kind: core.KindString, strs: out}
	}
}

func inferKind(values []any) core.Kind {
	if len(values) == 0 {
		return core.KindString
	}

	allBool := true
	allNumeric := true
	anyFloat := false

	for _, val := range values {
		if _, ok := val.(bool); !ok {
			allBool = false
		}
		if _, ok := asInt(val); ok {
			continue
		}
		if _, ok := asFloat(val); ok {
			anyFloat = true
			continue
		}
		allNumeric = false
	}

	switch {
	case allBool:
		return core.KindBool
	case allNumeric && anyFloat:
		return core.KindFloat
	case allNumeric:
		return core.KindInt
	default:
		return core.KindString
	}
}

func asInt(val any) (int64, bool) {
	switch n := val.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat(val any) (float64, bool) {
	if n, ok := asInt(val); ok {
		return float64(n), true
	}
	switch f := val.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	default:
		return 0, false
	}
}

func displayAny(val any) string {
	switch x := val.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	default:
		if n, ok := asInt(val); ok {
			return strconv.FormatInt(n, 10)
		}
		return fmt.Sprintf("%v", val)
	}
}
