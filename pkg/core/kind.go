package core

import (
	"encoding/json"
	"strings"
)

// =============================================================================
// Kind
// =============================================================================

// Kind identifies the scalar type of a column. Every element of a column
// shares one Kind; there are no mixed columns.
type Kind int

// Scalar kinds, from most to least specific for numeric widening.
const (
	// KindBool holds logical values.
	KindBool Kind = iota
	// KindInt holds 64-bit signed integers.
	KindInt
	// KindFloat holds 64-bit floating-point values.
	KindFloat
	// KindString holds text. Any column with a non-numeric member outside
	// a pure bool sequence collapses to this kind.
	KindString
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Glyph returns the short annotation used when rendering a column header,
// e.g. "<int>". The abbreviations follow the usual tabular-display
// convention rather than Go type names.
func (k Kind) Glyph() string {
	switch k {
	case KindBool:
		return "<lgl>"
	case KindInt:
		return "<int>"
	case KindFloat:
		return "<dbl>"
	case KindString:
		return "<chr>"
	default:
		return "<?>"
	}
}

// MarshalJSON encodes the kind as its string name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind from its string name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, _ := ParseKind(s)
	*k = parsed
	return nil
}

// Numeric reports whether the kind participates in numeric widening.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// ParseKind converts a string to a Kind value.
// Returns the kind and true if valid, or KindString and false if invalid.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "bool", "lgl":
		return KindBool, true
	case "int":
		return KindInt, true
	case "float", "dbl", "double":
		return KindFloat, true
	case "string", "chr", "text":
		return KindString, true
	default:
		return KindString, false
	}
}
