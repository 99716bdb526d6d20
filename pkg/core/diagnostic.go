package core

import "fmt"

// =============================================================================
// Diagnostic
// =============================================================================

// WarningKind classifies a soft diagnostic. Soft outcomes never abort the
// operation that produced them; they travel alongside the (possibly empty)
// result so callers can inspect them without a side-channel.
type WarningKind int

const (
	// WarnMissingColumn is attached by Strict lookups that find no exact
	// match. Legacy lookups stay silent on the same miss.
	WarnMissingColumn WarningKind = iota
	// WarnRecycleLength is attached by Legacy assignment when the source
	// length does not divide the target length. The assignment is not
	// applied.
	WarnRecycleLength
)

// String returns the string representation of the warning kind.
func (w WarningKind) String() string {
	switch w {
	case WarnMissingColumn:
		return "missing_column"
	case WarnRecycleLength:
		return "recycle_length"
	default:
		return "unknown"
	}
}

// Diagnostic is a soft signal carried beside an operator result. A nil
// *Diagnostic means the operation completed without anything to report.
type Diagnostic struct {
	Kind    WarningKind
	Message string
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("warning (%s): %s", d.Kind, d.Message)
}

// NewMissingColumnWarning builds the diagnostic a Strict lookup attaches
// when the key matches no column exactly.
func NewMissingColumnWarning(key string) *Diagnostic {
	return &Diagnostic{
		Kind:    WarnMissingColumn,
		Message: fmt.Sprintf("unknown column %q", key),
	}
}

// NewRecycleLengthWarning builds the diagnostic a Legacy assignment attaches
// when the source length does not evenly divide the row count.
func NewRecycleLengthWarning(source, target int) *Diagnostic {
	return &Diagnostic{
		Kind:    WarnRecycleLength,
		Message: fmt.Sprintf("source length %d does not divide row count %d; assignment not applied", source, target),
	}
}
