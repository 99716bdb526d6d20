package core

import (
	"encoding/json"
	"strings"
)

// =============================================================================
// Policy
// =============================================================================

// Policy selects the indexing and assignment semantics of a container.
// It is fixed when the container is constructed and inherited by every
// container produced through subsetting. It is never inherited across a full
// reconstruction: the row-major builder always yields Strict.
type Policy int

const (
	// Legacy is the permissive profile: silent partial (prefix) name
	// matching, dimension dropping on single-column two-argument access,
	// compound-key chaining, and divisor-length recycling on assignment.
	Legacy Policy = iota
	// Strict is the modern profile: exact name matching with warnings on
	// misses, no dimension dropping, scalar-only element extraction, and
	// broadcast-or-exact assignment lengths.
	Strict
)

// String returns the string representation of the policy.
func (p Policy) String() string {
	switch p {
	case Legacy:
		return "legacy"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the policy as its string name.
func (p Policy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a policy from its string name.
func (p *Policy) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, _ := ParsePolicy(s)
	*p = parsed
	return nil
}

// ParsePolicy converts a string to a Policy value.
// Returns the policy and true if valid, or Strict and false if invalid.
func ParsePolicy(s string) (Policy, bool) {
	switch strings.ToLower(s) {
	case "legacy":
		return Legacy, true
	case "strict":
		return Strict, true
	default:
		return Strict, false
	}
}
