package column

import "github.com/leapstack-labs/leapframe/pkg/core"

// RecycleTo stretches the vector to the target length by repeating its
// elements cyclically. It is used only by column assignment.
//
// Which source lengths are admissible depends on the policy:
//   - Legacy accepts any length L with target % L == 0.
//   - Strict accepts only L == 1 (broadcast) or L == target.
//
// The second return value is false when the policy rejects the length; the
// receiver is never modified either way.
func (v *Vector) RecycleTo(target int, policy core.Policy) (*Vector, bool) {
	n := v.Len()
	if n == target {
		return v, true
	}
	if n == 0 || target < 0 {
		return nil, false
	}

	switch policy {
	case core.Legacy:
		if target%n != 0 {
			return nil, false
		}
	case core.Strict:
		if n != 1 {
			return nil, false
		}
	}

	offsets := make([]int, target)
	for i := range offsets {
		offsets[i] = i % n
	}
	return v.Take(offsets), true
}
