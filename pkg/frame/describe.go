package frame

import "github.com/leapstack-labs/leapframe/pkg/core"

// Summary is the metadata projection consumed by collaborators such as the
// renderer. It carries no column data, only shape and policy.
type Summary struct {
	Names    []string    `json:"names"`
	Kinds    []core.Kind `json:"kinds"`
	RowCount int         `json:"row_count"`
	Policy   core.Policy `json:"policy"`
}

// Describe returns the frame's metadata: ordered names, ordered kind tags,
// row count, and the active policy.
func (f *Frame) Describe() Summary {
	s := Summary{
		Names:    f.Names(),
		Kinds:    make([]core.Kind, len(f.cols)),
		RowCount: f.rows,
		Policy:   f.policy,
	}
	for i, c := range f.cols {
		s.Kinds[i] = c.Kind()
	}
	return s
}
