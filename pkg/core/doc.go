// Package core defines the shared language of the leapframe system.
//
// This package contains:
//   - Scalar kind tags (Kind)
//   - The container behavior discriminant (Policy)
//   - Soft diagnostics attached to lookup and assignment results (Diagnostic)
//   - The hard error taxonomy (IndexOutOfRangeError, ShapeError, ...)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
