package element

import "errors"

// MinDet is the smallest |det(J)| accepted before a square mapping is
// reported as degenerate.
const MinDet = 1.0e-14

var (
	// ErrDimensionMismatch reports a buffer, point, or nodal array whose
	// length disagrees with the basis.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrSingularGeometry reports a square Jacobian whose determinant is
	// numerically zero; the element is degenerate or inverted.
	ErrSingularGeometry = errors.New("singular element geometry")

	// ErrUnsupportedGeometry reports a parametric/physical dimension
	// pairing outside the square, embedded-curve, and embedded-surface
	// cases.
	ErrUnsupportedGeometry = errors.New("unsupported geometry")
)
