// Package element evaluates finite element bases on reference domains:
// shape function values and parametric derivatives, the geometric mapping
// Jacobian, its determinant and inverse, and physical-space gradients of
// interpolated fields. Concrete bases live in element/library and are
// consumed only through the Basis interface.
package element

// Scalar is the numeric precision used by a Workspace and its buffers.
type Scalar interface {
	~float32 | ~float64
}

// GeometryType identifies the reference shape of a basis.
type GeometryType uint8

const (
	Line GeometryType = iota
	Tri
	Quad
	Tet
	Hex
	Prism
	Pyramid
)

func (g GeometryType) String() string {
	switch g {
	case Line:
		return "Line"
	case Tri:
		return "Tri"
	case Quad:
		return "Quad"
	case Tet:
		return "Tet"
	case Hex:
		return "Hex"
	case Prism:
		return "Prism"
	case Pyramid:
		return "Pyramid"
	}
	return "Unknown"
}

// Basis describes one reference element variant. Implementations are
// immutable and stateless, so a single value may be shared by any number
// of concurrent callers.
//
// The parametric dimension Dim is the dimension of the reference domain;
// the physical dimension is fixed only when nodal coordinates are
// supplied, and may exceed Dim for manifold elements (a curve or surface
// embedded in higher-dimensional space).
type Basis[T Scalar] interface {
	Name() string
	ShortName() string
	GeometryType() GeometryType
	Order() int

	// Np is the number of nodes, Dim the parametric dimension.
	Np() int
	Dim() int

	// RST returns the nodal coordinates in the reference domain.
	// Slices above the parametric dimension are nil.
	RST() (r, s, t []T)

	// EvalShape fills N[Np] with the shape function values at xi.
	EvalShape(N []T, xi []T) error

	// EvalShapeDeriv fills dN[Dim*Np], row-major, with the parametric
	// derivatives at xi: dN[i*Np+k] = dN_k/dxi_i.
	EvalShapeDeriv(dN []T, xi []T) error
}
