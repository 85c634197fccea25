package lagrange

import "github.com/notargets/fembasis/element"

// Tet4 is the linear 4-node tetrahedron in natural coordinates on the
// unit simplex: vertices (0,0,0), (1,0,0), (0,1,0), (0,0,1).
type Tet4[T element.Scalar] struct{}

func (Tet4[T]) Name() string                       { return "Lagrange Tetrahedron Order 1" }
func (Tet4[T]) ShortName() string                  { return "tet4" }
func (Tet4[T]) GeometryType() element.GeometryType { return element.Tet }
func (Tet4[T]) Order() int                         { return 1 }
func (Tet4[T]) Np() int                            { return 4 }
func (Tet4[T]) Dim() int                           { return 3 }

func (Tet4[T]) RST() (r, s, t []T) {
	return []T{0, 1, 0, 0}, []T{0, 0, 1, 0}, []T{0, 0, 0, 1}
}

func (Tet4[T]) EvalShape(N, xi []T) error {
	if err := checkShape(len(N), 4, len(xi), 3); err != nil {
		return err
	}
	r, s, t := xi[0], xi[1], xi[2]
	N[0] = 1 - r - s - t
	N[1] = r
	N[2] = s
	N[3] = t
	return nil
}

func (Tet4[T]) EvalShapeDeriv(dN, xi []T) error {
	if err := checkDeriv(len(dN), 4, 3, len(xi)); err != nil {
		return err
	}
	dN[0], dN[1], dN[2], dN[3] = -1, 1, 0, 0   // d/dr
	dN[4], dN[5], dN[6], dN[7] = -1, 0, 1, 0   // d/ds
	dN[8], dN[9], dN[10], dN[11] = -1, 0, 0, 1 // d/dt
	return nil
}
