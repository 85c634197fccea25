package lagrange

import "github.com/notargets/fembasis/element"

// Tri3 is the linear 3-node triangle in natural coordinates on the unit
// simplex: vertices (0,0), (1,0), (0,1).
type Tri3[T element.Scalar] struct{}

func (Tri3[T]) Name() string                       { return "Lagrange Triangle Order 1" }
func (Tri3[T]) ShortName() string                  { return "tri3" }
func (Tri3[T]) GeometryType() element.GeometryType { return element.Tri }
func (Tri3[T]) Order() int                         { return 1 }
func (Tri3[T]) Np() int                            { return 3 }
func (Tri3[T]) Dim() int                           { return 2 }

func (Tri3[T]) RST() (r, s, t []T) {
	return []T{0, 1, 0}, []T{0, 0, 1}, nil
}

func (Tri3[T]) EvalShape(N, xi []T) error {
	if err := checkShape(len(N), 3, len(xi), 2); err != nil {
		return err
	}
	r, s := xi[0], xi[1]
	N[0] = 1 - r - s
	N[1] = r
	N[2] = s
	return nil
}

func (Tri3[T]) EvalShapeDeriv(dN, xi []T) error {
	if err := checkDeriv(len(dN), 3, 2, len(xi)); err != nil {
		return err
	}
	dN[0], dN[1], dN[2] = -1, 1, 0 // d/dr
	dN[3], dN[4], dN[5] = -1, 0, 1 // d/ds
	return nil
}

// Tri6 is the quadratic 6-node triangle: vertices (0,0), (1,0), (0,1)
// then edge midpoints (1/2,0), (1/2,1/2), (0,1/2).
type Tri6[T element.Scalar] struct{}

func (Tri6[T]) Name() string                       { return "Lagrange Triangle Order 2" }
func (Tri6[T]) ShortName() string                  { return "tri6" }
func (Tri6[T]) GeometryType() element.GeometryType { return element.Tri }
func (Tri6[T]) Order() int                         { return 2 }
func (Tri6[T]) Np() int                            { return 6 }
func (Tri6[T]) Dim() int                           { return 2 }

func (Tri6[T]) RST() (r, s, t []T) {
	return []T{0, 1, 0, 0.5, 0.5, 0}, []T{0, 0, 1, 0, 0.5, 0.5}, nil
}

func (Tri6[T]) EvalShape(N, xi []T) error {
	if err := checkShape(len(N), 6, len(xi), 2); err != nil {
		return err
	}
	r, s := xi[0], xi[1]
	q := 1 - r - s
	N[0] = q * (2*q - 1)
	N[1] = r * (2*r - 1)
	N[2] = s * (2*s - 1)
	N[3] = 4 * r * q
	N[4] = 4 * r * s
	N[5] = 4 * s * q
	return nil
}

func (Tri6[T]) EvalShapeDeriv(dN, xi []T) error {
	if err := checkDeriv(len(dN), 6, 2, len(xi)); err != nil {
		return err
	}
	r, s := xi[0], xi[1]
	q := 1 - r - s
	// d/dr
	dN[0] = 1 - 4*q
	dN[1] = 4*r - 1
	dN[2] = 0
	dN[3] = 4 * (q - r)
	dN[4] = 4 * s
	dN[5] = -4 * s
	// d/ds
	dN[6] = 1 - 4*q
	dN[7] = 0
	dN[8] = 4*s - 1
	dN[9] = -4 * r
	dN[10] = 4 * r
	dN[11] = 4 * (q - s)
	return nil
}
