package lagrange

import "github.com/notargets/fembasis/element"

// corner sign tables, counter-clockwise from (-1,-1)
var (
	quadR = [4]int{-1, 1, 1, -1}
	quadS = [4]int{-1, -1, 1, 1}
)

// Quad4 is the bilinear 4-node quadrilateral on [-1,1]^2, nodes
// counter-clockwise from (-1,-1).
type Quad4[T element.Scalar] struct{}

func (Quad4[T]) Name() string                       { return "Lagrange Quadrilateral Order 1" }
func (Quad4[T]) ShortName() string                  { return "quad4" }
func (Quad4[T]) GeometryType() element.GeometryType { return element.Quad }
func (Quad4[T]) Order() int                         { return 1 }
func (Quad4[T]) Np() int                            { return 4 }
func (Quad4[T]) Dim() int                           { return 2 }

func (Quad4[T]) RST() (r, s, t []T) {
	r = make([]T, 4)
	s = make([]T, 4)
	for k := 0; k < 4; k++ {
		r[k] = T(quadR[k])
		s[k] = T(quadS[k])
	}
	return r, s, nil
}

func (Quad4[T]) EvalShape(N, xi []T) error {
	if err := checkShape(len(N), 4, len(xi), 2); err != nil {
		return err
	}
	r, s := xi[0], xi[1]
	for k := 0; k < 4; k++ {
		rk, sk := T(quadR[k]), T(quadS[k])
		N[k] = (1 + rk*r) * (1 + sk*s) / 4
	}
	return nil
}

func (Quad4[T]) EvalShapeDeriv(dN, xi []T) error {
	if err := checkDeriv(len(dN), 4, 2, len(xi)); err != nil {
		return err
	}
	r, s := xi[0], xi[1]
	for k := 0; k < 4; k++ {
		rk, sk := T(quadR[k]), T(quadS[k])
		dN[k] = rk * (1 + sk*s) / 4
		dN[4+k] = sk * (1 + rk*r) / 4
	}
	return nil
}

// Quad8 is the quadratic 8-node serendipity quadrilateral on [-1,1]^2:
// the Quad4 corners followed by the edge midpoints (0,-1), (1,0), (0,1),
// (-1,0).
type Quad8[T element.Scalar] struct{}

func (Quad8[T]) Name() string                       { return "Serendipity Quadrilateral Order 2" }
func (Quad8[T]) ShortName() string                  { return "quad8" }
func (Quad8[T]) GeometryType() element.GeometryType { return element.Quad }
func (Quad8[T]) Order() int                         { return 2 }
func (Quad8[T]) Np() int                            { return 8 }
func (Quad8[T]) Dim() int                           { return 2 }

func (Quad8[T]) RST() (r, s, t []T) {
	return []T{-1, 1, 1, -1, 0, 1, 0, -1}, []T{-1, -1, 1, 1, -1, 0, 1, 0}, nil
}

func (Quad8[T]) EvalShape(N, xi []T) error {
	if err := checkShape(len(N), 8, len(xi), 2); err != nil {
		return err
	}
	r, s := xi[0], xi[1]
	for k := 0; k < 4; k++ {
		rk, sk := T(quadR[k]), T(quadS[k])
		N[k] = (1 + rk*r) * (1 + sk*s) * (rk*r + sk*s - 1) / 4
	}
	N[4] = (1 - r*r) * (1 - s) / 2
	N[5] = (1 + r) * (1 - s*s) / 2
	N[6] = (1 - r*r) * (1 + s) / 2
	N[7] = (1 - r) * (1 - s*s) / 2
	return nil
}

func (Quad8[T]) EvalShapeDeriv(dN, xi []T) error {
	if err := checkDeriv(len(dN), 8, 2, len(xi)); err != nil {
		return err
	}
	r, s := xi[0], xi[1]
	for k := 0; k < 4; k++ {
		rk, sk := T(quadR[k]), T(quadS[k])
		dN[k] = rk * (1 + sk*s) * (2*rk*r + sk*s) / 4
		dN[8+k] = sk * (1 + rk*r) * (rk*r + 2*sk*s) / 4
	}
	dN[4] = -r * (1 - s)
	dN[5] = (1 - s*s) / 2
	dN[6] = -r * (1 + s)
	dN[7] = -(1 - s*s) / 2
	dN[12] = -(1 - r*r) / 2
	dN[13] = -s * (1 + r)
	dN[14] = (1 - r*r) / 2
	dN[15] = -s * (1 - r)
	return nil
}
