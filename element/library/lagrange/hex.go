package lagrange

import "github.com/notargets/fembasis/element"

// corner sign tables, bottom face counter-clockwise then top
var (
	hexR = [8]int{-1, 1, 1, -1, -1, 1, 1, -1}
	hexS = [8]int{-1, -1, 1, 1, -1, -1, 1, 1}
	hexT = [8]int{-1, -1, -1, -1, 1, 1, 1, 1}
)

// Hex8 is the trilinear 8-node hexahedron on [-1,1]^3.
type Hex8[T element.Scalar] struct{}

func (Hex8[T]) Name() string                       { return "Lagrange Hexahedron Order 1" }
func (Hex8[T]) ShortName() string                  { return "hex8" }
func (Hex8[T]) GeometryType() element.GeometryType { return element.Hex }
func (Hex8[T]) Order() int                         { return 1 }
func (Hex8[T]) Np() int                            { return 8 }
func (Hex8[T]) Dim() int                           { return 3 }

func (Hex8[T]) RST() (r, s, t []T) {
	r = make([]T, 8)
	s = make([]T, 8)
	t = make([]T, 8)
	for k := 0; k < 8; k++ {
		r[k] = T(hexR[k])
		s[k] = T(hexS[k])
		t[k] = T(hexT[k])
	}
	return r, s, t
}

func (Hex8[T]) EvalShape(N, xi []T) error {
	if err := checkShape(len(N), 8, len(xi), 3); err != nil {
		return err
	}
	r, s, t := xi[0], xi[1], xi[2]
	for k := 0; k < 8; k++ {
		rk, sk, tk := T(hexR[k]), T(hexS[k]), T(hexT[k])
		N[k] = (1 + rk*r) * (1 + sk*s) * (1 + tk*t) / 8
	}
	return nil
}

func (Hex8[T]) EvalShapeDeriv(dN, xi []T) error {
	if err := checkDeriv(len(dN), 8, 3, len(xi)); err != nil {
		return err
	}
	r, s, t := xi[0], xi[1], xi[2]
	for k := 0; k < 8; k++ {
		rk, sk, tk := T(hexR[k]), T(hexS[k]), T(hexT[k])
		dN[k] = rk * (1 + sk*s) * (1 + tk*t) / 8
		dN[8+k] = sk * (1 + rk*r) * (1 + tk*t) / 8
		dN[16+k] = tk * (1 + rk*r) * (1 + sk*s) / 8
	}
	return nil
}
