package lagrange

import "github.com/notargets/fembasis/element"

// Line2 is the linear 2-node line on [-1,1].
type Line2[T element.Scalar] struct{}

func (Line2[T]) Name() string                       { return "Lagrange Line Order 1" }
func (Line2[T]) ShortName() string                  { return "line2" }
func (Line2[T]) GeometryType() element.GeometryType { return element.Line }
func (Line2[T]) Order() int                         { return 1 }
func (Line2[T]) Np() int                            { return 2 }
func (Line2[T]) Dim() int                           { return 1 }

func (Line2[T]) RST() (r, s, t []T) {
	return []T{-1, 1}, nil, nil
}

func (Line2[T]) EvalShape(N, xi []T) error {
	if err := checkShape(len(N), 2, len(xi), 1); err != nil {
		return err
	}
	r := xi[0]
	N[0] = (1 - r) / 2
	N[1] = (1 + r) / 2
	return nil
}

func (Line2[T]) EvalShapeDeriv(dN, xi []T) error {
	if err := checkDeriv(len(dN), 2, 1, len(xi)); err != nil {
		return err
	}
	dN[0] = -0.5
	dN[1] = 0.5
	return nil
}

// Line3 is the quadratic 3-node line on [-1,1], vertices first, midpoint
// last.
type Line3[T element.Scalar] struct{}

func (Line3[T]) Name() string                       { return "Lagrange Line Order 2" }
func (Line3[T]) ShortName() string                  { return "line3" }
func (Line3[T]) GeometryType() element.GeometryType { return element.Line }
func (Line3[T]) Order() int                         { return 2 }
func (Line3[T]) Np() int                            { return 3 }
func (Line3[T]) Dim() int                           { return 1 }

func (Line3[T]) RST() (r, s, t []T) {
	return []T{-1, 1, 0}, nil, nil
}

func (Line3[T]) EvalShape(N, xi []T) error {
	if err := checkShape(len(N), 3, len(xi), 1); err != nil {
		return err
	}
	r := xi[0]
	N[0] = r * (r - 1) / 2
	N[1] = r * (r + 1) / 2
	N[2] = 1 - r*r
	return nil
}

func (Line3[T]) EvalShapeDeriv(dN, xi []T) error {
	if err := checkDeriv(len(dN), 3, 1, len(xi)); err != nil {
		return err
	}
	r := xi[0]
	dN[0] = r - 0.5
	dN[1] = r + 0.5
	dN[2] = -2 * r
	return nil
}
