package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ShapeValues allocates and fills the shape function values of b at the
// parametric point xi. Pure; safe for concurrent use with a shared basis.
func ShapeValues(b Basis[float64], xi []float64) ([]float64, error) {
	N := make([]float64, b.Np())
	if err := b.EvalShape(N, xi); err != nil {
		return nil, err
	}
	return N, nil
}

// ShapeDerivatives allocates and fills the Dim x Np matrix of parametric
// shape function derivatives of b at xi.
func ShapeDerivatives(b Basis[float64], xi []float64) (*mat.Dense, error) {
	dN := make([]float64, b.Dim()*b.Np())
	if err := b.EvalShapeDeriv(dN, xi); err != nil {
		return nil, err
	}
	return mat.NewDense(b.Dim(), b.Np(), dN), nil
}

// Interpolate evaluates the scalar field with nodal values u at xi:
// sum_k N_k(xi) * u[k]. The nodal ordering of u must match the basis.
func Interpolate(b Basis[float64], u []float64, xi []float64) (float64, error) {
	if len(u) != b.Np() {
		return 0, fmt.Errorf("%w: field has %d nodal values, basis %s has %d nodes",
			ErrDimensionMismatch, len(u), b.ShortName(), b.Np())
	}
	N, err := ShapeValues(b, xi)
	if err != nil {
		return 0, err
	}
	var v float64
	for k, nk := range N {
		v += nk * u[k]
	}
	return v, nil
}

// InterpolateVector evaluates the vector field with nodal values u at xi,
// applying the weighted sum component-wise. All nodal tuples must have
// the same length.
func InterpolateVector(b Basis[float64], u [][]float64, xi []float64) ([]float64, error) {
	if len(u) != b.Np() {
		return nil, fmt.Errorf("%w: field has %d nodal values, basis %s has %d nodes",
			ErrDimensionMismatch, len(u), b.ShortName(), b.Np())
	}
	nc := len(u[0])
	for k := range u {
		if len(u[k]) != nc {
			return nil, fmt.Errorf("%w: nodal value %d has %d components, want %d",
				ErrDimensionMismatch, k, len(u[k]), nc)
		}
	}
	N, err := ShapeValues(b, xi)
	if err != nil {
		return nil, err
	}
	v := make([]float64, nc)
	for k, nk := range N {
		for i := 0; i < nc; i++ {
			v[i] += nk * u[k][i]
		}
	}
	return v, nil
}
