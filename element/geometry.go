package element

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// checkCoords validates the nodal coordinate matrix X against the basis
// and returns the physical dimension.
func checkCoords[T Scalar](b Basis[T], X [][]T) (ndim int, err error) {
	if len(X) != b.Np() {
		return 0, fmt.Errorf("%w: %d nodal coordinates, basis %s has %d nodes",
			ErrDimensionMismatch, len(X), b.ShortName(), b.Np())
	}
	ndim = len(X[0])
	for k := range X {
		if len(X[k]) != ndim {
			return 0, fmt.Errorf("%w: node %d has %d coordinates, want %d",
				ErrDimensionMismatch, k, len(X[k]), ndim)
		}
	}
	return ndim, nil
}

// Jacobian computes the mapping Jacobian of the element with nodal
// physical coordinates X at the parametric point xi:
//
//	J[i,j] = sum_k dN[i,k] * X[k][j]
//
// a Dim x ndim matrix, where ndim is the physical dimension of X. For
// manifold elements ndim exceeds the parametric dimension and J is
// rectangular.
func Jacobian(b Basis[float64], X [][]float64, xi []float64) (*mat.Dense, error) {
	ndim, err := checkCoords(b, X)
	if err != nil {
		return nil, err
	}
	dN, err := ShapeDerivatives(b, xi)
	if err != nil {
		return nil, err
	}
	return contractJacobian(b, dN, X, ndim), nil
}

func contractJacobian(b Basis[float64], dN *mat.Dense, X [][]float64, ndim int) *mat.Dense {
	dim, np := b.Dim(), b.Np()
	J := mat.NewDense(dim, ndim, nil)
	for i := 0; i < dim; i++ {
		for k := 0; k < np; k++ {
			dik := dN.At(i, k)
			for j := 0; j < ndim; j++ {
				J.Set(i, j, J.At(i, j)+dik*X[k][j])
			}
		}
	}
	return J
}

// GradientOperator computes G = Jinv * dN, the Dim x Np matrix mapping
// nodal values to physical-space gradients: G[i,k] = dN_k/dx_i. The
// Jacobian must be square and invertible; this is the general-inverse
// reference path, the Workspace carries the closed-form branches.
func GradientOperator(b Basis[float64], X [][]float64, xi []float64) (*mat.Dense, error) {
	ndim, err := checkCoords(b, X)
	if err != nil {
		return nil, err
	}
	dim := b.Dim()
	if ndim != dim {
		return nil, fmt.Errorf("%w: gradient operator needs a square Jacobian, have %dx%d",
			ErrUnsupportedGeometry, dim, ndim)
	}
	dN, err := ShapeDerivatives(b, xi)
	if err != nil {
		return nil, err
	}
	J := contractJacobian(b, dN, X, ndim)
	det := mat.Det(J)
	if math.Abs(det) < MinDet {
		return nil, fmt.Errorf("%w: |det(J)| = %g", ErrSingularGeometry, math.Abs(det))
	}
	var Jinv mat.Dense
	if err := Jinv.Inverse(J); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularGeometry, err)
	}
	G := mat.NewDense(dim, b.Np(), nil)
	G.Mul(&Jinv, dN)
	return G, nil
}

// FieldGradient computes the physical gradient of the vector field with
// nodal values u, as the ndim x ncomp matrix
//
//	dudX[i,j] = sum_k G[i,k] * u[k][j]
//
// with rows indexing the spatial derivative direction and columns the
// field component.
func FieldGradient(b Basis[float64], u [][]float64, X [][]float64, xi []float64) (*mat.Dense, error) {
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
	G, err := GradientOperator(b, X, xi)
	if err != nil {
		return nil, err
	}
	dim, np := b.Dim(), b.Np()
	dudX := mat.NewDense(dim, nc, nil)
	for i := 0; i < dim; i++ {
		for k := 0; k < np; k++ {
			gik := G.At(i, k)
			for j := 0; j < nc; j++ {
				dudX.Set(i, j, dudX.At(i, j)+gik*u[k][j])
			}
		}
	}
	return dudX, nil
}

// FieldGradientScalar computes the physical gradient vector of the
// scalar field with nodal values u.
func FieldGradientScalar(b Basis[float64], u []float64, X [][]float64, xi []float64) ([]float64, error) {
	if len(u) != b.Np() {
		return nil, fmt.Errorf("%w: field has %d nodal values, basis %s has %d nodes",
			ErrDimensionMismatch, len(u), b.ShortName(), b.Np())
	}
	G, err := GradientOperator(b, X, xi)
	if err != nil {
		return nil, err
	}
	dim, np := b.Dim(), b.Np()
	g := make([]float64, dim)
	for i := 0; i < dim; i++ {
		for k := 0; k < np; k++ {
			g[i] += G.At(i, k) * u[k]
		}
	}
	return g, nil
}
