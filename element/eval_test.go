package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fembasis/element"
	"github.com/notargets/fembasis/element/library/lagrange"
)

// interiorPoint picks a generic point inside the reference domain of b.
func interiorPoint(b element.Basis[float64]) []float64 {
	pt := make([]float64, b.Dim())
	switch b.GeometryType() {
	case element.Tri, element.Tet:
		for i := range pt {
			pt[i] = 0.21
		}
	default:
		for i := range pt {
			pt[i] = 0.3 - 0.1*float64(i)
		}
	}
	return pt
}

// nodeCoord returns the reference coordinates of node k of b.
func nodeCoord(b element.Basis[float64], k int) []float64 {
	r, s, t := b.RST()
	switch b.Dim() {
	case 1:
		return []float64{r[k]}
	case 2:
		return []float64{r[k], s[k]}
	default:
		return []float64{r[k], s[k], t[k]}
	}
}

func TestShapeValuesPartitionOfUnity(t *testing.T) {
	for _, name := range lagrange.Names() {
		b, err := lagrange.New[float64](name)
		require.NoError(t, err)
		N, err := element.ShapeValues(b, interiorPoint(b))
		require.NoError(t, err)
		var sum float64
		for _, v := range N {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-14, name)
	}
}

// Partition of unity implies the parametric derivatives sum to zero in
// every direction.
func TestShapeDerivativesSumToZero(t *testing.T) {
	for _, name := range lagrange.Names() {
		b, err := lagrange.New[float64](name)
		require.NoError(t, err)
		dN, err := element.ShapeDerivatives(b, interiorPoint(b))
		require.NoError(t, err)
		dim, np := dN.Dims()
		require.Equal(t, b.Dim(), dim, name)
		require.Equal(t, b.Np(), np, name)
		for i := 0; i < dim; i++ {
			var sum float64
			for k := 0; k < np; k++ {
				sum += dN.At(i, k)
			}
			assert.InDelta(t, 0.0, sum, 1e-13, name)
		}
	}
}

// Interpolating at a node's own reference coordinate must return exactly
// that node's value (Kronecker delta property).
func TestInterpolateKroneckerAtNodes(t *testing.T) {
	for _, name := range lagrange.Names() {
		b, err := lagrange.New[float64](name)
		require.NoError(t, err)
		u := make([]float64, b.Np())
		for k := range u {
			u[k] = float64(k + 1)
		}
		for k := 0; k < b.Np(); k++ {
			v, err := element.Interpolate(b, u, nodeCoord(b, k))
			require.NoError(t, err)
			assert.InDelta(t, u[k], v, 1e-13, "%s node %d", name, k)
		}
	}
}

func TestInterpolateVector(t *testing.T) {
	b := lagrange.Quad4[float64]{}
	u := [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}}

	// center of the reference square: plain nodal average
	v, err := element.InterpolateVector(b, u, []float64{0, 0})
	require.NoError(t, err)
	require.Len(t, v, 2)
	assert.InDelta(t, 4.0, v[0], 1e-15)
	assert.InDelta(t, 5.0, v[1], 1e-15)
}

func TestInterpolateDimensionMismatch(t *testing.T) {
	b := lagrange.Tri3[float64]{}

	_, err := element.Interpolate(b, []float64{1, 2}, []float64{0.2, 0.2})
	require.ErrorIs(t, err, element.ErrDimensionMismatch)

	_, err = element.ShapeValues(b, []float64{0.2})
	require.ErrorIs(t, err, element.ErrDimensionMismatch)

	_, err = element.InterpolateVector(b, [][]float64{{1}, {2, 3}, {4}}, []float64{0.2, 0.2})
	require.ErrorIs(t, err, element.ErrDimensionMismatch)
}
