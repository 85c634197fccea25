package lagrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fembasis/element"
)

func testPoint(b element.Basis[float64]) []float64 {
	pt := make([]float64, b.Dim())
	switch b.GeometryType() {
	case element.Tri, element.Tet:
		for i := range pt {
			pt[i] = 0.17 + 0.05*float64(i)
		}
	default:
		for i := range pt {
			pt[i] = 0.4 - 0.3*float64(i)
		}
	}
	return pt
}

func TestNewAndNames(t *testing.T) {
	for _, name := range Names() {
		b, err := New[float64](name)
		require.NoError(t, err)
		assert.Equal(t, name, b.ShortName())

		r, s, tt := b.RST()
		assert.Len(t, r, b.Np(), name)
		if b.Dim() > 1 {
			assert.Len(t, s, b.Np(), name)
		} else {
			assert.Nil(t, s, name)
		}
		if b.Dim() > 2 {
			assert.Len(t, tt, b.Np(), name)
		} else {
			assert.Nil(t, tt, name)
		}
	}
	_, err := New[float64]("brick27")
	require.Error(t, err)
}

// Every basis is a Kronecker delta at its own nodes.
func TestKroneckerDeltaAtNodes(t *testing.T) {
	for _, name := range Names() {
		b, err := New[float64](name)
		require.NoError(t, err)
		r, s, tt := b.RST()
		np := b.Np()
		N := make([]float64, np)
		for k := 0; k < np; k++ {
			xi := make([]float64, b.Dim())
			xi[0] = r[k]
			if b.Dim() > 1 {
				xi[1] = s[k]
			}
			if b.Dim() > 2 {
				xi[2] = tt[k]
			}
			require.NoError(t, b.EvalShape(N, xi))
			for m := 0; m < np; m++ {
				want := 0.0
				if m == k {
					want = 1.0
				}
				assert.InDelta(t, want, N[m], 1e-14, "%s N[%d] at node %d", name, m, k)
			}
		}
	}
}

// The analytic derivatives must match central finite differences of the
// shape values.
func TestDerivativesMatchFiniteDifferences(t *testing.T) {
	const h = 1e-6
	for _, name := range Names() {
		b, err := New[float64](name)
		require.NoError(t, err)
		np, dim := b.Np(), b.Dim()
		xi := testPoint(b)

		dN := make([]float64, dim*np)
		require.NoError(t, b.EvalShapeDeriv(dN, xi))

		Np := make([]float64, np)
		Nm := make([]float64, np)
		pt := make([]float64, dim)
		for i := 0; i < dim; i++ {
			copy(pt, xi)
			pt[i] = xi[i] + h
			require.NoError(t, b.EvalShape(Np, pt))
			pt[i] = xi[i] - h
			require.NoError(t, b.EvalShape(Nm, pt))
			for k := 0; k < np; k++ {
				fd := (Np[k] - Nm[k]) / (2 * h)
				assert.InDelta(t, fd, dN[i*np+k], 5e-7,
					"%s dN[%d]/dxi_%d", name, k, i)
			}
		}
	}
}

func TestBufferLengthChecks(t *testing.T) {
	b := Quad4[float64]{}
	err := b.EvalShape(make([]float64, 3), []float64{0, 0})
	require.ErrorIs(t, err, element.ErrDimensionMismatch)
	err = b.EvalShape(make([]float64, 4), []float64{0})
	require.ErrorIs(t, err, element.ErrDimensionMismatch)
	err = b.EvalShapeDeriv(make([]float64, 7), []float64{0, 0})
	require.ErrorIs(t, err, element.ErrDimensionMismatch)
}
