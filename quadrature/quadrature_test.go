package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fembasis/element"
	"github.com/notargets/fembasis/element/library/lagrange"
)

func TestGaussLegendreSmall(t *testing.T) {
	x, w := GaussLegendre(1)
	require.Len(t, x, 1)
	assert.InDelta(t, 0.0, x[0], 1e-15)
	assert.InDelta(t, 2.0, w[0], 1e-15)

	x, w = GaussLegendre(2)
	require.Len(t, x, 2)
	c := 1 / math.Sqrt(3)
	assert.InDelta(t, -c, x[0], 1e-14)
	assert.InDelta(t, c, x[1], 1e-14)
	assert.InDelta(t, 1.0, w[0], 1e-14)
	assert.InDelta(t, 1.0, w[1], 1e-14)
}

// An n-point rule is exact for polynomials up to degree 2n-1.
func TestGaussLegendreExactness(t *testing.T) {
	x, w := GaussLegendre(3)
	var i4, i5 float64
	for q := range x {
		i4 += w[q] * math.Pow(x[q], 4)
		i5 += w[q] * math.Pow(x[q], 5)
	}
	assert.InDelta(t, 2.0/5.0, i4, 1e-13)
	assert.InDelta(t, 0.0, i5, 1e-13)
}

func TestGaussJacobiMass(t *testing.T) {
	// total weight is the mass of (1-x)^alpha (1+x)^beta on [-1,1]
	x, w := GaussJacobi(1, 0, 4)
	require.Len(t, x, 4)
	var sum float64
	for _, v := range w {
		sum += v
	}
	assert.InDelta(t, 2.0, sum, 1e-13)
}

func TestRuleWeightSums(t *testing.T) {
	sum := func(r Rule) (s float64) {
		for _, v := range r.Weights {
			s += v
		}
		return
	}
	assert.InDelta(t, 2.0, sum(Line(3)), 1e-13)
	assert.InDelta(t, 4.0, sum(Quad(2)), 1e-13)
	assert.InDelta(t, 8.0, sum(Hex(2)), 1e-13)
	for _, n := range []int{1, 3, 6} {
		r, err := Tri(n)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, sum(r), 1e-14, "tri %d", n)
	}
	for _, n := range []int{1, 4} {
		r, err := Tet(n)
		require.NoError(t, err)
		assert.InDelta(t, 1.0/6.0, sum(r), 1e-14, "tet %d", n)
	}
}

func TestUnsupportedRules(t *testing.T) {
	_, err := Tri(2)
	require.Error(t, err)
	_, err = Tet(3)
	require.Error(t, err)
	_, err = ForGeometry(element.Prism, 2)
	require.Error(t, err)
}

// Integrating detJ over a rule reproduces the element measure.
func TestElementMeasure(t *testing.T) {
	b := lagrange.Quad4[float64]{}
	X := [][]float64{{0, 0}, {2, 0.3}, {2.2, 1.9}, {-0.1, 1.6}}

	// shoelace area of the straight-sided quadrilateral
	var area2 float64
	for i := range X {
		j := (i + 1) % len(X)
		area2 += X[i][0]*X[j][1] - X[j][0]*X[i][1]
	}
	want := math.Abs(area2) / 2

	rule := Quad(2)
	w := element.NewWorkspace(b)
	var got float64
	for q, xi := range rule.Points {
		require.NoError(t, w.Evaluate(X, xi))
		got += w.DetJ * rule.Weights[q]
	}
	assert.InDelta(t, want, got, 1e-12)
}

func TestTetMeasure(t *testing.T) {
	b := lagrange.Tet4[float64]{}
	// reference tetrahedron itself: volume 1/6
	X := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	rule, err := Tet(4)
	require.NoError(t, err)

	w := element.NewWorkspace(b)
	var got float64
	for q, xi := range rule.Points {
		require.NoError(t, w.Evaluate(X, xi))
		got += w.DetJ * rule.Weights[q]
	}
	assert.InDelta(t, 1.0/6.0, got, 1e-14)
}
