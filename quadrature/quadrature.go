// Package quadrature provides Gauss quadrature rules on the reference
// domains used by element: Gauss-Legendre tensor rules for line, quad
// and hex, and symmetric rules on the unit triangle and tetrahedron.
package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/fembasis/element"
)

// Rule is a set of quadrature points and weights on a reference domain.
// Integrals are approximated as sum_q Weights[q] * f(Points[q]); for an
// isoparametric element the integrand carries the detJ factor.
type Rule struct {
	Points  [][]float64
	Weights []float64
}

// GaussJacobi returns the n-point Gauss rule for the Jacobi weight
// (1-x)^alpha (1+x)^beta on [-1,1], via the Golub-Welsch eigenvalue
// decomposition of the recurrence matrix.
func GaussJacobi(alpha, beta float64, n int) (x, w []float64) {
	if n < 1 {
		return nil, nil
	}
	ab := alpha + beta
	if n == 1 {
		return []float64{(beta - alpha) / (ab + 2)}, []float64{gamma0(alpha, beta)}
	}

	// symmetric tridiagonal recurrence matrix
	d0 := make([]float64, n) // main diagonal
	d1 := make([]float64, n-1)
	for i := 0; i < n; i++ {
		h := 2*float64(i) + ab
		d0[i] = (beta*beta - alpha*alpha) / (h * (h + 2))
	}
	if ab < 1e-15 {
		d0[0] = 0 // Legendre special case: avoid 0/0 on the first entry
	}
	for i := 0; i < n-1; i++ {
		k := float64(i + 1)
		h := 2*float64(i) + ab
		d1[i] = 2 / (h + 2) * math.Sqrt(k*(k+ab)*(k+alpha)*(k+beta)/((h+1)*(h+3)))
	}
	J := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		J.SetSym(i, i, d0[i])
		if i < n-1 {
			J.SetSym(i, i+1, d1[i])
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(J, true); !ok {
		panic("quadrature: eigen decomposition of the recurrence matrix failed")
	}
	x = eig.Values(nil)
	V := mat.NewDense(n, n, nil)
	eig.VectorsTo(V)

	w = make([]float64, n)
	g0 := gamma0(alpha, beta)
	for q := 0; q < n; q++ {
		v := V.At(0, q)
		w[q] = v * v * g0
	}
	return x, w
}

// gamma0 is the total mass of the Jacobi weight on [-1,1].
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1
	a1 := alpha + 1
	b1 := beta + 1
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

// GaussLegendre returns the n-point Gauss-Legendre rule on [-1,1],
// exact for polynomials of degree 2n-1.
func GaussLegendre(n int) (x, w []float64) {
	return GaussJacobi(0, 0, n)
}

// Line returns the n-point Gauss-Legendre rule on the reference line.
func Line(n int) Rule {
	x, w := GaussLegendre(n)
	r := Rule{Points: make([][]float64, n), Weights: w}
	for q := range x {
		r.Points[q] = []float64{x[q]}
	}
	return r
}

// Quad returns the n x n tensor-product Gauss-Legendre rule on [-1,1]^2.
func Quad(n int) Rule {
	x, w := GaussLegendre(n)
	r := Rule{}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			r.Points = append(r.Points, []float64{x[i], x[j]})
			r.Weights = append(r.Weights, w[i]*w[j])
		}
	}
	return r
}

// Hex returns the n x n x n tensor-product Gauss-Legendre rule on
// [-1,1]^3.
func Hex(n int) Rule {
	x, w := GaussLegendre(n)
	r := Rule{}
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				r.Points = append(r.Points, []float64{x[i], x[j], x[k]})
				r.Weights = append(r.Weights, w[i]*w[j]*w[k])
			}
		}
	}
	return r
}

// Tri returns a symmetric n-point rule on the unit triangle (weights sum
// to 1/2). Supported point counts: 1, 3, 6.
func Tri(n int) (Rule, error) {
	switch n {
	case 1:
		return Rule{
			Points:  [][]float64{{1.0 / 3.0, 1.0 / 3.0}},
			Weights: []float64{0.5},
		}, nil
	case 3:
		return Rule{
			Points: [][]float64{
				{1.0 / 6.0, 1.0 / 6.0},
				{2.0 / 3.0, 1.0 / 6.0},
				{1.0 / 6.0, 2.0 / 3.0},
			},
			Weights: []float64{1.0 / 6.0, 1.0 / 6.0, 1.0 / 6.0},
		}, nil
	case 6:
		const (
			a  = 0.445948490915965
			b  = 0.091576213509771
			wa = 0.111690794839005
			wb = 0.054975871827661
		)
		return Rule{
			Points: [][]float64{
				{a, a}, {1 - 2*a, a}, {a, 1 - 2*a},
				{b, b}, {1 - 2*b, b}, {b, 1 - 2*b},
			},
			Weights: []float64{wa, wa, wa, wb, wb, wb},
		}, nil
	}
	return Rule{}, fmt.Errorf("no %d-point triangle rule (have 1, 3, 6)", n)
}

// Tet returns a symmetric n-point rule on the unit tetrahedron (weights
// sum to 1/6). Supported point counts: 1, 4.
func Tet(n int) (Rule, error) {
	switch n {
	case 1:
		return Rule{
			Points:  [][]float64{{0.25, 0.25, 0.25}},
			Weights: []float64{1.0 / 6.0},
		}, nil
	case 4:
		const (
			a = 0.585410196624969
			b = 0.138196601125011
		)
		return Rule{
			Points: [][]float64{
				{b, b, b}, {a, b, b}, {b, a, b}, {b, b, a},
			},
			Weights: []float64{1.0 / 24.0, 1.0 / 24.0, 1.0 / 24.0, 1.0 / 24.0},
		}, nil
	}
	return Rule{}, fmt.Errorf("no %d-point tetrahedron rule (have 1, 4)", n)
}

// ForGeometry returns a rule for the reference geometry g. For tensor
// geometries n is the number of points per direction; for simplices it
// is the total point count.
func ForGeometry(g element.GeometryType, n int) (Rule, error) {
	switch g {
	case element.Line:
		return Line(n), nil
	case element.Quad:
		return Quad(n), nil
	case element.Hex:
		return Hex(n), nil
	case element.Tri:
		return Tri(n)
	case element.Tet:
		return Tet(n)
	}
	return Rule{}, fmt.Errorf("no quadrature rules for geometry %s", g)
}
