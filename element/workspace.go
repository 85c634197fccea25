package element

import (
	"fmt"
	"math"
)

// Workspace is a reusable per-basis scratchpad for the full evaluation
// pipeline: shape values, parametric derivatives, Jacobian, determinant,
// inverse, and the physical gradient operator. It is created once per
// (basis, precision) pair and mutated in place on every Evaluate call,
// so a tight assembly loop allocates nothing.
//
// A Workspace is owned by exactly one caller at a time; concurrent users
// must each hold their own instance. The Basis behind it may be shared.
type Workspace[T Scalar] struct {
	B Basis[T]

	N    []T // [Np] shape values
	DN   []T // [Dim*Np] parametric derivatives, row-major
	Grad []T // [Dim*Np] physical gradient operator; square cases only
	J    []T // [Dim*ndim] Jacobian, row-major; resized when ndim changes
	Jinv []T // [Dim*Dim] inverse Jacobian; square cases only
	DetJ T   // determinant, or the length/area element for manifolds

	ndim int // physical dimension of the last Evaluate
}

// NewWorkspace allocates a workspace for b. The numeric precision is the
// type parameter; all buffers use it uniformly.
func NewWorkspace[T Scalar](b Basis[T]) *Workspace[T] {
	np, dim := b.Np(), b.Dim()
	return &Workspace[T]{
		B:    b,
		N:    make([]T, np),
		DN:   make([]T, dim*np),
		Grad: make([]T, dim*np),
		Jinv: make([]T, dim*dim),
	}
}

// Ndim returns the physical dimension seen by the last Evaluate call.
func (w *Workspace[T]) Ndim() int { return w.ndim }

// Evaluate runs the full pipeline at the parametric point xi for the
// element with nodal physical coordinates X. On return N, DN, J and DetJ
// are consistent for (X, xi); for square Jacobians Jinv and Grad are as
// well. The square 1x1/2x2/3x3 branches use closed-form determinants and
// adjugate inverses rather than a general solve.
//
// For embedded curves (Dim 1 in 2-D/3-D) DetJ is the Euclidean norm of J
// (the arc-length element); for embedded surfaces (Dim 2 in 3-D) it is
// the norm of the cross product of the rows of J (the area element). In
// both manifold cases Grad and Jinv keep their previous contents and
// must not be read.
func (w *Workspace[T]) Evaluate(X [][]T, xi []T) error {
	np, dim := w.B.Np(), w.B.Dim()
	ndim, err := checkCoords(w.B, X)
	if err != nil {
		return err
	}
	if err := w.B.EvalShape(w.N, xi); err != nil {
		return err
	}
	if err := w.B.EvalShapeDeriv(w.DN, xi); err != nil {
		return err
	}

	// The Jacobian buffer survives across calls and is resized only when
	// the physical dimension changes; otherwise it is zeroed in place.
	if len(w.J) != dim*ndim {
		w.J = make([]T, dim*ndim)
	} else {
		for i := range w.J {
			w.J[i] = 0
		}
	}
	w.ndim = ndim

	for i := 0; i < dim; i++ {
		row := w.DN[i*np : (i+1)*np]
		jrow := w.J[i*ndim : (i+1)*ndim]
		for k := 0; k < np; k++ {
			dik := row[k]
			xk := X[k]
			for j := 0; j < ndim; j++ {
				jrow[j] += dik * xk[j]
			}
		}
	}

	switch {
	case dim == 1 && ndim == 1:
		d := w.J[0]
		if tabs(d) < MinDet {
			return singularErr(d)
		}
		w.DetJ = d
		w.Jinv[0] = 1 / d
		for k := 0; k < np; k++ {
			w.Grad[k] = w.DN[k] / d
		}

	case dim == 2 && ndim == 2:
		a, b := w.J[0], w.J[1]
		c, d := w.J[2], w.J[3]
		det := a*d - b*c
		if tabs(det) < MinDet {
			return singularErr(det)
		}
		w.DetJ = det
		w.Jinv[0] = d / det
		w.Jinv[1] = -b / det
		w.Jinv[2] = -c / det
		w.Jinv[3] = a / det
		w.applyInverse()

	case dim == 3 && ndim == 3:
		a, b, c := w.J[0], w.J[1], w.J[2]
		d, e, f := w.J[3], w.J[4], w.J[5]
		g, h, i := w.J[6], w.J[7], w.J[8]
		det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
		if tabs(det) < MinDet {
			return singularErr(det)
		}
		w.DetJ = det
		w.Jinv[0] = (e*i - f*h) / det
		w.Jinv[1] = -(b*i - c*h) / det
		w.Jinv[2] = (b*f - c*e) / det
		w.Jinv[3] = -(d*i - f*g) / det
		w.Jinv[4] = (a*i - c*g) / det
		w.Jinv[5] = -(a*f - c*d) / det
		w.Jinv[6] = (d*h - e*g) / det
		w.Jinv[7] = -(a*h - b*g) / det
		w.Jinv[8] = (a*e - b*d) / det
		w.applyInverse()

	case dim == 1 && (ndim == 2 || ndim == 3):
		// Embedded curve: only the arc-length element is defined.
		var s T
		for j := 0; j < ndim; j++ {
			s += w.J[j] * w.J[j]
		}
		w.DetJ = tsqrt(s)

	case dim == 2 && ndim == 3:
		// Embedded surface: area element from the row cross product.
		cx := w.J[1]*w.J[5] - w.J[2]*w.J[4]
		cy := w.J[2]*w.J[3] - w.J[0]*w.J[5]
		cz := w.J[0]*w.J[4] - w.J[1]*w.J[3]
		w.DetJ = tsqrt(cx*cx + cy*cy + cz*cz)

	default:
		return fmt.Errorf("%w: parametric dim %d with physical dim %d",
			ErrUnsupportedGeometry, dim, ndim)
	}
	return nil
}

// applyInverse fills Grad = Jinv * DN for the square cases.
func (w *Workspace[T]) applyInverse() {
	np, dim := w.B.Np(), w.B.Dim()
	for i := 0; i < dim; i++ {
		grow := w.Grad[i*np : (i+1)*np]
		for k := 0; k < np; k++ {
			var s T
			for j := 0; j < dim; j++ {
				s += w.Jinv[i*dim+j] * w.DN[j*np+k]
			}
			grow[k] = s
		}
	}
}

// Interpolate evaluates the scalar field with nodal values u at the
// point of the last Evaluate call, using the cached shape values. The
// caller must have called Evaluate first; stale N produces stale results.
func (w *Workspace[T]) Interpolate(u []T) (T, error) {
	if len(u) != w.B.Np() {
		return 0, fmt.Errorf("%w: field has %d nodal values, basis %s has %d nodes",
			ErrDimensionMismatch, len(u), w.B.ShortName(), w.B.Np())
	}
	var v T
	for k, nk := range w.N {
		v += nk * u[k]
	}
	return v, nil
}

// FieldGradient accumulates the physical gradient of the vector field
// with nodal values u into the caller-supplied buffer:
//
//	gradu[i*Dim+j] = du_i/dx_j = sum_k Grad[j,k] * u[k][i]
//
// Precondition: a successful Evaluate with matching (X, xi) on a square
// geometry. The geometry is not re-derived here; calling this before
// Evaluate, or after changing X or xi without re-evaluating, silently
// produces stale results.
func (w *Workspace[T]) FieldGradient(gradu []T, u [][]T) error {
	np, dim := w.B.Np(), w.B.Dim()
	if len(u) != np {
		return fmt.Errorf("%w: field has %d nodal values, basis %s has %d nodes",
			ErrDimensionMismatch, len(u), w.B.ShortName(), np)
	}
	nc := len(u[0])
	for k := range u {
		if len(u[k]) != nc {
			return fmt.Errorf("%w: nodal value %d has %d components, want %d",
				ErrDimensionMismatch, k, len(u[k]), nc)
		}
	}
	if len(gradu) != nc*dim {
		return fmt.Errorf("%w: gradient buffer has %d entries, want %d",
			ErrDimensionMismatch, len(gradu), nc*dim)
	}
	for i := 0; i < nc; i++ {
		for j := 0; j < dim; j++ {
			var s T
			for k := 0; k < np; k++ {
				s += w.Grad[j*np+k] * u[k][i]
			}
			gradu[i*dim+j] = s
		}
	}
	return nil
}

func singularErr[T Scalar](det T) error {
	return fmt.Errorf("%w: |det(J)| = %g is below %g",
		ErrSingularGeometry, math.Abs(float64(det)), MinDet)
}

func tabs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func tsqrt[T Scalar](x T) T {
	return T(math.Sqrt(float64(x)))
}
