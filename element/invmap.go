package element

import (
	"fmt"
	"math"
)

const (
	invMapTol   = 1.0e-10 // convergence tolerance on the Newton corrector
	invMapMaxIt = 25
)

// InverseMap computes the parametric coordinates xi of the physical
// point y inside the element with nodal coordinates X, by Newton
// iteration on the residual y - sum_k N_k(xi)*X_k with the workspace
// pipeline supplying the Jacobian inverse at each step. Coordinates that
// land just outside the reference range by round-off are clamped back.
//
// Only square 2-D and 3-D geometries are supported. On return the
// workspace holds the evaluation at the final iterate.
func (w *Workspace[T]) InverseMap(xi, y []T, X [][]T) error {
	np, dim := w.B.Np(), w.B.Dim()
	if dim < 2 {
		return fmt.Errorf("%w: inverse mapping needs parametric dimension 2 or 3, have %d",
			ErrUnsupportedGeometry, dim)
	}
	if len(xi) != dim || len(y) != dim {
		return fmt.Errorf("%w: point buffers have %d/%d coordinates, want %d",
			ErrDimensionMismatch, len(xi), len(y), dim)
	}
	if len(X) > 0 && len(X[0]) != dim {
		return fmt.Errorf("%w: inverse mapping needs a square geometry, physical dim is %d",
			ErrUnsupportedGeometry, len(X[0]))
	}

	e := make([]T, dim)
	for i := range xi {
		xi[i] = 0 // first trial: reference origin
	}
	for it := 0; it < invMapMaxIt; it++ {
		if err := w.Evaluate(X, xi); err != nil {
			return err
		}

		// residual: e = y - X^T N
		for i := 0; i < dim; i++ {
			e[i] = y[i]
			for k := 0; k < np; k++ {
				e[i] -= w.N[k] * X[k][i]
			}
		}

		// corrector: dxi_i = sum_j (dxi_i/dx_j) e_j. J stores dx_j/dxi_i,
		// so its inverse is read transposed here.
		var dnorm float64
		for i := 0; i < dim; i++ {
			var d T
			for j := 0; j < dim; j++ {
				d += w.Jinv[j*dim+i] * e[j]
			}
			xi[i] += d
			dnorm += float64(d) * float64(d)

			// clamp round-off outside the reference range
			if xi[i] < -1 && float64(-1-xi[i]) < invMapTol {
				xi[i] = -1
			}
			if xi[i] > 1 && float64(xi[i]-1) < invMapTol {
				xi[i] = 1
			}
		}
		if math.Sqrt(dnorm) < invMapTol {
			return nil
		}
	}
	return fmt.Errorf("inverse mapping did not converge within %d iterations", invMapMaxIt)
}
