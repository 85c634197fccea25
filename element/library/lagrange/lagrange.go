// Package lagrange provides the standard Lagrange and serendipity nodal
// bases on the classical reference domains. Line and brick elements use
// the [-1,1]^d convention; triangles and tetrahedra use natural
// coordinates on the unit simplex.
//
// All types are immutable zero-size values implementing element.Basis
// and may be shared freely.
package lagrange

import (
	"fmt"
	"strings"

	"github.com/notargets/fembasis/element"
)

// New returns the basis registered under the lower-case short name, e.g.
// "quad4" or "tet4".
func New[T element.Scalar](name string) (element.Basis[T], error) {
	switch name {
	case "line2":
		return Line2[T]{}, nil
	case "line3":
		return Line3[T]{}, nil
	case "tri3":
		return Tri3[T]{}, nil
	case "tri6":
		return Tri6[T]{}, nil
	case "quad4":
		return Quad4[T]{}, nil
	case "quad8":
		return Quad8[T]{}, nil
	case "tet4":
		return Tet4[T]{}, nil
	case "hex8":
		return Hex8[T]{}, nil
	}
	return nil, fmt.Errorf("unknown basis %q (have %s)", name, strings.Join(Names(), ", "))
}

// Names lists the registered basis names, sorted.
func Names() []string {
	return []string{"hex8", "line2", "line3", "quad4", "quad8", "tet4", "tri3", "tri6"}
}

// checkShape validates the value buffer and parametric point lengths.
func checkShape(nN, np, nXi, dim int) error {
	if nN != np {
		return fmt.Errorf("%w: value buffer has %d entries, want %d",
			element.ErrDimensionMismatch, nN, np)
	}
	if nXi != dim {
		return fmt.Errorf("%w: parametric point has %d coordinates, want %d",
			element.ErrDimensionMismatch, nXi, dim)
	}
	return nil
}

// checkDeriv validates the derivative buffer and parametric point lengths.
func checkDeriv(nDN, np, dim, nXi int) error {
	if nDN != dim*np {
		return fmt.Errorf("%w: derivative buffer has %d entries, want %d",
			element.ErrDimensionMismatch, nDN, dim*np)
	}
	if nXi != dim {
		return fmt.Errorf("%w: parametric point has %d coordinates, want %d",
			element.ErrDimensionMismatch, nXi, dim)
	}
	return nil
}
