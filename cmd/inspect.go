package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/fembasis/element"
	"github.com/notargets/fembasis/element/library/lagrange"
	"github.com/notargets/fembasis/input"
)

// inspectCmd evaluates a YAML element case and prints the pipeline
// quantities per point.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Evaluate an element case file and print the geometric quantities",
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("input")
		if err := runInspect(path); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringP("input", "i", "case.yaml", "YAML element case file")
}

func runInspect(path string) error {
	ec, err := input.ReadCaseFile(path)
	if err != nil {
		return err
	}
	ec.Print()

	b, err := lagrange.New[float64](ec.Element)
	if err != nil {
		return err
	}
	w := element.NewWorkspace(b)
	dim := b.Dim()
	ndim := len(ec.Coords[0])

	var gradu []float64
	if ec.Field != nil {
		gradu = make([]float64, len(ec.Field[0])*dim)
	}

	for p, xi := range ec.Points {
		if err := w.Evaluate(ec.Coords, xi); err != nil {
			return fmt.Errorf("point %d: %w", p, err)
		}
		fmt.Printf("\npoint %d: xi = %v\n", p, xi)
		fmt.Printf("  N    = %v\n", w.N)
		fmt.Printf("  J    = %v\n",
			mat.Formatted(mat.NewDense(dim, ndim, w.J), mat.Prefix("         ")))
		fmt.Printf("  detJ = %g\n", w.DetJ)
		if dim == ndim {
			fmt.Printf("  Jinv = %v\n",
				mat.Formatted(mat.NewDense(dim, dim, w.Jinv), mat.Prefix("         ")))
			fmt.Printf("  grad = %v\n",
				mat.Formatted(mat.NewDense(dim, b.Np(), w.Grad), mat.Prefix("         ")))
		}
		if ec.Field == nil {
			continue
		}
		nc := len(ec.Field[0])
		u := make([]float64, b.Np())
		for i := 0; i < nc; i++ {
			for k := range ec.Field {
				u[k] = ec.Field[k][i]
			}
			v, err := w.Interpolate(u)
			if err != nil {
				return err
			}
			fmt.Printf("  u[%d] = %g\n", i, v)
		}
		if dim == ndim {
			if err := w.FieldGradient(gradu, ec.Field); err != nil {
				return err
			}
			fmt.Printf("  dudX = %v\n",
				mat.Formatted(mat.NewDense(nc, dim, gradu), mat.Prefix("         ")))
		}
	}
	return nil
}
