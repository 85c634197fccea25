package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/fembasis/element"
	"github.com/notargets/fembasis/element/library/lagrange"
	"github.com/notargets/fembasis/quadrature"
)

// benchCmd times the workspace pipeline over an element's quadrature
// points, optionally with CPU profiling.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the workspace evaluation pipeline over quadrature points",
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("element")
		count, _ := cmd.Flags().GetInt("count")
		prof, _ := cmd.Flags().GetBool("profile")
		if prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		if err := runBench(name, count); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringP("element", "e", "quad4", "basis name to benchmark")
	benchCmd.Flags().IntP("count", "n", 100000, "number of passes over the quadrature points")
	benchCmd.Flags().Bool("profile", false, "write a CPU profile to the working directory")
}

func runBench(name string, count int) error {
	b, err := lagrange.New[float64](name)
	if err != nil {
		return err
	}
	rule, err := quadrature.ForGeometry(b.GeometryType(), benchRulePoints(b.GeometryType()))
	if err != nil {
		return err
	}

	// identity element: nodal reference coordinates as physical coordinates
	r, s, t := b.RST()
	X := make([][]float64, b.Np())
	for k := range X {
		switch b.Dim() {
		case 1:
			X[k] = []float64{float64(r[k])}
		case 2:
			X[k] = []float64{float64(r[k]), float64(s[k])}
		default:
			X[k] = []float64{float64(r[k]), float64(s[k]), float64(t[k])}
		}
	}

	w := element.NewWorkspace(b)
	start := time.Now()
	var measure float64
	for i := 0; i < count; i++ {
		for q, xi := range rule.Points {
			if err := w.Evaluate(X, xi); err != nil {
				return err
			}
			measure += w.DetJ * rule.Weights[q]
		}
	}
	elapsed := time.Since(start)

	n := count * len(rule.Points)
	fmt.Printf("%s: %d evaluations in %v (%.1f ns/eval), element measure %.6f\n",
		name, n, elapsed, float64(elapsed.Nanoseconds())/float64(n),
		measure/float64(count))
	return nil
}

func benchRulePoints(g element.GeometryType) int {
	switch g {
	case element.Tri:
		return 3
	case element.Tet:
		return 4
	default:
		return 2
	}
}
