// SPDX-License-Identifier: MIT
// Package: snarkcover/cover
//
// relax.go — LP-relaxation lower bound of the vertex-cover program.

package cover

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/snarkcover/core"
)

const methodRelaxation = "Relaxation"

// simplexTol is the tolerance handed to lp.Simplex.
const simplexTol = 1e-10

// Relaxation returns the optimum of the vertex-cover program with x_i ∈ [0,1]
// relaxed to x_i ≥ 0, solved with gonum's simplex. It is a lower bound on
// every vertex cover of g; for a 3-regular graph it is exactly Order/2.
//
// The program is put in standard form with one surplus column per edge:
//
//	minimize Σ x_i  subject to  x_u + x_v − s_e = 1,  x, s ≥ 0.
//
// The upper bounds x_i ≤ 1 are dropped since no optimum exceeds them.
// Complexity: simplex over an E × (V+E) dense matrix.
func Relaxation(g core.Graph) (float64, error) {
	n, m := g.Order(), g.Size()
	if m == 0 {
		return 0, nil
	}

	cols := n + m
	c := make([]float64, cols)
	for i := 0; i < n; i++ {
		c[i] = 1
	}
	a := mat.NewDense(m, cols, nil)
	b := make([]float64, m)
	for row, e := range g.Edges() {
		a.Set(row, e.U, 1)
		a.Set(row, e.V, 1)
		a.Set(row, n+row, -1)
		b[row] = 1
	}

	opt, _, err := lp.Simplex(c, a, b, simplexTol, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %d×%d program: %w", methodRelaxation, m, cols, err)
	}

	return opt, nil
}
