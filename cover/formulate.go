// SPDX-License-Identifier: MIT
// Package: snarkcover/cover
//
// formulate.go — Formulate: graph to vertex-cover program.

package cover

import (
	"fmt"

	"github.com/katalvlaran/snarkcover/core"
)

// Formulate builds the vertex-cover program of g:
// one binary x_i per vertex, x_u + x_v ≥ 1 per edge (in edge order), and
// minimize Σ x_i. The model is built fresh on every call.
// Complexity: O(V+E).
func Formulate(name string, g core.Graph) Model {
	m := Model{
		Name:        fmt.Sprintf("vertex_cover_%s", name),
		Vars:        make([]string, g.Order()),
		Constraints: make([]Constraint, 0, g.Size()),
		Objective:   Objective{Sense: Minimize, Terms: make([]Term, g.Order())},
	}
	for i := range m.Vars {
		m.Vars[i] = fmt.Sprintf("x_%d", i)
		m.Objective.Terms[i] = Term{Var: i, Coef: 1}
	}
	for i, e := range g.Edges() {
		m.Constraints = append(m.Constraints, Constraint{
			Name:  fmt.Sprintf("edge_%d", i),
			Terms: []Term{{Var: e.U, Coef: 1}, {Var: e.V, Coef: 1}},
			Cmp:   GreaterEq,
			RHS:   1,
		})
	}

	return m
}
