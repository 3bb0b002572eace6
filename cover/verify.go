// SPDX-License-Identifier: MIT
// Package: snarkcover/cover
//
// verify.go — independent checks of a proposed vertex set.

package cover

import "github.com/katalvlaran/snarkcover/core"

// Uncovered returns, in edge order, every edge of g with neither endpoint in
// vertices. Vertices outside [0, g.Order()) are ignored.
// Complexity: O(V+E).
func Uncovered(g core.Graph, vertices []int) []core.Edge {
	in := make([]bool, g.Order())
	for _, v := range vertices {
		if g.HasVertex(v) {
			in[v] = true
		}
	}

	var out []core.Edge
	for _, e := range g.Edges() {
		if !in[e.U] && !in[e.V] {
			out = append(out, e)
		}
	}

	return out
}

// IsCover reports whether every edge of g has an endpoint in vertices.
func IsCover(g core.Graph, vertices []int) bool {
	return len(Uncovered(g, vertices)) == 0
}
