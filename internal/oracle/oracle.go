// SPDX-License-Identifier: MIT
// Package: snarkcover/internal/oracle
//
// oracle.go — exhaustive minimum vertex cover, used as a reference by tests.

// Package oracle computes minimum vertex covers by exhaustive branching.
// It is exponential and exists only so tests can check engine answers on
// small instances (tens of vertices).
package oracle

import "github.com/katalvlaran/snarkcover/core"

// MinCover returns the size of a minimum vertex cover of g and one cover of
// that size (ascending). Every cover must contain u or v for the first
// uncovered edge (u,v); the search branches on that choice and prunes any
// branch that cannot beat the incumbent.
// Complexity: O(2^k · E) with k the cover size.
func MinCover(g core.Graph) (int, []int) {
	edges := g.Edges()
	in := make([]bool, g.Order())
	best := g.Order() + 1
	var bestSet []bool

	var walk func(size int)
	walk = func(size int) {
		if size >= best {
			return
		}
		for _, e := range edges {
			if in[e.U] || in[e.V] {
				continue
			}
			for _, v := range [2]int{e.U, e.V} {
				in[v] = true
				walk(size + 1)
				in[v] = false
			}
			return
		}
		best = size
		bestSet = append(bestSet[:0], in...)
	}
	walk(0)

	cover := make([]int, 0, best)
	for v, on := range bestSet {
		if on {
			cover = append(cover, v)
		}
	}

	return best, cover
}
