// SPDX-License-Identifier: MIT
// Package: snarkcover/builder
//
// impl_flower.go — implementation of the Flower(n) constructor.
//
// Canonical model:
//   • n components, each a claw: root_i joined to A_i, B_i, C_i
//     (offsets 0, n, 2n, 3n).
//   • The A spokes form an n-cycle.
//   • The B and C spokes form a single 2n-cycle: straight B_i–B_{i+1},
//     C_i–C_{i+1} links, closed by the crossed pair B_{n−1}–C_0, C_{n−1}–B_0.
//     Without the crossing, B and C would close into two separate n-cycles.
//
// Contract:
//   • n odd and n ≥ MinParameter, else ErrInvalidParameter.
//   • Order = 4n, Size = 6n.
//   • Per component i, edges are emitted in exactly this order:
//       (root_i,A_i) (root_i,B_i) (root_i,C_i) (A_i,A_next)
//       then (B_i,B_{i+1}) (C_i,C_{i+1})            for i < n−1
//       or   (B_{n−1},C_0) (C_{n−1},B_0)            for i = n−1
//
// Complexity:
//   • Time O(n), Space O(n) for the edge slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/snarkcover/core"
)

// Flower returns the Flower snark J_n.
func Flower(n int) (core.Graph, error) {
	if err := validateParameter(MethodFlower, n); err != nil {
		return core.Graph{}, err
	}

	var (
		root = offset(roleRoot, n)
		a    = offset(roleA, n)
		b    = offset(roleB, n)
		c    = offset(roleC, n)
		last = n - 1
	)

	edges := make([]core.Edge, 0, flowerEdgesPerComponent*n)
	var i int
	for i = 0; i < n; i++ {
		// claw
		edges = append(edges,
			core.Edge{U: root + i, V: a + i},
			core.Edge{U: root + i, V: b + i},
			core.Edge{U: root + i, V: c + i},
		)
		// A ring, closed modularly on every iteration
		edges = append(edges, core.Edge{U: a + i, V: a + (i+1)%n})

		if i == last {
			// crossed closure of the B/C cycle
			edges = append(edges,
				core.Edge{U: b + last, V: c},
				core.Edge{U: c + last, V: b},
			)
			break
		}

		edges = append(edges,
			core.Edge{U: b + i, V: b + i + 1},
			core.Edge{U: c + i, V: c + i + 1},
		)
	}

	g, err := core.New(flowerRoleCount*n, edges)
	if err != nil {
		return core.Graph{}, fmt.Errorf("%s: %w", MethodFlower, err)
	}

	return g, nil
}
