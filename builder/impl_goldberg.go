// SPDX-License-Identifier: MIT
// Package: snarkcover/builder
//
// impl_goldberg.go — implementation of the Goldberg(n) constructor.
//
// Canonical model:
//   • n components, each with eight roles s,t,z,v,w,x,y,u at offsets 0..7·n.
//   • Component i is wired to next = (i+1) mod n through the s/t chain, the
//     x/y chain and the u ring; the remaining edges form the internal claw.
//
// Contract:
//   • n odd and n ≥ MinParameter, else ErrInvalidParameter.
//   • Order = 8n, Size = 12n.
//   • Per component, edges are emitted in exactly this order:
//       (s_i,t_i) (t_i,s_next) (z_i,v_i) (w_i,v_i) (x_i,y_i) (y_i,x_next)
//       (u_i,u_next) (t_i,z_i) (s_i,w_i) (z_i,x_i) (w_i,y_i) (v_i,u_i)
//
// Complexity:
//   • Time O(n), Space O(n) for the edge slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/snarkcover/core"
)

// Goldberg returns the Goldberg snark with parameter n.
//
// Every successor reference uses modular arithmetic, so the final component
// needs no special case: component n−1 closes the chains onto component 0.
func Goldberg(n int) (core.Graph, error) {
	if err := validateParameter(MethodGoldberg, n); err != nil {
		return core.Graph{}, err
	}

	var (
		s = offset(roleS, n)
		t = offset(roleT, n)
		z = offset(roleZ, n)
		v = offset(roleV, n)
		w = offset(roleW, n)
		x = offset(roleX, n)
		y = offset(roleY, n)
		u = offset(roleU, n)
	)

	edges := make([]core.Edge, 0, goldbergEdgesPerComponent*n)
	var i, next int
	for i = 0; i < n; i++ {
		next = (i + 1) % n

		// s/t chain
		edges = append(edges,
			core.Edge{U: s + i, V: t + i},
			core.Edge{U: t + i, V: s + next},
		)
		// z and w meet at v
		edges = append(edges,
			core.Edge{U: z + i, V: v + i},
			core.Edge{U: w + i, V: v + i},
		)
		// x/y chain
		edges = append(edges,
			core.Edge{U: x + i, V: y + i},
			core.Edge{U: y + i, V: x + next},
		)
		// u ring
		edges = append(edges, core.Edge{U: u + i, V: u + next})
		// spokes
		edges = append(edges,
			core.Edge{U: t + i, V: z + i},
			core.Edge{U: s + i, V: w + i},
			core.Edge{U: z + i, V: x + i},
			core.Edge{U: w + i, V: y + i},
			core.Edge{U: v + i, V: u + i},
		)
	}

	g, err := core.New(goldbergRoleCount*n, edges)
	if err != nil {
		return core.Graph{}, fmt.Errorf("%s: %w", MethodGoldberg, err)
	}

	return g, nil
}
