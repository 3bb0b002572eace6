// SPDX-License-Identifier: MIT
// Package core defines the immutable, index-addressed graph value shared by
// every other package of snarkcover.
//
// A vertex is nothing more than its position: the integers 0..Order()-1.
// An Edge is an unordered pair {U,V}; the Graph keeps edges in the exact
// order they were supplied, because printed edge lists must be reproducible.
//
//	g, err := core.New(4, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})
//	g.Order()      // 4
//	g.Size()       // 3
//	g.Degree(1)    // 2
//	g.Neighbors(2) // [1 3]
//
// Guarantees:
//
//   - Immutability: New copies its input and every accessor returns copies,
//     so a Graph can be shared freely between goroutines without locks.
//   - Validation: New rejects negative orders, endpoints outside [0,Order)
//     and self-loops. Parallel edges are accepted and preserved; detecting
//     them is the job of package analysis.
//   - Determinism: Edges(), Neighbors() and Adjacency() follow insertion order.
//
// Errors:
//
//	ErrNegativeOrder     - order < 0.
//	ErrVertexOutOfRange  - an endpoint or a queried vertex is outside [0,Order).
//	ErrSelfLoop          - an edge with U == V.
package core
