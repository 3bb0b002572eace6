// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Graph, sentinel errors and the validating constructor New.
// Determinism:
//   - Edge order is insertion order; nothing is sorted behind the caller's back.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNegativeOrder indicates a graph was requested with fewer than zero vertices.
	ErrNegativeOrder = errors.New("core: negative order")

	// ErrVertexOutOfRange indicates a vertex index outside [0, Order).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Edge is an unordered pair of vertex indices.
// {U:1, V:4} and {U:4, V:1} denote the same connection; Canonical
// normalizes the representation when comparisons are needed.
type Edge struct {
	U int
	V int
}

// Canonical returns the edge with U <= V.
func (e Edge) Canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// Has reports whether v is one of the endpoints of e.
func (e Edge) Has(v int) bool {
	return e.U == v || e.V == v
}

// Other returns the endpoint opposite to v, and false if v is not an endpoint.
func (e Edge) Other(v int) (int, bool) {
	switch v {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	default:
		return 0, false
	}
}

// String renders the edge as the tuple "(U, V)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.U, e.V)
}

// Graph is an immutable undirected graph over the vertices 0..Order()-1.
// The zero value is the empty graph.
type Graph struct {
	order int
	edges []Edge
}

// New validates and copies edges into a fresh Graph of the given order.
//
// Steps:
//  1. Reject order < 0 (ErrNegativeOrder).
//  2. For each edge in input order, reject out-of-range endpoints
//     (ErrVertexOutOfRange) and self-loops (ErrSelfLoop).
//  3. Copy the slice so later caller mutations cannot leak in.
//
// Complexity: O(E) time, O(E) space.
func New(order int, edges []Edge) (Graph, error) {
	if order < 0 {
		return Graph{}, fmt.Errorf("New: order=%d: %w", order, ErrNegativeOrder)
	}

	var (
		i int
		e Edge
	)
	for i, e = range edges {
		if e.U < 0 || e.U >= order || e.V < 0 || e.V >= order {
			return Graph{}, fmt.Errorf("New: edge #%d %s with order=%d: %w", i, e, order, ErrVertexOutOfRange)
		}
		if e.U == e.V {
			return Graph{}, fmt.Errorf("New: edge #%d %s: %w", i, e, ErrSelfLoop)
		}
	}

	cp := make([]Edge, len(edges))
	copy(cp, edges)

	return Graph{order: order, edges: cp}, nil
}

// MustNew is New for fixtures whose validity is known at compile time.
// It panics on error and is meant for tests and package-level tables only.
func MustNew(order int, edges []Edge) Graph {
	g, err := New(order, edges)
	if err != nil {
		panic(err)
	}

	return g
}
