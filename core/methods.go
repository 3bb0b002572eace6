// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: read-only queries over Graph: counts, edges, degrees, neighbors.
// Complexity notes:
//   - Per-vertex queries scan the edge list (O(E)); callers that need many of
//     them should take Adjacency() once.

package core

import "fmt"

// Order returns the number of vertices.
// Complexity: O(1).
func (g Graph) Order() int {
	return g.order
}

// Size returns the number of edges, parallel edges included.
// Complexity: O(1).
func (g Graph) Size() int {
	return len(g.edges)
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Edge returns the i-th edge in insertion order.
// It panics if i is out of range, like slice indexing.
func (g Graph) Edge(i int) Edge {
	return g.edges[i]
}

// HasVertex reports whether v is a valid vertex index.
func (g Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.order
}

// HasEdge reports whether at least one edge joins u and v (in either orientation).
// Complexity: O(E).
func (g Graph) HasEdge(u, v int) bool {
	for _, e := range g.edges {
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			return true
		}
	}

	return false
}

// Degrees returns deg(v) for every vertex; parallel edges count once each.
// Complexity: O(V+E).
func (g Graph) Degrees() []int {
	deg := make([]int, g.order)
	for _, e := range g.edges {
		deg[e.U]++
		deg[e.V]++
	}

	return deg
}

// Degree returns the number of edge ends at v.
// Complexity: O(E).
func (g Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexOutOfRange)
	}
	d := 0
	for _, e := range g.edges {
		if e.U == v {
			d++
		}
		if e.V == v {
			d++
		}
	}

	return d, nil
}

// Neighbors returns the vertices adjacent to v, in edge order.
// A neighbor joined by k parallel edges appears k times.
// Complexity: O(E).
func (g Graph) Neighbors(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexOutOfRange)
	}
	var out []int
	for _, e := range g.edges {
		if w, ok := e.Other(v); ok {
			out = append(out, w)
		}
	}

	return out, nil
}

// Adjacency returns adj[v] = neighbors of v for every vertex in one pass.
// Complexity: O(V+E).
func (g Graph) Adjacency() [][]int {
	adj := make([][]int, g.order)
	for _, e := range g.edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	return adj
}

// Equal reports whether g and h have the same order and the same edge
// sequence, endpoint orientation included.
// Complexity: O(E).
func (g Graph) Equal(h Graph) bool {
	if g.order != h.order || len(g.edges) != len(h.edges) {
		return false
	}
	for i := range g.edges {
		if g.edges[i] != h.edges[i] {
			return false
		}
	}

	return true
}
