// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  Depth[v] = distance from start, or Unreached
//   - Parent: Parent[v] = predecessor in the BFS tree, or NoParent
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Stops with ctx.Err() once the WithContext context is done.
//
// Determinism
//
//	Neighbors are expanded in edge order (core.Graph.Adjacency), so the
//	visit sequence of a given graph is fully reproducible.
//
// Complexity (V = Order, E = Size)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the adjacency view plus O(V) for the result.
package bfs
