// Package snarkcover builds Goldberg and Flower snarks and computes their
// minimum vertex covers through an external integer programming engine.
//
// 🚀 What is in here?
//
//	• Snark constructors: Goldberg(n) with 8n vertices, Flower(n) with 4n,
//	  for every odd n ≥ 3, emitted in a fixed, reproducible edge order
//	• Vertex-cover formulation: one binary x_i per vertex, x_u + x_v ≥ 1
//	  per edge, minimize Σ x_i
//	• An engine adapter on the gini SAT solver that proves optimality
//	• Structural checks (cubic, connected, bridgeless, girth) and exports
//	  (edge list, graph6, DIMACS, YAML)
//
// Under the hood, everything is organized in subpackages:
//
//	core/      — immutable index-addressed Graph and Edge values
//	builder/   — Goldberg and Flower constructors, Family, role offsets
//	bfs/       — breadth-first search over core.Graph
//	analysis/  — degree profile, components, bridges, girth, diameter
//	export/    — text encodings of a graph
//	cover/     — Model, Formulate, Solver, Solve, LP relaxation bound
//	ginisat/   — cover.Solver backed by github.com/go-air/gini
//	cmd/snarkcover — the command line front end
//
// Quick example (Flower snark J3, drawn by role):
//
//	root_i ── A_i, B_i, C_i        A_0 ─ A_1 ─ A_2 ─ A_0
//	B_0 ─ B_1 ─ B_2 ─ C_0 ─ C_1 ─ C_2 ─ B_0
//
//	go install github.com/katalvlaran/snarkcover/cmd/snarkcover@latest
package snarkcover
