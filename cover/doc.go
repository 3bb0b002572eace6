// Package cover formulates minimum vertex cover as a binary integer program
// and drives an external optimization engine through the Solver interface.
//
// The model handed to the engine is always:
//
//	variables:   x_i ∈ {0,1}            for every vertex i
//	constraints: x_u + x_v ≥ 1           for every edge (u,v), in edge order
//	objective:   minimize Σ x_i
//
// Solve builds a fresh Model per call, invokes the engine once, and turns an
// Optimal solution into a Result (cover size + selected vertices). Any other
// status surfaces as ErrSolverInconclusive, never as a partial cover. The
// returned cover is re-checked against the graph before it is handed back.
//
// The search itself is not implemented here. Package ginisat provides an
// engine backed by the gini SAT solver; coverfakes provides a test double.
//
// Relaxation additionally computes the LP-relaxation lower bound of the same
// model with gonum's simplex, which is useful as a sanity line in reports.
package cover
