// Package ginisat is a cover.Solver backed by the gini SAT solver
// (github.com/go-air/gini).
//
// Every binary variable of the model becomes an input of a gini logic
// circuit. Constraints with unit coefficients are encoded as clauses
// (Σ x ≥ 1) or as sorting-network cardinality literals (Σ x ≥ k, Σ x ≤ k,
// Σ x = k) and asserted permanently. The minimization objective becomes one
// more sorting network over the objective literals.
//
// The search loop finds any satisfying assignment, then repeatedly assumes
// "objective ≤ best−1" until gini reports unsatisfiable, which proves the
// last assignment optimal. A context deadline or cancellation interrupts
// gini and yields Status Other.
//
// Models using non-unit coefficients or maximization are rejected with
// cover.ErrUnsupportedModel.
package ginisat
