// SPDX-License-Identifier: MIT
// Package: snarkcover/cover
//
// solver.go — the engine collaborator: Status, Solution and Solver.

package cover

import "context"

// Status is the engine's verdict on a model.
type Status int

const (
	// Optimal: Values is an assignment proven to optimize the objective.
	Optimal Status = iota
	// Infeasible: no assignment satisfies every constraint.
	Infeasible
	// Unbounded: the objective has no finite optimum.
	Unbounded
	// Other: anything else (deadline hit, limit reached, engine gave up).
	Other
)

var statusNames = [...]string{
	Optimal:    "optimal",
	Infeasible: "infeasible",
	Unbounded:  "unbounded",
	Other:      "other",
}

// String returns the lower-case status name.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "other"
	}

	return statusNames[s]
}

// Solution is what an engine hands back for a Model.
// Values is indexed by variable id and is meaningful only when Status is
// Optimal (engines may fill it with their best incumbent otherwise).
type Solution struct {
	Status    Status
	Objective int
	Values    []bool
}

// Solver is an external optimization engine for binary integer programs.
// Solve must not retain m after returning and should honour ctx
// cancellation by returning a Solution with Status Other.
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o coverfakes/fake_solver.go . Solver
type Solver interface {
	Solve(ctx context.Context, m Model) (Solution, error)
}

// SolverFunc adapts a plain function to Solver.
type SolverFunc func(ctx context.Context, m Model) (Solution, error)

// Solve calls f(ctx, m).
func (f SolverFunc) Solve(ctx context.Context, m Model) (Solution, error) {
	return f(ctx, m)
}
