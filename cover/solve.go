// SPDX-License-Identifier: MIT
// Package: snarkcover/cover
//
// solve.go — Solve: formulate, delegate once, verify, report.

package cover

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/snarkcover/core"
)

const methodSolve = "Solve"

// defaultModelName names the program when WithName is not given.
const defaultModelName = "graph"

// Result is a verified minimum vertex cover.
type Result struct {
	Size     int   // number of selected vertices; equals the engine's optimum
	Vertices []int // selected vertex ids, ascending
}

// Options configures Solve.
type Options struct {
	Logger    logrus.FieldLogger
	TimeLimit time.Duration // 0 means no limit
	Name      string
}

// Option mutates Options.
type Option func(*Options)

// WithLogger routes Solve's diagnostics to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTimeLimit bounds the engine call by d. Non-positive d means no limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.TimeLimit = d
		}
	}
}

// WithName sets the instance name used for the model ("Goldberg_3", ...).
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

// DefaultOptions returns the zero-limit, silent configuration.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l, Name: defaultModelName}
}

// Solve computes a minimum vertex cover of g by delegating the program
// built by Formulate to s exactly once.
//
// Contract:
//   - s must be non-nil, else ErrInvalidModel.
//   - an engine error is wrapped and returned.
//   - any status other than Optimal yields ErrSolverInconclusive.
//   - an Optimal answer whose vertex set is not a cover of g, or whose size
//     differs from the reported objective, yields ErrSolverInconclusive.
//
// No partial Result accompanies an error.
func Solve(ctx context.Context, g core.Graph, s Solver, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if s == nil {
		return Result{}, fmt.Errorf("%s: nil solver: %w", methodSolve, ErrInvalidModel)
	}

	m := Formulate(o.Name, g)
	if err := m.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %s: %w", methodSolve, m.Name, err)
	}
	log := o.Logger.WithFields(logrus.Fields{
		"model":       m.Name,
		"variables":   m.NumVars(),
		"constraints": len(m.Constraints),
	})

	if o.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.TimeLimit)
		defer cancel()
	}

	log.Debug("delegating model to solver")
	start := time.Now()
	sol, err := s.Solve(ctx, m)
	log = log.WithField("elapsed", time.Since(start))
	if err != nil {
		log.WithError(err).Debug("solver failed")
		return Result{}, fmt.Errorf("%s: %s: %w", methodSolve, m.Name, err)
	}
	log = log.WithField("status", sol.Status)
	if sol.Status != Optimal {
		log.Debug("solver did not prove optimality")
		return Result{}, fmt.Errorf("%s: %s: status %s: %w", methodSolve, m.Name, sol.Status, ErrSolverInconclusive)
	}

	res, err := resultOf(g, sol)
	if err != nil {
		log.WithError(err).Warn("solver answer rejected")
		return Result{}, fmt.Errorf("%s: %s: %w", methodSolve, m.Name, err)
	}
	log.WithField("size", res.Size).Debug("minimum cover found")

	return res, nil
}

// resultOf reads the selected vertices out of sol and checks them against g.
func resultOf(g core.Graph, sol Solution) (Result, error) {
	if len(sol.Values) != g.Order() {
		return Result{}, fmt.Errorf("%d values for %d variables: %w", len(sol.Values), g.Order(), ErrSolverInconclusive)
	}

	vertices := make([]int, 0, g.Order())
	for v, on := range sol.Values {
		if on {
			vertices = append(vertices, v)
		}
	}
	if missed := Uncovered(g, vertices); len(missed) > 0 {
		return Result{}, fmt.Errorf("edge %s left uncovered: %w", missed[0], ErrSolverInconclusive)
	}
	if len(vertices) != sol.Objective {
		return Result{}, fmt.Errorf("%d vertices selected, objective %d: %w", len(vertices), sol.Objective, ErrSolverInconclusive)
	}

	return Result{Size: len(vertices), Vertices: vertices}, nil
}
