// SPDX-License-Identifier: MIT
// Package: snarkcover/ginisat
//
// solver.go — the gini-backed cover.Solver and its optimization loop.

package ginisat

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/snarkcover/cover"
)

const methodSolve = "ginisat.Solve"

// gini verdicts.
const (
	satisfiable   = 1
	unsatisfiable = -1
)

// DefaultPollInterval is how often a cancellable solve checks for a result.
const DefaultPollInterval = 5 * time.Millisecond

// Option configures the solver returned by New.
type Option func(*Solver)

// WithLogger routes search progress to l at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Solver) {
		if l != nil {
			s.log = l
		}
	}
}

// WithPollInterval sets how often a solve running under a cancellable
// context is checked for completion. Non-positive d is ignored.
func WithPollInterval(d time.Duration) Option {
	return func(s *Solver) {
		if d > 0 {
			s.poll = d
		}
	}
}

// Solver implements cover.Solver with gini. It holds no per-call state and
// may be shared.
type Solver struct {
	log  logrus.FieldLogger
	poll time.Duration
}

var _ cover.Solver = (*Solver)(nil)

// New returns a gini-backed solver.
func New(opts ...Option) *Solver {
	l := logrus.New()
	l.SetOutput(io.Discard)
	s := &Solver{log: l, poll: DefaultPollInterval}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve minimizes m's objective.
//
// Contract:
//   - Optimal: Values is a model of every constraint and no model has a
//     smaller objective.
//   - Infeasible: the constraints alone are unsatisfiable.
//   - Other: ctx ended first; Values holds the best model found, if any.
//
// A malformed model yields cover.ErrInvalidModel; one that cannot be
// encoded yields cover.ErrUnsupportedModel.
func (s *Solver) Solve(ctx context.Context, m cover.Model) (cover.Solution, error) {
	if err := m.Validate(); err != nil {
		return cover.Solution{}, fmt.Errorf("%s: %w", methodSolve, err)
	}
	enc, err := encode(m)
	if err != nil {
		return cover.Solution{}, fmt.Errorf("%s: %s: %w", methodSolve, m.Name, err)
	}
	log := s.log.WithField("model", m.Name)

	g := gini.New()
	enc.c.ToCnf(g)
	for _, a := range enc.asserts {
		g.Add(a)
		g.Add(z.LitNull)
	}

	switch s.run(ctx, g) {
	case satisfiable:
	case unsatisfiable:
		log.Debug("constraints unsatisfiable")
		return cover.Solution{Status: cover.Infeasible}, nil
	default:
		log.Debug("interrupted before a first model")
		return cover.Solution{Status: cover.Other}, nil
	}

	best := enc.values(g)
	obj := cover.Evaluate(m.Objective.Terms, best)
	log.WithField("objective", obj).Debug("first model")

search:
	for obj > 0 {
		g.Assume(enc.obj.Leq(obj - 1))
		switch s.run(ctx, g) {
		case satisfiable:
			best = enc.values(g)
			obj = cover.Evaluate(m.Objective.Terms, best)
			log.WithField("objective", obj).Debug("improved model")
		case unsatisfiable:
			break search
		default:
			log.WithField("objective", obj).Debug("interrupted before optimality was proven")
			return cover.Solution{Status: cover.Other, Objective: obj, Values: best}, nil
		}
	}
	log.WithField("objective", obj).Debug("optimal")

	return cover.Solution{Status: cover.Optimal, Objective: obj, Values: best}, nil
}

// run solves g under its pending assumptions. Without a cancellable ctx it
// blocks in gini; otherwise it polls a background solve and stops it when
// ctx ends, returning 0.
func (s *Solver) run(ctx context.Context, g *gini.Gini) int {
	if ctx.Done() == nil {
		return g.Solve()
	}
	if ctx.Err() != nil {
		return 0
	}

	return waitForSolution(ctx, g.GoSolve(), s.poll)
}

func waitForSolution(ctx context.Context, gs inter.Solve, poll time.Duration) int {
	t := time.NewTicker(poll)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return gs.Stop()
		case <-t.C:
			if result, ok := gs.Test(); ok {
				return result
			}
		}
	}
}

// values reads the current model of every variable input.
func (enc *encoding) values(g *gini.Gini) []bool {
	vals := make([]bool, len(enc.vars))
	for i, m := range enc.vars {
		vals[i] = g.Value(m)
	}

	return vals
}
