// SPDX-License-Identifier: MIT
// Package: snarkcover/ginisat
//
// encode.go — translation of a cover.Model into a gini logic circuit.

package ginisat

import (
	"fmt"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/snarkcover/cover"
)

// encoding is a model compiled into a circuit. vars[i] is the input for
// model variable i; asserts hold one literal per constraint that must be
// true; obj counts the true objective literals.
type encoding struct {
	c       *logic.C
	vars    []z.Lit
	asserts []z.Lit
	obj     *logic.CardSort
}

// encode compiles m. It fails with cover.ErrUnsupportedModel on any
// coefficient other than 1, an unknown comparison or a maximization.
func encode(m cover.Model) (*encoding, error) {
	if m.Objective.Sense != cover.Minimize {
		return nil, fmt.Errorf("objective sense %s: %w", m.Objective.Sense, cover.ErrUnsupportedModel)
	}

	enc := &encoding{
		c:       logic.NewCCap(2 * (m.NumVars() + len(m.Constraints))),
		vars:    make([]z.Lit, m.NumVars()),
		asserts: make([]z.Lit, 0, len(m.Constraints)),
	}
	for i := range enc.vars {
		enc.vars[i] = enc.c.Lit()
	}

	for i, con := range m.Constraints {
		lits, err := enc.unitLits(con.Terms)
		if err != nil {
			return nil, fmt.Errorf("constraint #%d %q: %w", i, con.Name, err)
		}
		a, err := enc.constraint(lits, con.Cmp, con.RHS)
		if err != nil {
			return nil, fmt.Errorf("constraint #%d %q: %w", i, con.Name, err)
		}
		enc.asserts = append(enc.asserts, a)
	}

	lits, err := enc.unitLits(m.Objective.Terms)
	if err != nil {
		return nil, fmt.Errorf("objective: %w", err)
	}
	enc.obj = enc.c.CardSort(lits)

	return enc, nil
}

// unitLits maps terms to their input literals, rejecting weighted terms.
func (enc *encoding) unitLits(ts []cover.Term) ([]z.Lit, error) {
	lits := make([]z.Lit, len(ts))
	for i, t := range ts {
		if t.Coef != 1 {
			return nil, fmt.Errorf("coefficient %d on x[%d]: %w", t.Coef, t.Var, cover.ErrUnsupportedModel)
		}
		lits[i] = enc.vars[t.Var]
	}

	return lits, nil
}

// constraint returns a literal equivalent to "count(lits) cmp rhs".
func (enc *encoding) constraint(lits []z.Lit, cmp cover.Comparison, rhs int) (z.Lit, error) {
	switch cmp {
	case cover.GreaterEq:
		switch {
		case rhs <= 0:
			return enc.c.T, nil
		case rhs == 1:
			return enc.c.Ors(lits...), nil
		default:
			return enc.c.CardSort(lits).Geq(rhs), nil
		}
	case cover.LessEq:
		return enc.c.CardSort(lits).Leq(rhs), nil
	case cover.Equal:
		cs := enc.c.CardSort(lits)
		return enc.c.And(cs.Geq(rhs), cs.Leq(rhs)), nil
	default:
		return z.LitNull, fmt.Errorf("comparison %s: %w", cmp, cover.ErrUnsupportedModel)
	}
}
