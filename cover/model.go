// SPDX-License-Identifier: MIT
// Package: snarkcover/cover
//
// model.go — binary integer program types: terms, constraints, objective, Model.

package cover

import (
	"fmt"
	"strings"
)

// Term is coef·x[Var].
type Term struct {
	Var  int
	Coef int
}

// Comparison is the relation between a constraint's left side and its RHS.
type Comparison int

const (
	GreaterEq Comparison = iota // Σ terms ≥ RHS
	LessEq                      // Σ terms ≤ RHS
	Equal                       // Σ terms = RHS
)

// String returns the operator symbol.
func (c Comparison) String() string {
	switch c {
	case GreaterEq:
		return ">="
	case LessEq:
		return "<="
	case Equal:
		return "="
	default:
		return "?"
	}
}

// Constraint is a linear inequality over binary variables.
type Constraint struct {
	Name  string
	Terms []Term
	Cmp   Comparison
	RHS   int
}

// Sense is the optimization direction.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// String returns "min" or "max".
func (s Sense) String() string {
	if s == Maximize {
		return "max"
	}

	return "min"
}

// Objective is a linear function to optimize.
type Objective struct {
	Sense Sense
	Terms []Term
}

// Model is a binary integer program: every variable ranges over {0,1}.
type Model struct {
	Name        string
	Vars        []string // variable names; index = variable id
	Constraints []Constraint
	Objective   Objective
}

// NumVars returns the number of binary variables.
func (m Model) NumVars() int {
	return len(m.Vars)
}

// Validate checks that every term references an existing variable and that
// no constraint is empty.
// Complexity: O(total terms).
func (m Model) Validate() error {
	check := func(where string, ts []Term) error {
		for _, t := range ts {
			if t.Var < 0 || t.Var >= len(m.Vars) {
				return fmt.Errorf("Validate: %s references x[%d] of %d: %w", where, t.Var, len(m.Vars), ErrInvalidModel)
			}
		}
		return nil
	}
	for i, c := range m.Constraints {
		if len(c.Terms) == 0 {
			return fmt.Errorf("Validate: constraint #%d %q is empty: %w", i, c.Name, ErrInvalidModel)
		}
		if err := check(fmt.Sprintf("constraint #%d %q", i, c.Name), c.Terms); err != nil {
			return err
		}
	}

	return check("objective", m.Objective.Terms)
}

// Evaluate returns Σ coef·x over ts under the 0/1 assignment values.
func Evaluate(ts []Term, values []bool) int {
	sum := 0
	for _, t := range ts {
		if t.Var >= 0 && t.Var < len(values) && values[t.Var] {
			sum += t.Coef
		}
	}

	return sum
}

// Satisfied reports whether values satisfies c.
func (c Constraint) Satisfied(values []bool) bool {
	lhs := Evaluate(c.Terms, values)
	switch c.Cmp {
	case GreaterEq:
		return lhs >= c.RHS
	case LessEq:
		return lhs <= c.RHS
	case Equal:
		return lhs == c.RHS
	default:
		return false
	}
}

// String renders c as "name: x_0 + x_3 >= 1".
func (c Constraint) String() string {
	return fmt.Sprintf("%s: %s %s %d", c.Name, termsString(c.Terms), c.Cmp, c.RHS)
}

func termsString(ts []Term) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		if t.Coef == 1 {
			parts[i] = fmt.Sprintf("x_%d", t.Var)
		} else {
			parts[i] = fmt.Sprintf("%d*x_%d", t.Coef, t.Var)
		}
	}

	return strings.Join(parts, " + ")
}
