package cover_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snarkcover/builder"
	"github.com/katalvlaran/snarkcover/core"
	"github.com/katalvlaran/snarkcover/cover"
)

func triangle() core.Graph {
	return core.MustNew(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})
}

func TestFormulateTriangle(t *testing.T) {
	t.Parallel()

	m := cover.Formulate("triangle", triangle())
	require.Equal(t, "vertex_cover_triangle", m.Name)
	require.Equal(t, []string{"x_0", "x_1", "x_2"}, m.Vars)
	require.Equal(t, cover.Minimize, m.Objective.Sense)
	require.Equal(t, []cover.Term{{Var: 0, Coef: 1}, {Var: 1, Coef: 1}, {Var: 2, Coef: 1}}, m.Objective.Terms)

	got := make([]string, len(m.Constraints))
	for i, c := range m.Constraints {
		got[i] = c.String()
	}
	want := []string{
		"edge_0: x_0 + x_1 >= 1",
		"edge_1: x_1 + x_2 >= 1",
		"edge_2: x_2 + x_0 >= 1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("constraints mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, m.Validate())
}

func TestFormulateFollowsEdgeOrder(t *testing.T) {
	t.Parallel()

	for _, fam := range builder.Families {
		g, err := builder.Build(fam, 3)
		require.NoError(t, err)

		m := cover.Formulate(builder.Name(fam, 3), g)
		require.Equal(t, g.Order(), m.NumVars())
		require.Len(t, m.Constraints, g.Size())
		for i, e := range g.Edges() {
			c := m.Constraints[i]
			require.Equal(t, cover.GreaterEq, c.Cmp)
			require.Equal(t, 1, c.RHS)
			require.Equal(t, []cover.Term{{Var: e.U, Coef: 1}, {Var: e.V, Coef: 1}}, c.Terms)
		}
		require.NoError(t, m.Validate())
	}
}

func TestFormulateIsFresh(t *testing.T) {
	t.Parallel()

	g := triangle()
	a := cover.Formulate("t", g)
	a.Constraints[0].Terms[0].Var = 2
	b := cover.Formulate("t", g)
	require.Equal(t, 0, b.Constraints[0].Terms[0].Var)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	m := cover.Formulate("t", triangle())
	m.Constraints = append(m.Constraints, cover.Constraint{Name: "bad", Terms: []cover.Term{{Var: 3, Coef: 1}}, RHS: 1})
	require.ErrorIs(t, m.Validate(), cover.ErrInvalidModel)

	m = cover.Formulate("t", triangle())
	m.Constraints[1].Terms = nil
	require.ErrorIs(t, m.Validate(), cover.ErrInvalidModel)

	m = cover.Formulate("t", triangle())
	m.Objective.Terms = append(m.Objective.Terms, cover.Term{Var: -1, Coef: 1})
	require.ErrorIs(t, m.Validate(), cover.ErrInvalidModel)
}

func TestConstraintSatisfied(t *testing.T) {
	t.Parallel()

	terms := []cover.Term{{Var: 0, Coef: 1}, {Var: 1, Coef: 2}}
	vals := []bool{true, true}
	require.Equal(t, 3, cover.Evaluate(terms, vals))
	require.True(t, cover.Constraint{Terms: terms, Cmp: cover.GreaterEq, RHS: 3}.Satisfied(vals))
	require.False(t, cover.Constraint{Terms: terms, Cmp: cover.LessEq, RHS: 2}.Satisfied(vals))
	require.True(t, cover.Constraint{Terms: terms, Cmp: cover.Equal, RHS: 3}.Satisfied(vals))
	require.Equal(t, "c: x_0 + 2*x_1 <= 2", cover.Constraint{Name: "c", Terms: terms, Cmp: cover.LessEq, RHS: 2}.String())
}

func TestIsCover(t *testing.T) {
	t.Parallel()

	g := triangle()
	require.True(t, cover.IsCover(g, []int{0, 1}))
	require.True(t, cover.IsCover(g, []int{0, 1, 2}))
	require.False(t, cover.IsCover(g, []int{0}))
	require.Equal(t, []core.Edge{{U: 1, V: 2}}, cover.Uncovered(g, []int{0, 9, -1}))
	require.True(t, cover.IsCover(core.MustNew(2, nil), nil))
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "optimal", cover.Optimal.String())
	require.Equal(t, "infeasible", cover.Infeasible.String())
	require.Equal(t, "unbounded", cover.Unbounded.String())
	require.Equal(t, "other", cover.Other.String())
	require.Equal(t, "other", cover.Status(99).String())
}

func TestRelaxation(t *testing.T) {
	t.Parallel()

	for _, fam := range builder.Families {
		for _, n := range []int{3, 5} {
			g, err := builder.Build(fam, n)
			require.NoError(t, err)
			bound, err := cover.Relaxation(g)
			require.NoError(t, err)
			require.InDeltaf(t, float64(g.Order())/2, bound, 1e-6, "%s", builder.Name(fam, n))
		}
	}

	bound, err := cover.Relaxation(triangle())
	require.NoError(t, err)
	require.InDelta(t, 1.5, bound, 1e-6)

	path := core.MustNew(3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	bound, err = cover.Relaxation(path)
	require.NoError(t, err)
	require.InDelta(t, 1.0, bound, 1e-6)

	bound, err = cover.Relaxation(core.MustNew(5, nil))
	require.NoError(t, err)
	require.Zero(t, bound)
}
