package cover_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/snarkcover/builder"
	"github.com/katalvlaran/snarkcover/core"
	"github.com/katalvlaran/snarkcover/cover"
	"github.com/katalvlaran/snarkcover/cover/coverfakes"
	"github.com/katalvlaran/snarkcover/internal/oracle"
)

type SolveSuite struct {
	suite.Suite
	g    core.Graph
	name string
	opt  int
	set  []int
	fake *coverfakes.FakeSolver
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func (s *SolveSuite) SetupTest() {
	g, err := builder.Flower(3)
	s.Require().NoError(err)
	s.g = g
	s.name = builder.Name(builder.FamilyFlower, 3)
	s.opt, s.set = oracle.MinCover(g)
	s.fake = new(coverfakes.FakeSolver)
}

func (s *SolveSuite) values(set []int) []bool {
	vals := make([]bool, s.g.Order())
	for _, v := range set {
		vals[v] = true
	}
	return vals
}

func (s *SolveSuite) TestOptimal() {
	s.fake.SolveReturns(cover.Solution{Status: cover.Optimal, Objective: s.opt, Values: s.values(s.set)}, nil)

	res, err := cover.Solve(context.Background(), s.g, s.fake, cover.WithName(s.name))
	s.Require().NoError(err)
	s.Equal(s.opt, res.Size)
	s.Equal(s.set, res.Vertices)
	s.True(cover.IsCover(s.g, res.Vertices))

	s.Equal(1, s.fake.SolveCallCount())
	_, m := s.fake.SolveArgsForCall(0)
	s.Equal(cover.Formulate(s.name, s.g), m)
}

func (s *SolveSuite) TestNonOptimalStatuses() {
	for _, st := range []cover.Status{cover.Infeasible, cover.Unbounded, cover.Other} {
		s.fake.SolveReturns(cover.Solution{Status: st, Objective: s.opt, Values: s.values(s.set)}, nil)

		res, err := cover.Solve(context.Background(), s.g, s.fake)
		s.Require().ErrorIs(err, cover.ErrSolverInconclusive, st.String())
		s.Contains(err.Error(), st.String())
		s.Zero(res)
	}
}

func (s *SolveSuite) TestSolverError() {
	boom := errors.New("engine unreachable")
	s.fake.SolveReturns(cover.Solution{}, boom)

	_, err := cover.Solve(context.Background(), s.g, s.fake)
	s.Require().ErrorIs(err, boom)
	s.NotErrorIs(err, cover.ErrSolverInconclusive)
}

func (s *SolveSuite) TestRejectsBadAnswers() {
	bad := map[string]cover.Solution{
		"not a cover":        {Status: cover.Optimal, Objective: 1, Values: s.values([]int{0})},
		"objective mismatch": {Status: cover.Optimal, Objective: s.opt - 1, Values: s.values(s.set)},
		"short values":       {Status: cover.Optimal, Objective: s.opt, Values: []bool{true}},
	}
	for name, sol := range bad {
		s.fake.SolveReturns(sol, nil)
		res, err := cover.Solve(context.Background(), s.g, s.fake)
		s.Require().ErrorIs(err, cover.ErrSolverInconclusive, name)
		s.Zero(res, name)
	}
}

func (s *SolveSuite) TestNilSolver() {
	_, err := cover.Solve(context.Background(), s.g, nil)
	s.Require().ErrorIs(err, cover.ErrInvalidModel)
}

func (s *SolveSuite) TestTimeLimitBecomesDeadline() {
	s.fake.SolveReturns(cover.Solution{Status: cover.Other}, nil)

	_, err := cover.Solve(context.Background(), s.g, s.fake, cover.WithTimeLimit(time.Minute))
	s.Require().ErrorIs(err, cover.ErrSolverInconclusive)
	ctx, _ := s.fake.SolveArgsForCall(0)
	deadline, ok := ctx.Deadline()
	s.True(ok)
	s.WithinDuration(time.Now().Add(time.Minute), deadline, 5*time.Second)

	_, err = cover.Solve(context.Background(), s.g, s.fake, cover.WithTimeLimit(0))
	s.Require().Error(err)
	ctx, _ = s.fake.SolveArgsForCall(1)
	_, ok = ctx.Deadline()
	s.False(ok, "no deadline by default")
}

func (s *SolveSuite) TestLogsThroughGivenLogger() {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s.fake.SolveReturns(cover.Solution{Status: cover.Optimal, Objective: s.opt, Values: s.values(s.set)}, nil)

	_, err := cover.Solve(context.Background(), s.g, s.fake, cover.WithLogger(logger), cover.WithName(s.name))
	s.Require().NoError(err)
	s.Require().NotNil(hook.LastEntry())
	s.Equal("minimum cover found", hook.LastEntry().Message)
	s.Equal(s.opt, hook.LastEntry().Data["size"])
	s.Equal("vertex_cover_"+s.name, hook.LastEntry().Data["model"])
}

func TestSolverFunc(t *testing.T) {
	t.Parallel()

	called := 0
	f := cover.SolverFunc(func(_ context.Context, m cover.Model) (cover.Solution, error) {
		called++
		vals := make([]bool, m.NumVars())
		for i := range vals {
			vals[i] = true
		}
		return cover.Solution{Status: cover.Optimal, Objective: len(vals), Values: vals}, nil
	})
	g := core.MustNew(2, []core.Edge{{U: 0, V: 1}})

	res, err := cover.Solve(context.Background(), g, f)
	require.NoError(t, err)
	require.Equal(t, 1, called)
	require.Equal(t, cover.Result{Size: 2, Vertices: []int{0, 1}}, res)
}
