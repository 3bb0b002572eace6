package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snarkcover/builder"
	"github.com/katalvlaran/snarkcover/cover"
	"github.com/katalvlaran/snarkcover/export"
	"github.com/katalvlaran/snarkcover/internal/oracle"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	logger, _ := logtest.NewNullLogger()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, logger)
	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestSolveReport(t *testing.T) {
	t.Parallel()

	g, err := builder.Flower(3)
	require.NoError(t, err)
	want, _ := oracle.MinCover(g)

	out, err := execute(t, "", "solve", "--family", "flower", "-n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	require.Equal(t, "Constructing graph Flower_3...", lines[0])
	require.Equal(t, "Graph created with 12 vertices and 18 edges.", lines[1])
	require.Equal(t, "Graph edges: "+export.EdgeList(g), lines[2])
	require.Equal(t, strings.Repeat("-", 60), lines[3])
	require.Equal(t, fmt.Sprintf("Minimum vertex cover size: %d", want), lines[4])
	require.Equal(t, "LP relaxation bound: 6.00", lines[5])
	require.True(t, strings.HasPrefix(lines[6], "Cover vertices (one of the possible solutions): ["))
}

func TestSolveVerify(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "solve", "-f", "goldberg", "-n", "3", "--verify", "--time-limit", "1m")
	require.NoError(t, err)
	require.Contains(t, out, "Graph created with 24 vertices and 36 edges.")
	require.Contains(t, out, "Degrees: 3..3, components: 1, bridges: 0, repeated edges: 0, girth: 3, diameter: ")
	require.Contains(t, out, "Cover by role: s=")
}

func TestSolveInvalidParameter(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "solve", "--family", "goldberg", "-n", "4")
	require.ErrorIs(t, err, builder.ErrInvalidParameter)
	var rep reportedError
	require.True(t, errors.As(err, &rep))
	require.Contains(t, out, "Error: ")
	require.NotContains(t, out, "Minimum vertex cover size")
}

func TestRequiredFlags(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "solve", "--family", "flower")
	require.ErrorContains(t, err, `required flag(s) "n" not set`)

	_, err = execute(t, "", "solve", "-n", "5")
	require.ErrorContains(t, err, `required flag(s) "family" not set`)

	_, err = execute(t, "", "graph", "-n", "5", "--format", "dimacs")
	require.ErrorContains(t, err, `required flag(s) "family" not set`)

	_, err = execute(t, "", "solve", "--family", "petersen", "-n", "3")
	require.Error(t, err)
}

func TestGraphCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "graph", "-f", "2", "-n", "3", "--format", "dimacs")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "p edge 12 18\n"))
	require.Equal(t, 19, strings.Count(out, "\n"))

	out, err = execute(t, "", "graph", "-f", "1", "-n", "3")
	require.NoError(t, err)
	g, err := builder.Goldberg(3)
	require.NoError(t, err)
	require.Equal(t, export.EdgeList(g)+"\n", out)

	_, err = execute(t, "", "graph", "-f", "1", "-n", "3", "--format", "svg")
	require.ErrorIs(t, err, export.ErrUnknownFormat)

	_, err = execute(t, "", "graph", "-f", "1", "-n", "2")
	require.ErrorIs(t, err, builder.ErrInvalidParameter)
}

func TestWriteStructureCanceled(t *testing.T) {
	t.Parallel()

	g, err := builder.Flower(5)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writeStructure(context.Background(), &out, g))
	require.True(t, strings.HasPrefix(out.String(), "Degrees: 3..3, components: 1, bridges: 0"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out.Reset()
	require.ErrorIs(t, writeStructure(ctx, &out, g), context.Canceled)
	require.Empty(t, out.String())
}

func TestInteractive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		stdin   string
		want    string
		wantErr error
	}{
		{"flower", "2\n3\n", "Constructing graph Flower_3...", nil},
		{"goldberg by name", "goldberg\n3\n", "Graph created with 24 vertices and 36 edges.", nil},
		{"bad choice", "7\n", "Invalid choice. Logging out.", builder.ErrInvalidSelection},
		{"non-integer n", "1\nthree\n", "Invalid input. Please enter an integer.", builder.ErrInvalidParameter},
		{"even n", "2\n4\n", "Error: ", builder.ErrInvalidParameter},
		{"no input", "", "Invalid choice. Logging out.", builder.ErrInvalidSelection},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, tc.stdin)
			require.True(t, strings.HasPrefix(out, "Select the type of Snark graph to analyze:\n1: Goldberg Snark\n2: Flower Snark\n"))
			require.Contains(t, out, tc.want)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.Contains(t, out, "Minimum vertex cover size: ")
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestFailureMessages(t *testing.T) {
	t.Parallel()

	msgs := map[string]error{
		"Invalid choice. Logging out.":                   builder.ErrInvalidSelection,
		"Invalid input. Please enter an integer.":        fmt.Errorf("%w: %w", errNotInteger, builder.ErrInvalidParameter),
		"The problem does not have an optimal solution.": errors.Wrap(cover.ErrSolverInconclusive, "solving"),
	}
	for want, err := range msgs {
		require.Equal(t, want, failureMessage(err))
	}
	require.True(t, strings.HasPrefix(failureMessage(builder.ErrInvalidParameter), "Error: "))
	require.True(t, strings.HasPrefix(failureMessage(errors.New("boom")), "An unexpected error has occurred: "))
}
