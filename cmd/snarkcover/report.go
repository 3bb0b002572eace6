package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/snarkcover/analysis"
	"github.com/katalvlaran/snarkcover/builder"
	"github.com/katalvlaran/snarkcover/core"
	"github.com/katalvlaran/snarkcover/cover"
	"github.com/katalvlaran/snarkcover/export"
	"github.com/katalvlaran/snarkcover/ginisat"
)

const separatorWidth = 60

var errNotSnarklike = errors.New("graph is not cubic, connected, bridgeless and simple")

// reportedError marks a failure whose message was already written to the
// report, so main only sets the exit status.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

// failureMessage is the one-line report text for err.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, builder.ErrInvalidSelection):
		return "Invalid choice. Logging out."
	case errors.Is(err, errNotInteger):
		return "Invalid input. Please enter an integer."
	case errors.Is(err, builder.ErrInvalidParameter):
		return fmt.Sprintf("Error: %v", err)
	case errors.Is(err, cover.ErrSolverInconclusive):
		return "The problem does not have an optimal solution."
	default:
		return fmt.Sprintf("An unexpected error has occurred: %v", err)
	}
}

// fail writes the failure line for err and marks err as reported.
func (o *rootOptions) fail(err error) error {
	o.logger.WithError(err).Debug("report failed")
	fmt.Fprintln(o.out, failureMessage(err))

	return reportedError{err}
}

// report builds the instance, prints it and its minimum vertex cover.
func (o *rootOptions) report(ctx context.Context, so *solveOptions) error {
	name := builder.Name(so.family, so.n)
	log := o.logger.WithField("instance", name)

	fmt.Fprintf(o.out, "\nConstructing graph %s...\n", name)
	g, err := builder.Build(so.family, so.n)
	if err != nil {
		return o.fail(errors.Wrapf(err, "building %s", name))
	}
	fmt.Fprintf(o.out, "Graph created with %d vertices and %d edges.\n", g.Order(), g.Size())
	fmt.Fprintf(o.out, "Graph edges: %s\n", export.EdgeList(g))
	if so.verify {
		if err := writeStructure(ctx, o.out, g); err != nil {
			return o.fail(errors.Wrapf(err, "verifying %s", name))
		}
	}
	fmt.Fprintln(o.out, strings.Repeat("-", separatorWidth))

	res, err := cover.Solve(ctx, g, ginisat.New(ginisat.WithLogger(log)),
		cover.WithName(name),
		cover.WithLogger(log),
		cover.WithTimeLimit(so.timeLimit),
	)
	if err != nil {
		return o.fail(errors.Wrapf(err, "solving %s", name))
	}
	fmt.Fprintf(o.out, "Minimum vertex cover size: %d\n", res.Size)

	if bound, err := cover.Relaxation(g); err != nil {
		log.WithError(err).Warn("LP relaxation failed")
	} else {
		fmt.Fprintf(o.out, "LP relaxation bound: %.2f\n", bound)
	}
	fmt.Fprintf(o.out, "Cover vertices (one of the possible solutions): %s\n", export.IntList(res.Vertices))
	if so.verify {
		writeRoles(o.out, so.family, so.n, res.Vertices)
	}
	log.WithFields(logrus.Fields{"size": res.Size}).Debug("report written")

	return nil
}

// writeStructure prints the structural report of g and fails unless g is
// snark-like.
func writeStructure(ctx context.Context, w io.Writer, g core.Graph) error {
	r, err := analysis.AnalyzeContext(ctx, g)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Degrees: %d..%d, components: %d, bridges: %d, repeated edges: %d, girth: %d, diameter: %d\n",
		r.MinDegree, r.MaxDegree, r.Components, len(r.Bridges), len(r.Duplicates), r.Girth, r.Diameter)
	if !r.Snarklike() {
		return errNotSnarklike
	}

	return nil
}

// writeRoles prints how many cover vertices fall in each role.
func writeRoles(w io.Writer, family builder.Family, n int, vertices []int) {
	counts := make(map[string]int)
	for _, v := range vertices {
		role, _, err := builder.Role(family, n, v)
		if err != nil {
			continue
		}
		counts[role]++
	}

	parts := make([]string, 0, len(counts))
	for _, role := range builder.RoleNames(family) {
		parts = append(parts, fmt.Sprintf("%s=%d", role, counts[role]))
	}
	fmt.Fprintf(w, "Cover by role: %s\n", strings.Join(parts, " "))
}

// printGraph writes the instance in the requested format.
func (o *rootOptions) printGraph(gopts *graphOptions) error {
	f, err := export.ParseFormat(gopts.format)
	if err != nil {
		return err
	}
	g, err := builder.Build(gopts.family, gopts.n)
	if err != nil {
		return errors.Wrapf(err, "building %s", builder.Name(gopts.family, gopts.n))
	}
	o.logger.WithFields(logrus.Fields{
		"instance": builder.Name(gopts.family, gopts.n),
		"format":   f,
	}).Debug("writing graph")

	return export.Write(o.out, g, f)
}
