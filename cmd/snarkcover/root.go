package main

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/snarkcover/builder"
	"github.com/katalvlaran/snarkcover/export"
)

var _ pflag.Value = (*builder.Family)(nil)

type rootOptions struct {
	debug bool

	in     io.Reader
	out    io.Writer
	logger *logrus.Logger
}

// instanceOptions selects one graph instance.
type instanceOptions struct {
	family builder.Family
	n      int
}

type solveOptions struct {
	instanceOptions
	timeLimit time.Duration
	verify    bool
}

type graphOptions struct {
	instanceOptions
	format string
}

func newRootCmd(in io.Reader, out io.Writer, logger *logrus.Logger) *cobra.Command {
	o := &rootOptions{in: in, out: out, logger: logger}

	cmd := &cobra.Command{
		Use:   "snarkcover",
		Short: "Minimum vertex cover of Goldberg and Flower snarks",
		Long: `snarkcover constructs a Goldberg or Flower snark for an odd n >= 3,
formulates minimum vertex cover as a binary integer program and solves it
with the gini SAT solver.

Without a subcommand it asks for the family and n interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.debug {
				o.logger.SetLevel(logrus.DebugLevel)
			}
			o.logger.Debugf("log level %s", o.logger.Level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.interactive(cmd.Context())
		},
	}

	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "use debug log level")

	cmd.AddCommand(newSolveCmd(o), newGraphCmd(o))
	cmd.SetIn(in)
	cmd.SetOut(out)

	return cmd
}

func bindInstanceFlags(cmd *cobra.Command, inst *instanceOptions) {
	cmd.Flags().VarP(&inst.family, "family", "f", "snark family: goldberg (1) or flower (2)")
	cmd.Flags().IntVarP(&inst.n, "n", "n", 0, "number of components; odd and >= 3")
	for _, name := range []string{"family", "n"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	o := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build a snark and print its minimum vertex cover",
		Example: `  snarkcover solve --family goldberg -n 3
  snarkcover solve -f flower -n 7 --time-limit 30s --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.report(cmd.Context(), o)
		},
	}

	bindInstanceFlags(cmd, &o.instanceOptions)
	cmd.Flags().DurationVar(&o.timeLimit, "time-limit", 0, "time limit for the solver. 0 is considered as having no limit.")
	cmd.Flags().BoolVar(&o.verify, "verify", false, "also print and check the structural report of the graph")

	return cmd
}

func newGraphCmd(root *rootOptions) *cobra.Command {
	o := &graphOptions{}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Build a snark and print it in a graph format",
		Example: `  snarkcover graph --family flower -n 5 --format graph6
  snarkcover graph -f goldberg -n 3 --format dimacs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.printGraph(o)
		},
	}

	bindInstanceFlags(cmd, &o.instanceOptions)
	cmd.Flags().StringVar(&o.format, "format", export.FormatEdges.String(), "output format. One of: [edges, graph6, dimacs, yaml]")

	return cmd
}
