package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/graph"
)

// generateKinds lists the shapes generate can build, in help order.
var generateKinds = []string{"path", "cycle", "star", "wheel", "complete", "grid", "random"}

type generateOptions struct {
	n             int
	rows, cols    int
	p             float64
	seed          int64
	minW, maxW    int
	bidirectional bool
}

func newGenerateCmd(_ *app) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:       "generate KIND",
		Short:     "Write a generated graph as YAML to stdout",
		Long:      "Builds a deterministic graph of the given shape (" + strings.Join(generateKinds, ", ") + ") with integer weights drawn from [min, max].",
		Args:      cobra.ExactArgs(1),
		ValidArgs: generateKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.maxW < opts.minW {
				return fmt.Errorf("--max %d is below --min %d", opts.maxW, opts.minW)
			}
			cons, err := opts.constructor(args[0])
			if err != nil {
				return err
			}

			bopts := []builder.BuilderOption{
				builder.WithSeed(opts.seed),
				builder.WithIntUniformWeight(opts.minW, opts.maxW),
			}
			if opts.bidirectional {
				bopts = append(bopts, builder.WithBidirectional())
			}
			g, err := builder.BuildGraph(bopts, cons)
			if err != nil {
				return err
			}

			return graph.Encode(cmd.OutOrStdout(), g)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.n, "nodes", "n", 5, "number of nodes (all kinds but grid)")
	f.IntVar(&opts.rows, "rows", 3, "grid rows")
	f.IntVar(&opts.cols, "cols", 3, "grid columns")
	f.Float64Var(&opts.p, "p", 0.3, "edge probability (random)")
	f.Int64Var(&opts.seed, "seed", 1, "random seed")
	f.IntVar(&opts.minW, "min", 1, "minimum edge weight")
	f.IntVar(&opts.maxW, "max", 9, "maximum edge weight")
	f.BoolVar(&opts.bidirectional, "bidirectional", false, "add the reverse of every edge")

	return cmd
}

func (o generateOptions) constructor(kind string) (builder.Constructor, error) {
	switch strings.ToLower(kind) {
	case "path":
		return builder.Path(o.n), nil
	case "cycle":
		return builder.Cycle(o.n), nil
	case "star":
		return builder.Star(o.n), nil
	case "wheel":
		return builder.Wheel(o.n), nil
	case "complete":
		return builder.Complete(o.n), nil
	case "grid":
		return builder.Grid(o.rows, o.cols), nil
	case "random":
		return builder.RandomSparse(o.n, o.p), nil
	default:
		return nil, fmt.Errorf("unknown kind %q (want one of %s)", kind, strings.Join(generateKinds, ", "))
	}
}
