package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/floydwarshall"
	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/internal/render"
	"github.com/katalvlaran/pathtrace/internal/runs"
	"github.com/katalvlaran/pathtrace/internal/watch"
	"github.com/katalvlaran/pathtrace/replay"
	"github.com/katalvlaran/pathtrace/shortest"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type runOptions struct {
	step   int
	format string
	watch  bool
	table  bool
}

func newRunCmd(a *app) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an algorithm and print its trace, distances and paths",
		Long: `Runs the selected algorithm on the configured graph and prints every
recorded step followed by final distances and paths. With --step k only the
display state after steps [0..k] is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.applyRunFlags(cmd)
			if opts.format != formatText && opts.format != formatJSON {
				return fmt.Errorf("unknown --format %q (want text or json)", opts.format)
			}
			if opts.table && a.cfg.Run.Algorithm != shortest.FloydWarshall {
				return fmt.Errorf("--table needs --algorithm floyd-warshall (got %s)", a.cfg.Run.Algorithm)
			}
			if !cmd.Flags().Changed("step") {
				opts.step = noStep
			}

			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			if err = a.runOnce(cmd.OutOrStdout(), g, opts); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}

			return a.watchAndRerun(cmd, opts)
		},
	}

	f := cmd.Flags()
	addRunFlags(cmd)
	f.IntVar(&opts.step, "step", 0, "print the display state after step k instead of the full trace")
	f.StringVar(&opts.format, "format", formatText, "output format: text or json")
	f.BoolVar(&opts.watch, "watch", false, "re-run whenever --graph changes on disk")
	f.BoolVar(&opts.table, "table", false, "also print the all-pairs table (needs --algorithm floyd-warshall)")

	return cmd
}

// tableOutput is the --format json shape when --table is set. Run holds the
// result, or the overlay when --step is given.
type tableOutput struct {
	Run   any                  `json:"run"`
	Table *floydwarshall.Table `json:"table"`
}

// noStep marks --step as unset.
const noStep = -1 << 31

// addRunFlags registers the flags run and play share.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("algorithm", "a", "", "dijkstra, bellman-ford or floyd-warshall (unknown falls back to dijkstra)")
	cmd.Flags().StringP("source", "s", "", "source node id (default: first node)")
}

// applyRunFlags copies --algorithm and --source into the configuration.
func (a *app) applyRunFlags(cmd *cobra.Command) {
	if cmd.Flags().Changed("algorithm") {
		v, _ := cmd.Flags().GetString("algorithm")
		if !shortest.Known(v) {
			a.log.Warn("unknown algorithm, using default", "algorithm", v, "default", shortest.Default.String())
		}
		a.cfg.Run.Algorithm = shortest.Parse(v)
	}
	if cmd.Flags().Changed("source") {
		a.cfg.Run.Source, _ = cmd.Flags().GetString("source")
	}
}

func (a *app) runOnce(w io.Writer, g graph.Graph, opts runOptions) error {
	res := runs.Execute(a.log, runs.Request{Algorithm: a.cfg.Run.Algorithm, Source: a.cfg.Run.Source, Graph: g})

	var table *floydwarshall.Table
	if opts.table {
		_, table = floydwarshall.AllPairs(g)
	}

	if opts.format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		var out any = res
		if opts.step != noStep {
			out = replay.Project(g, res, opts.step)
		}
		if table != nil {
			out = tableOutput{Run: out, Table: table}
		}
		return enc.Encode(out)
	}

	r := render.New(w)
	r.Header(res)
	if opts.step != noStep {
		r.Overlay(replay.Project(g, res, opts.step))
	} else {
		r.Steps(res)
		r.Summary(res)
	}
	if table != nil {
		r.Table(table)
	}

	return r.Err()
}

// watchAndRerun re-runs on every change of the graph file until interrupted.
func (a *app) watchAndRerun(cmd *cobra.Command, opts runOptions) error {
	path := a.cfg.Run.GraphFile
	if path == "" {
		return fmt.Errorf("--watch needs --graph")
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	stopWatch, err := watch.Watch(path, a.log, func(g graph.Graph) {
		if err := a.runOnce(out, g, opts); err != nil {
			a.log.Error("re-run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	defer stopWatch()

	a.log.Info("watching graph file", "path", path)
	<-ctx.Done()

	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
