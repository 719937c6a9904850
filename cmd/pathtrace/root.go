package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/internal/config"
	"github.com/katalvlaran/pathtrace/internal/logging"
	"github.com/katalvlaran/pathtrace/internal/runs"
)

// app is the state shared by every subcommand, filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfg config.Config
	log *slog.Logger

	configPath string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "pathtrace",
		Short: "pathtrace replays shortest-path algorithms one step at a time",
		Long: `pathtrace runs Dijkstra, Bellman-Ford and Floyd-Warshall on a weighted
directed graph, records every visit, relaxation and distance update, and
replays the trace in the terminal or over a JSON HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Persistent flags (available to all commands)
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text or json")
	pf.String("graph", "", "graph file (YAML or JSON); overrides --preset")
	pf.Int("preset", 0, "preset graph index (out of range falls back to 0)")

	cmd.AddCommand(
		newRunCmd(a),
		newPlayCmd(a),
		newPresetsCmd(a),
		newGenerateCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return cmd
}

// setup resolves configuration (defaults, file, environment, flags) and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("graph") {
		cfg.Run.GraphFile, _ = flags.GetString("graph")
	}
	if flags.Changed("preset") {
		cfg.Run.Preset, _ = flags.GetInt("preset")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())

	return nil
}

// loadGraph returns the configured graph file or preset.
func (a *app) loadGraph() (graph.Graph, error) {
	g, err := runs.SelectGraph(a.cfg.Run.GraphFile, a.cfg.Run.Preset)
	if err != nil {
		return graph.Graph{}, err
	}
	a.log.Debug("graph selected", "file", a.cfg.Run.GraphFile, "preset", a.cfg.Run.Preset,
		"nodes", len(g.Nodes), "edges", len(g.Edges))

	return g, nil
}
