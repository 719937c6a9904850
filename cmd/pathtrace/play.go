package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/internal/render"
	"github.com/katalvlaran/pathtrace/internal/runs"
	"github.com/katalvlaran/pathtrace/replay"
)

func newPlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Animate a run step by step until it ends or Ctrl-C",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.applyRunFlags(cmd)
			if cmd.Flags().Changed("speed") {
				a.cfg.Run.Speed, _ = cmd.Flags().GetDuration("speed")
			}

			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			res := runs.Execute(a.log, runs.Request{Algorithm: a.cfg.Run.Algorithm, Source: a.cfg.Run.Source, Graph: g})

			ctx, stop := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			r := render.New(cmd.OutOrStdout())
			r.Header(res)
			player := replay.NewPlayer(replay.NewCursor(g, res))
			err = player.Play(ctx, a.cfg.Run.Speed, func(o replay.Overlay) {
				r.Overlay(o)
			})
			if errors.Is(err, context.Canceled) {
				a.log.Info("playback interrupted")
				return r.Err()
			}
			if err != nil {
				return err
			}

			r.Summary(res)
			return r.Err()
		},
	}

	addRunFlags(cmd)
	cmd.Flags().Duration("speed", 0, "interval between steps (default from config, 1s)")

	return cmd
}
