package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON HTTP API",
		Long:  `Starts an HTTP server that runs algorithms on request, keeps the latest runs in memory and serves their replays.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.HTTP.Addr, _ = cmd.Flags().GetString("addr")
			}

			ctx, stop := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(a.log, a.cfg.HTTP.MaxRuns).ListenAndServe(ctx, a.cfg.HTTP, nil)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default from config, :8080)")

	return cmd
}
