package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/internal/render"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of pathtrace",
		Args:  cobra.NoArgs,
		// No configuration is needed to print the version.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := render.New(cmd.OutOrStdout())
			r.Banner(version)
			return r.Err()
		},
	}
}
