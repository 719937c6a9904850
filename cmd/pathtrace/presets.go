package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/graph"
)

func newPresetsCmd(_ *app) *cobra.Command {
	var (
		format string
		export int
	)

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the preset graphs, or export one as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("export") {
				return graph.Encode(out, builder.PresetGraph(export))
			}

			presets := builder.Presets()
			switch format {
			case formatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(presets)
			case formatText:
				for i, p := range presets {
					if _, err := fmt.Fprintf(out, "%d  %s  (%d nodes, %d edges)\n",
						i, p.Name, len(p.Graph.Nodes), len(p.Graph.Edges)); err != nil {
						return err
					}
				}
				return nil
			default:
				return fmt.Errorf("unknown --format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text or json")
	cmd.Flags().IntVar(&export, "export", 0, "write preset N as a YAML graph file to stdout")

	return cmd
}
