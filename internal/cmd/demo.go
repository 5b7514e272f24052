package cmd

import (
	"github.com/spf13/cobra"

	"github.com/salmonumbrella/texttable/internal/output"
	"github.com/salmonumbrella/texttable/internal/table"
)

func demoTables(headerPadding bool) []table.Renderable {
	pairs := table.New([]table.Record{
		table.Mapping{{Key: "a", Value: 1}, {Key: "b", Value: "x"}},
		table.Mapping{{Key: "a", Value: 22}, {Key: "b", Value: "yy"}},
	}, table.WithHeaderPadding(headerPadding))

	people := table.New([]table.Record{
		table.Sequence{"Ada Lovelace", 1815, "analyst"},
		table.Sequence{"Grace Hopper", 1906, "compiler"},
		table.Sequence{"Edsger Dijkstra", 1930, "semaphore"},
	}, table.WithHeaders("name", "born", "known for"), table.WithHeaderPadding(headerPadding))

	return []table.Renderable{pairs, people}
}

func newDemoCmd() *cobra.Command {
	var (
		layout layoutFlags
		inline bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render built-in sample tables",
		Long: `Render two built-in sample tables, side by side by default.

Use it to preview alignment and spacing settings before applying them to
your own rows.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			settings := renderSettingsFromContext(ctx)
			align := layout.resolveAlign(ctx, cmd, settings)

			g := table.NewGroup(inline, demoTables(layout.headerPadding(cmd, settings))...)
			rendering, err := output.RenderGroup(g, settings.Spacing, align)
			if err != nil {
				return err
			}
			return printerForContext(ctx).Print(ctx, rendering)
		},
	}

	layout.register(cmd)
	cmd.Flags().BoolVar(&inline, "inline", true, "Join the sample tables side by side")

	return cmd
}
