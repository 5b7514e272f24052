package cmd

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	clierrors "github.com/salmonumbrella/texttable/internal/errors"
	"github.com/salmonumbrella/texttable/internal/output"
	"github.com/salmonumbrella/texttable/internal/table"
	"github.com/salmonumbrella/texttable/internal/ui"
	"github.com/salmonumbrella/texttable/internal/validate"
)

func newGroupCmd() *cobra.Command {
	var (
		layout  layoutFlags
		tables  []string
		inline  bool
		spacing int
	)

	cmd := &cobra.Command{
		Use:   "group",
		Short: "Render several tables one after another or side by side",
		Long: `Render several tables. Each --table holds rows separated by semicolons;
every row is either positional values (a,b) or key=value pairs (a=1,b=2).

Without --inline the tables print one after another, left aligned. With
--inline they are joined side by side, --spacing spaces apart, and shorter
tables are padded at the bottom.`,
		Example: `  ttable group --table 'a=1,b=x;a=22,b=yy' --table '1,2;3,4;5,6'
  ttable group --inline --spacing 4 --align center --table 'x;y' --table 'k=v'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			settings := renderSettingsFromContext(ctx)

			if !cmd.Flags().Changed("inline") {
				inline = settings.Inline
			}
			if !cmd.Flags().Changed("spacing") {
				spacing = settings.Spacing
			}
			if err := validate.NonNegative("spacing", spacing); err != nil {
				return err
			}
			align := layout.resolveAlign(ctx, cmd, settings)
			padding := layout.headerPadding(cmd, settings)

			renderables := make([]table.Renderable, 0, len(tables))
			for i, text := range tables {
				recs, err := parseTable(text)
				if err != nil {
					return clierrors.WrapUserError(err, "invalid --table", tableFlagHint(i))
				}
				renderables = append(renderables, table.New(recs, table.WithHeaderPadding(padding)))
			}

			g := table.NewGroup(inline, renderables...)
			rendering, err := output.RenderGroup(g, spacing, align)
			if err != nil {
				return err
			}
			slog.Debug("rendered group",
				"tables", len(rendering.Tables),
				"inline", rendering.Inline,
				"spacing", rendering.Spacing,
				"align", rendering.Align,
				"lines", len(rendering.Lines),
			)

			if inline && output.FormatFromContext(ctx) == output.FormatText && len(rendering.Lines) > 0 {
				warnIfWiderThanTerminal(cmd, rendering.Lines[0])
			}
			return printerForContext(ctx).Print(ctx, rendering)
		},
	}

	layout.register(cmd)
	cmd.Flags().StringArrayVarP(&tables, "table", "t", nil, "Table rows separated by ';' (repeatable)")
	cmd.Flags().BoolVar(&inline, "inline", false, "Join tables side by side")
	cmd.Flags().IntVar(&spacing, "spacing", table.DefaultSpacing, "Spaces between side-by-side tables")

	return cmd
}

func tableFlagHint(i int) string {
	return "Check --table #" + strconv.Itoa(i+1) + "; rows are 'a,b' or 'k=v,k=v', separated by ';'"
}

func warnIfWiderThanTerminal(cmd *cobra.Command, line string) {
	ctx := cmd.Context()
	width, ok := ui.TerminalWidth(stdoutFromContext(ctx))
	if !ok {
		return
	}
	if n := len([]rune(line)); n > width {
		ui.FromContext(ctx).Warning("Grouped output is %d columns wide; terminal has %d", n, width)
	}
}
