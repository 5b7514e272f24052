package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/texttable/internal/output"
	"github.com/salmonumbrella/texttable/internal/table"
	"github.com/salmonumbrella/texttable/internal/ui"
)

// layoutFlags are the per-command overrides of the resolved render settings.
type layoutFlags struct {
	align           string
	noHeaderPadding bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.align, "align", "a", "", "Cell alignment: left|right|center (default from config, else left)")
	cmd.Flags().BoolVar(&f.noHeaderPadding, "no-header-padding", false, "Omit the blank row below the header")
}

// resolveAlign returns the alignment for this invocation. Unknown names fall
// back to left alignment with a warning.
func (f *layoutFlags) resolveAlign(ctx context.Context, cmd *cobra.Command, s renderSettings) table.Align {
	if !cmd.Flags().Changed("align") {
		return s.Align
	}
	align := table.ParseAlign(f.align)
	if align.String() != strings.ToLower(strings.TrimSpace(f.align)) {
		ui.FromContext(ctx).Warning("Unknown alignment %q; using left", f.align)
	}
	return align
}

func (f *layoutFlags) headerPadding(cmd *cobra.Command, s renderSettings) bool {
	if cmd.Flags().Changed("no-header-padding") {
		return !f.noHeaderPadding
	}
	return s.HeaderPadding
}

func newRenderCmd() *cobra.Command {
	var (
		layout  layoutFlags
		rows    []string
		records []string
		headers []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one table",
		Long: `Render one table from inline rows.

Rows are given with --row (positional values, headers default to Col0, Col1, ...)
or --record (key=value pairs, headers default to the first record's keys).
Separate cells with commas; escape a literal comma, semicolon, equals sign or
backslash with a backslash.`,
		Example: `  ttable render --record 'a=1,b=x' --record 'a=22,b=yy'
  ttable render --row 'ada,36' --row 'linus,54' --headers name,age --align right
  ttable render --row 'x,y' -o json --query '.widths'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			settings := renderSettingsFromContext(ctx)

			recs, err := recordsFromFlags(rows, records)
			if err != nil {
				return err
			}

			r := table.New(recs,
				table.WithHeaders(headers...),
				table.WithHeaderPadding(layout.headerPadding(cmd, settings)),
			)
			align := layout.resolveAlign(ctx, cmd, settings)

			slog.Debug("rendering table",
				"records", r.Len(),
				"columns", len(r.Headers()),
				"align", align,
				"header_padding", r.HeaderPadding(),
			)
			if r.Len() == 0 {
				slog.Debug("no records; table renders empty")
			}

			return printerForContext(ctx).Print(ctx, output.Render(r, align))
		},
	}

	layout.register(cmd)
	cmd.Flags().StringArrayVarP(&rows, "row", "r", nil, "Positional row, comma separated (repeatable)")
	cmd.Flags().StringArrayVar(&records, "record", nil, "Named row, key=value pairs separated by commas (repeatable)")
	cmd.Flags().StringSliceVar(&headers, "headers", nil, "Column names, comma separated (default derived from the first row)")
	flagAlias(cmd.Flags(), "record", "rec")

	return cmd
}
