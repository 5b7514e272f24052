package cmd

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/texttable/internal/config"
	clierrors "github.com/salmonumbrella/texttable/internal/errors"
	"github.com/salmonumbrella/texttable/internal/iocontext"
	"github.com/salmonumbrella/texttable/internal/output"
	"github.com/salmonumbrella/texttable/internal/table"
	"github.com/salmonumbrella/texttable/internal/ui"
	"github.com/salmonumbrella/texttable/internal/validate"
)

type globalFlagInput struct {
	queryFlag   string
	jsonPath    string
	compactJSON bool
	quiet       bool
	colorFlag   string
	errorFormat string
}

type globalOptions struct {
	format      output.Format
	query       string
	jsonPath    string
	compactJSON bool
	quiet       bool
	color       ui.ColorMode
	errorFormat string
	settings    renderSettings
}

func parseGlobalOptions(cmd *cobra.Command, cfg *config.Config, flags globalFlagInput) (globalOptions, error) {
	opts := globalOptions{
		query:       strings.TrimSpace(flags.queryFlag),
		jsonPath:    strings.TrimSpace(flags.jsonPath),
		compactJSON: flags.compactJSON,
		quiet:       flags.quiet,
		errorFormat: flags.errorFormat,
	}

	formatStr, _ := cmd.Flags().GetString("output")
	jsonFlag, _ := cmd.Flags().GetBool("json")
	switch {
	case jsonFlag:
		formatStr = string(output.FormatJSON)
	case commandFlagChanged(cmd, "output") || commandFlagChanged(cmd, "format"):
	case strings.TrimSpace(os.Getenv(config.EnvOutput)) != "":
		formatStr = os.Getenv(config.EnvOutput)
	case cfg.GetOutput() != "":
		formatStr = cfg.GetOutput()
	}
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return globalOptions{}, clierrors.WrapUserError(err, "invalid output format", "Use one of: text, json, ndjson, yaml")
	}
	opts.format = format

	colorStr := flags.colorFlag
	if !commandFlagChanged(cmd, "color") && cfg.GetColor() != "" {
		colorStr = cfg.GetColor()
	}
	opts.color, err = ui.ParseColorMode(colorStr)
	if err != nil {
		return globalOptions{}, clierrors.WrapUserError(err, "invalid color mode", "Use one of: auto, always, never")
	}

	opts.settings, err = resolveRenderSettings(cfg)
	if err != nil {
		return globalOptions{}, err
	}
	opts.settings.Quiet = opts.quiet
	return opts, nil
}

// resolveRenderSettings applies config file values, then environment
// overrides, on top of the built-in defaults.
func resolveRenderSettings(cfg *config.Config) (renderSettings, error) {
	s := defaultRenderSettings()

	alignStr := cfg.GetAlign()
	if v := strings.TrimSpace(os.Getenv(config.EnvAlign)); v != "" {
		alignStr = v
	}
	s.Align = table.ParseAlign(alignStr)
	if alignStr != "" && s.Align.String() != strings.ToLower(strings.TrimSpace(alignStr)) {
		slog.Debug("unknown alignment, using left", "align", alignStr)
	}

	s.Spacing = cfg.GetSpacing(s.Spacing)
	if v := strings.TrimSpace(os.Getenv(config.EnvSpacing)); v != "" {
		n, err := validate.NonNegativeInt(config.EnvSpacing, v)
		if err != nil {
			return renderSettings{}, err
		}
		s.Spacing = n
	}

	s.HeaderPadding = cfg.GetHeaderPadding(s.HeaderPadding)
	s.Inline = cfg.GetInline(s.Inline)
	return s, nil
}

func validateGlobalOptions(opts *globalOptions) error {
	if err := validateErrorFormat(opts.errorFormat); err != nil {
		return err
	}
	if opts.query != "" && opts.jsonPath != "" {
		return clierrors.NewUserError("--query and --jsonpath cannot be combined", "Use one of them")
	}
	if opts.query != "" {
		if err := output.ValidateQuery(opts.query); err != nil {
			return clierrors.WrapUserError(err, "invalid --query", "Example: --query '.lines[0]'")
		}
	}
	return nil
}

func buildRootContext(ctx context.Context, app *App, debugMode bool, opts globalOptions) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = iocontext.WithIO(ctx, app.Stdout, app.Stderr)
	ctx = output.WithFormat(ctx, opts.format)
	ctx = output.WithQuery(ctx, opts.query)
	ctx = output.WithJSONPath(ctx, opts.jsonPath)
	ctx = output.WithCompactJSON(ctx, opts.compactJSON)
	ctx = WithErrorFormat(ctx, opts.errorFormat)
	ctx = withRenderSettings(ctx, opts.settings)

	u := ui.New(opts.color, app.Stderr)
	u.SetQuiet(opts.quiet)
	ctx = ui.WithUI(ctx, u)

	slog.Debug("global options resolved",
		"format", opts.format,
		"align", opts.settings.Align,
		"spacing", opts.settings.Spacing,
		"header_padding", opts.settings.HeaderPadding,
		"inline", opts.settings.Inline,
		"debug", debugMode,
	)
	return ctx
}
