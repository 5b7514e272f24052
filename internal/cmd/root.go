package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/texttable/internal/config"
	clierrors "github.com/salmonumbrella/texttable/internal/errors"
	"github.com/salmonumbrella/texttable/internal/logging"
)

func newRootCmd(app *App) *cobra.Command {
	// Global flags
	var (
		debugMode   bool
		logFormat   string
		queryFlag   string
		jsonPath    string
		compactJSON bool
		quietFlag   bool
		colorFlag   string
		errorFormat string
	)

	rootCmd := &cobra.Command{
		Use:   "ttable",
		Short: "Render records as box-drawn text tables",
		Long: `ttable renders rows of values as fixed-width tables drawn with
box-drawing characters, and can place several tables side by side.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lf, err := logging.ParseFormat(logFormat)
			if err != nil {
				return clierrors.WrapUserError(err, "invalid --log-format", "Use one of: text, json")
			}
			if lf == logging.FormatJSON {
				logging.SetupJSON(debugMode, app.Stderr)
			} else {
				logging.Setup(debugMode, app.Stderr)
			}

			if envPath, err := config.DefaultEnvPath(); err == nil {
				if err := config.LoadEnvFile(envPath); err != nil {
					slog.Debug("skipping env file", "path", envPath, "error", err)
				}
			}

			// config commands must work even when the file is broken
			cfg := &config.Config{}
			if !isConfigCommand(cmd) {
				loaded, err := config.Load()
				if err != nil {
					return clierrors.WrapUserError(err, "failed to load config", "Fix or remove the file shown by 'ttable config path'")
				}
				cfg = loaded
			}

			opts, err := parseGlobalOptions(cmd, cfg, globalFlagInput{
				queryFlag:   queryFlag,
				jsonPath:    jsonPath,
				compactJSON: compactJSON,
				quiet:       quietFlag,
				colorFlag:   colorFlag,
				errorFormat: errorFormat,
			})
			if err != nil {
				return err
			}
			if err := validateGlobalOptions(&opts); err != nil {
				return err
			}

			cmd.SetContext(buildRootContext(cmd.Context(), app, debugMode, opts))
			return nil
		},
	}

	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("ttable %s (commit: %s, built: %s)\n", app.Version, app.Commit, app.BuildTime))
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return clierrors.WrapUserError(err, "invalid flags", fmt.Sprintf("Run '%s --help' for usage", c.CommandPath()))
	})

	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text|json|ndjson|jsonl|yaml")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Shorthand for --output json")
	_ = rootCmd.PersistentFlags().MarkHidden("json")
	rootCmd.PersistentFlags().StringVarP(&queryFlag, "query", "q", "", "JQ expression to filter structured output")
	rootCmd.PersistentFlags().StringVar(&jsonPath, "jsonpath", "", "Extract a value using JSONPath (e.g. $.lines[0])")
	rootCmd.PersistentFlags().BoolVar(&compactJSON, "compact-json", false, "Output compact JSON (single-line) instead of pretty JSON")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text|json)")
	rootCmd.PersistentFlags().StringVar(&errorFormat, "error-format", "auto", "Error output format (auto|text|json|yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "Color for status messages (auto|always|never)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress non-essential output")

	flagAlias(rootCmd.PersistentFlags(), "output", "format")
	flagAlias(rootCmd.PersistentFlags(), "query", "jq")
	flagAlias(rootCmd.PersistentFlags(), "compact-json", "cj")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newGroupCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}
