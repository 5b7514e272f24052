package cmd

import (
	"context"
	"io"
	"os"

	"github.com/salmonumbrella/texttable/internal/iocontext"
	"github.com/salmonumbrella/texttable/internal/output"
)

func stdoutFromContext(ctx context.Context) io.Writer {
	return iocontext.StdoutOrDefault(ctx, os.Stdout)
}

func stderrFromContext(ctx context.Context) io.Writer {
	return iocontext.StderrOrDefault(ctx, os.Stderr)
}

func printerForContext(ctx context.Context) *output.Printer {
	return output.NewPrinter(stdoutFromContext(ctx), output.FormatFromContext(ctx))
}

// withAppIO makes sure the app's writers are in ctx, for errors raised
// before the root pre-run had a chance to inject them.
func withAppIO(ctx context.Context, app *App) context.Context {
	if iocontext.StdoutOrDefault(ctx, nil) != nil {
		return ctx
	}
	return iocontext.WithIO(ctx, app.Stdout, app.Stderr)
}
