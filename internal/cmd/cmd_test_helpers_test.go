package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/salmonumbrella/texttable/internal/config"
)

type runResult struct {
	stdout string
	stderr string
	err    error
}

// isolate points config and env lookups at a temp dir and clears the
// environment variables the CLI reads.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := config.SetConfigPathFunc(func() (string, error) {
		return filepath.Join(dir, "config.yaml"), nil
	})
	logger := slog.Default()
	t.Cleanup(func() {
		config.SetConfigPathFunc(orig)
		slog.SetDefault(logger)
	})

	t.Setenv(config.EnvOutput, "")
	t.Setenv(config.EnvAlign, "")
	t.Setenv(config.EnvSpacing, "")
	t.Setenv("NO_COLOR", "1")
	return dir
}

func runCLI(t *testing.T, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := &App{
		Stdout:    &stdout,
		Stderr:    &stderr,
		Version:   "test",
		Commit:    "abc123",
		BuildTime: "now",
	}
	err := app.Execute(context.Background(), args)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}
