// Package iocontext carries stdout/stderr writers in a context so commands
// can be driven from tests.
package iocontext

import (
	"context"
	"io"
)

type ctxKey int

const (
	stdoutKey ctxKey = iota
	stderrKey
)

// WithIO injects stdout and stderr writers into context.
func WithIO(ctx context.Context, stdout, stderr io.Writer) context.Context {
	ctx = context.WithValue(ctx, stdoutKey, stdout)
	return context.WithValue(ctx, stderrKey, stderr)
}

// StdoutOrDefault returns stdout from context or def.
func StdoutOrDefault(ctx context.Context, def io.Writer) io.Writer {
	if w, ok := ctx.Value(stdoutKey).(io.Writer); ok && w != nil {
		return w
	}
	return def
}

// StderrOrDefault returns stderr from context or def.
func StderrOrDefault(ctx context.Context, def io.Writer) io.Writer {
	if w, ok := ctx.Value(stderrKey).(io.Writer); ok && w != nil {
		return w
	}
	return def
}
