package cmd

import (
	"context"

	"github.com/salmonumbrella/texttable/internal/table"
)

type (
	errorFormatKey struct{}
	settingsKey    struct{}
)

// renderSettings are the layout defaults after env and config are applied.
// Command flags override them per invocation.
type renderSettings struct {
	Align         table.Align
	Spacing       int
	HeaderPadding bool
	Inline        bool
	Quiet         bool
}

func defaultRenderSettings() renderSettings {
	return renderSettings{
		Align:         table.Left,
		Spacing:       table.DefaultSpacing,
		HeaderPadding: true,
	}
}

// WithErrorFormat stores the --error-format value in context.
func WithErrorFormat(ctx context.Context, format string) context.Context {
	return context.WithValue(ctx, errorFormatKey{}, format)
}

// ErrorFormatFromContext returns the --error-format value, or "" when unset.
func ErrorFormatFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(errorFormatKey{}).(string); ok {
		return v
	}
	return ""
}

func withRenderSettings(ctx context.Context, s renderSettings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

func renderSettingsFromContext(ctx context.Context) renderSettings {
	if s, ok := ctx.Value(settingsKey{}).(renderSettings); ok {
		return s
	}
	return defaultRenderSettings()
}
