package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		noColor string
		want    ColorMode
	}{
		{"auto with NO_COLOR", ColorAuto, "1", ColorNever},
		{"always with NO_COLOR", ColorAlways, "1", ColorNever},
		{"never", ColorNever, "", ColorNever},
		{"always", ColorAlways, "", ColorAlways},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)

			ui := New(tt.mode, &bytes.Buffer{})
			if ui.color != tt.want {
				t.Fatalf("New() color mode = %v, want %v", ui.color, tt.want)
			}
		})
	}
}

func TestNewNeverWritesPlainText(t *testing.T) {
	var buf bytes.Buffer
	New(ColorNever, &buf).Warning("wide output")

	if got := buf.String(); got != "⚠ wide output\n" {
		t.Fatalf("Warning() wrote %q", got)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{" never ", ColorNever, false},
		{"sometimes", ColorAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColorMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseColorMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestContextIntegration(t *testing.T) {
	ui := New(ColorNever, &bytes.Buffer{})
	ctx := WithUI(context.Background(), ui)

	if FromContext(ctx) != ui {
		t.Error("FromContext() did not return the same UI instance")
	}
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext() returned nil for context without UI")
	}
}

func TestOutputMethods(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(*UI, string, ...any)
		expected string
	}{
		{"Success", (*UI).Success, "✓ saved 3 keys"},
		{"Warning", (*UI).Warning, "⚠ saved 3 keys"},
		{"Error", (*UI).Error, "✗ saved 3 keys"},
		{"Info", (*UI).Info, "ℹ saved 3 keys"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ui := &UI{
				out:   termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)),
				color: ColorNever,
			}

			tt.fn(ui, "saved %d keys", 3)

			if output := strings.TrimSpace(buf.String()); output != tt.expected {
				t.Errorf("%s output = %q, want %q", tt.name, output, tt.expected)
			}
		})
	}
}

func TestQuietSuppressesNonEssential(t *testing.T) {
	var buf bytes.Buffer
	ui := New(ColorNever, &buf)
	ui.SetQuiet(true)

	ui.Success("hidden")
	ui.Info("hidden")
	ui.Warning("shown")

	if got := buf.String(); got != "⚠ shown\n" {
		t.Fatalf("quiet output = %q", got)
	}
}

func TestTerminalDetectionOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Fatal("buffer reported as terminal")
	}
	if _, ok := TerminalWidth(&buf); ok {
		t.Fatal("buffer reported a terminal width")
	}
}
