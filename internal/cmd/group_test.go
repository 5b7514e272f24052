package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGroupSequential(t *testing.T) {
	isolate(t)

	res := runCLI(t, "group", "--table", "x", "--table", "k=v", "--no-header-padding")
	if res.err != nil {
		t.Fatalf("group error = %v", res.err)
	}

	want := strings.Join([]string{
		"┌──────┐",
		"│ Col0 │",
		"├──────┤",
		"│ x    │",
		"└──────┘",
		"┌───┐",
		"│ k │",
		"├───┤",
		"│ v │",
		"└───┘",
	}, "\n") + "\n"
	if res.stdout != want {
		t.Fatalf("stdout =\n%s\nwant\n%s", res.stdout, want)
	}
}

func TestGroupInlinePadsShorterTable(t *testing.T) {
	isolate(t)

	res := runCLI(t, "group", "--inline", "--spacing", "1", "--no-header-padding",
		"--table", "x", "--table", "y;z")
	if res.err != nil {
		t.Fatalf("group error = %v", res.err)
	}

	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), res.stdout)
	}
	if lines[0] != "┌──────┐ ┌──────┐" {
		t.Fatalf("lines[0] = %q", lines[0])
	}
	if want := strings.Repeat(" ", 8) + " " + "│ z    │"; lines[5] != want {
		t.Fatalf("lines[5] = %q, want %q", lines[5], want)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 17 {
			t.Fatalf("line %d has width %d, want 17: %q", i, n, line)
		}
	}
}

func TestGroupInlineFromConfig(t *testing.T) {
	isolate(t)

	if res := runCLI(t, "config", "set", "inline", "true"); res.err != nil {
		t.Fatalf("config set error = %v", res.err)
	}
	if res := runCLI(t, "config", "set", "spacing", "3"); res.err != nil {
		t.Fatalf("config set error = %v", res.err)
	}

	res := runCLI(t, "group", "--no-header-padding", "--table", "x", "--table", "y")
	if res.err != nil {
		t.Fatalf("group error = %v", res.err)
	}
	first := strings.SplitN(res.stdout, "\n", 2)[0]
	if first != "┌──────┐   ┌──────┐" {
		t.Fatalf("first line = %q", first)
	}
}

func TestGroupJSON(t *testing.T) {
	isolate(t)

	res := runCLI(t, "group", "--inline", "-o", "json", "--table", "a,b", "--table", "c")
	if res.err != nil {
		t.Fatalf("group error = %v", res.err)
	}

	var payload struct {
		Inline  bool `json:"inline"`
		Spacing int  `json:"spacing"`
		Tables  []struct {
			Headers []string `json:"headers"`
			Widths  []int    `json:"widths"`
		} `json:"tables"`
		Lines []string `json:"lines"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &payload); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, res.stdout)
	}
	if !payload.Inline || payload.Spacing != 2 {
		t.Fatalf("inline = %v spacing = %d", payload.Inline, payload.Spacing)
	}
	if len(payload.Tables) != 2 || len(payload.Tables[0].Headers) != 2 || payload.Tables[1].Widths[0] != 4 {
		t.Fatalf("tables = %+v", payload.Tables)
	}
	if len(payload.Lines) != 6 {
		t.Fatalf("lines = %d, want 6", len(payload.Lines))
	}
}

func TestGroupNDJSONLines(t *testing.T) {
	isolate(t)

	res := runCLI(t, "group", "-o", "jsonl", "--no-header-padding", "--table", "x")
	if res.err != nil {
		t.Fatalf("group error = %v", res.err)
	}
	lines := strings.Split(strings.TrimSuffix(res.stdout, "\n"), "\n")
	if len(lines) != 5 || lines[0] != `"┌──────┐"` {
		t.Fatalf("ndjson output = %q", res.stdout)
	}
}

func TestGroupNegativeSpacing(t *testing.T) {
	isolate(t)

	res := runCLI(t, "group", "--inline", "--spacing", "-1", "--table", "x")
	if res.err == nil || ExitCode(res.err) != ExitUser {
		t.Fatalf("expected user error, got %v", res.err)
	}
	if !strings.Contains(res.stderr, "spacing") {
		t.Fatalf("stderr = %q", res.stderr)
	}
}

func TestGroupMixedTableRows(t *testing.T) {
	isolate(t)

	res := runCLI(t, "group", "--table", "x", "--table", "a=1;2")
	if res.err == nil || ExitCode(res.err) != ExitUser {
		t.Fatalf("expected user error, got %v", res.err)
	}
	if !strings.Contains(res.stderr, "Hint: Check --table #2") {
		t.Fatalf("stderr = %q", res.stderr)
	}
	if res.stdout != "" {
		t.Fatalf("stdout = %q, want empty", res.stdout)
	}
}

func TestGroupNoTablesInline(t *testing.T) {
	isolate(t)

	res := runCLI(t, "group", "--inline")
	if res.err != nil {
		t.Fatalf("group error = %v", res.err)
	}
	if res.stdout != "\n" {
		t.Fatalf("stdout = %q, want a single newline", res.stdout)
	}
}

func TestGroupSpacingFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TEXTTABLE_SPACING", "0")

	res := runCLI(t, "group", "--inline", "--no-header-padding", "--table", "x", "--table", "y")
	if res.err != nil {
		t.Fatalf("group error = %v", res.err)
	}
	if first := strings.SplitN(res.stdout, "\n", 2)[0]; first != "┌──────┐┌──────┐" {
		t.Fatalf("first line = %q", first)
	}
}

func TestGroupBadSpacingEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TEXTTABLE_SPACING", "wide")

	res := runCLI(t, "group", "--table", "x")
	if res.err == nil || ExitCode(res.err) != ExitUser {
		t.Fatalf("expected user error, got %v", res.err)
	}
}
