package cmd

import (
	"strings"
	"testing"
)

func TestCompletionScripts(t *testing.T) {
	isolate(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			res := runCLI(t, "completion", shell)
			if res.err != nil {
				t.Fatalf("completion %s error = %v", shell, res.err)
			}
			if !strings.Contains(res.stdout, "ttable") {
				t.Fatalf("completion %s output does not mention ttable", shell)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	isolate(t)

	res := runCLI(t, "--version")
	if res.err != nil {
		t.Fatalf("--version error = %v", res.err)
	}
	if res.stdout != "ttable test (commit: abc123, built: now)\n" {
		t.Fatalf("stdout = %q", res.stdout)
	}
}
