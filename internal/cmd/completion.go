package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

type completionShell struct {
	name  string
	usage string
	gen   func(root *cobra.Command, w io.Writer) error
}

var completionShells = []completionShell{
	{
		name:  "bash",
		usage: "$ source <(ttable completion bash)",
		gen:   func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	},
	{
		name:  "zsh",
		usage: `$ ttable completion zsh > "${fpath[1]}/_ttable"`,
		gen:   func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	},
	{
		name:  "fish",
		usage: "$ ttable completion fish | source",
		gen:   func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	},
	{
		name:  "powershell",
		usage: "PS> ttable completion powershell | Out-String | Invoke-Expression",
		gen:   func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
	},
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
	}

	for _, shell := range completionShells {
		shell := shell // per-iteration copy (go 1.21 loop semantics)
		cmd.AddCommand(&cobra.Command{
			Use:   shell.name,
			Short: "Generate " + shell.name + " completion script",
			Long:  "Generate the autocompletion script for " + shell.name + ".\n\nTo load completions in your current shell session:\n\n\t" + shell.usage + "\n",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return shell.gen(cmd.Root(), stdoutFromContext(cmd.Context()))
			},
		})
	}
	return cmd
}
