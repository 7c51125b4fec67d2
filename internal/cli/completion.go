package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wikigraph/pkg/cache"
	"github.com/matzehuels/wikigraph/pkg/pipeline"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for wikigraph.

To load completions:

Bash:
  $ source <(wikigraph completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ wikigraph completion bash > /etc/bash_completion.d/wikigraph
  # macOS:
  $ wikigraph completion bash > $(brew --prefix)/etc/bash_completion.d/wikigraph

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ wikigraph completion zsh > "${fpath[1]}/_wikigraph"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ wikigraph completion fish | source

  # To load completions for each session, execute once:
  $ wikigraph completion fish > ~/.config/fish/completions/wikigraph.fish

PowerShell:
  PS> wikigraph completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> wikigraph completion powershell > wikigraph.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeFormats completes the comma-separated --format list, offering only
// formats not already named.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}
	used := pipeline.ParseFormats(prefix)

	var out []string
	for _, f := range pipeline.FormatNames() {
		if !slices.Contains(used, f) {
			out = append(out, prefix+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func completeCacheBackends(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{cache.BackendNone, cache.BackendFile, cache.BackendRedis}, cobra.ShellCompDirectiveNoFileComp
}

// completeFiles completes the single file argument of commands reading a
// saved crawl.
func completeFiles(exts ...string) cobra.CompletionFunc {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return exts, cobra.ShellCompDirectiveFilterFileExt
	}
}
