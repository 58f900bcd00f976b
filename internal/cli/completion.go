package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for ` + appName + `.

To load completions:

Bash:
  $ source <(` + appName + ` completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ ` + appName + ` completion bash > /etc/bash_completion.d/` + appName + `
  # macOS:
  $ ` + appName + ` completion bash > $(brew --prefix)/etc/bash_completion.d/` + appName + `

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ ` + appName + ` completion zsh > "${fpath[1]}/_` + appName + `"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ ` + appName + ` completion fish | source

  # To load completions for each session, execute once:
  $ ` + appName + ` completion fish > ~/.config/fish/completions/` + appName + `.fish

PowerShell:
  PS> ` + appName + ` completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> ` + appName + ` completion powershell > ` + appName + `.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
