package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addCompletion(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion [shell]",
		Short: "Print the completion script for a shell",
		Long: `To load completion for the current bash session run

. <(layout-carousel-niri completion)

Supported shells: bash (default), zsh, fish, powershell.
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) > 0 {
				shell = args[0]
			}

			out := cmd.OutOrStdout()
			switch shell {
			case "bash":
				return topLevel.GenBashCompletion(out)
			case "zsh":
				return topLevel.GenZshCompletion(out)
			case "fish":
				return topLevel.GenFishCompletion(out, true)
			case "powershell":
				return topLevel.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %q", shell)
			}
		},
	}

	topLevel.AddCommand(cmd)
}
