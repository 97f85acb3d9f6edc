package completion

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rbuck/txtcodec/pkg/app"
)

type generator func(root *cobra.Command, w io.Writer) error

var generators = map[string]generator{
	"bash": func(root *cobra.Command, w io.Writer) error {
		return root.GenBashCompletionV2(w, true)
	},
	"zsh": func(root *cobra.Command, w io.Writer) error {
		return root.GenZshCompletion(w)
	},
	"fish": func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	},
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

// NewCommand returns the "txtcodec completion" command. Completions are
// generated for the whole tree below root, including codec names for
// --codec.
func NewCommand(root *cobra.Command, a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [SHELL]",
		Short: "Generate completion script for bash, zsh, fish or powershell",
		Long: `To load completions:

Bash:

  $ source <(txtcodec completion bash)

  # To load completions for each session, execute once:
  $ txtcodec completion bash > /etc/bash_completion.d/txtcodec

Zsh:

  # To load completions for each session, execute once:
  $ txtcodec completion zsh > "${fpath[1]}/_txtcodec"

  # You will need to start a new shell for this setup to take effect.

Fish:

  $ txtcodec completion fish | source

  # To load completions for each session, execute once:
  $ txtcodec completion fish > ~/.config/fish/completions/txtcodec.fish

PowerShell:

  PS> txtcodec completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             slices.Sorted(maps.Keys(generators)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := generators[args[0]](root, a.OutWriter); err != nil {
				return fmt.Errorf("failed to generate %s completion: %w", args[0], err)
			}
			return nil
		},
	}
}
