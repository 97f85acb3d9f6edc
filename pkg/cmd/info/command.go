package info

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rbuck/txtcodec/pkg/app"
)

// NewCommand returns the "txtcodec info" command.
func NewCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "info NAME",
		Short:             "Describe a codec",
		Long:              "Resolve a codec name or alias and print the codec's canonical name and aliases.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidCodecArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			c, err := a.Registry.Lookup(cmd.Context(), name)
			if err != nil {
				return err
			}

			w := app.NewTabWriter(a.OutWriter)
			fmt.Fprintf(w, "Name:\t%v\n", c.Name())
			aliases := c.Aliases()
			if len(aliases) == 0 {
				fmt.Fprintf(w, "Aliases:\t-\n")
			} else {
				fmt.Fprintf(w, "Aliases:\t%v\n", strings.Join(aliases, ", "))
			}
			if target, ok := a.Aliases.Target(name); ok && !strings.EqualFold(c.Name(), name) && !c.HasAlias(name) {
				fmt.Fprintf(w, "Configured alias:\t%v -> %v\n", name, target)
			}
			w.Flush()
			return nil
		},
	}
}
