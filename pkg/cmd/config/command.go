package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/rbuck/txtcodec/pkg/app"
	"github.com/rbuck/txtcodec/pkg/codec"
)

// NewCommand returns the "txtcodec config" command with subcommands.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Handle txtcodec configuration",
	}

	cmd.AddCommand(
		newCurrentCodecCommand(a),
		newUseCodecCommand(a),
		newSelectCodecCommand(a),
		newGetAliasesCommand(a),
		newAddAliasCommand(a),
		newRemoveAliasCommand(a),
	)

	return cmd
}

func newCurrentCodecCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "current-codec",
		Short: "Displays the codec used when --codec is not given",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.OutWriter, a.Cfg.ActiveCodec())
		},
	}
}

// useCodec resolves name before persisting it so the config never names a
// codec that does not exist.
func useCodec(a *app.App, cmd *cobra.Command, name string) error {
	c, err := a.Registry.Lookup(cmd.Context(), name)
	if err != nil {
		return err
	}
	if err := a.Cfg.SetDefaultCodec(name); err != nil {
		return fmt.Errorf("unable to write config: %w", err)
	}
	if c.Name() != name {
		fmt.Fprintf(a.OutWriter, "Switched to codec \"%v\" (%v).\n", name, c.Name())
	} else {
		fmt.Fprintf(a.OutWriter, "Switched to codec \"%v\".\n", name)
	}
	return nil
}

func newUseCodecCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "use-codec [NAME]",
		Short:             "Sets the default codec in the configuration",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidCodecArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return useCodec(a, cmd, args[0])
		},
	}
}

func newSelectCodecCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "select-codec",
		Short: "Interactively select the default codec",
		RunE: func(cmd *cobra.Command, args []string) error {
			codecNames := a.Registry.AvailableCodecs(cmd.Context()).Names()
			pos := 0
			for k, name := range codecNames {
				if strings.EqualFold(name, a.Cfg.ActiveCodec()) {
					pos = k
				}
			}

			searcher := func(input string, index int) bool {
				name := strings.ReplaceAll(strings.ToLower(codecNames[index]), " ", "")
				input = strings.ReplaceAll(strings.ToLower(input), " ", "")
				return strings.Contains(name, input)
			}

			p := promptui.Select{
				Label:     "Select codec",
				Items:     codecNames,
				Searcher:  searcher,
				Size:      10,
				CursorPos: pos,
			}

			_, selected, err := p.Run()
			if err != nil {
				// User cancelled (e.g. Ctrl-C). Not an error.
				return nil
			}
			return useCodec(a, cmd, selected)
		},
	}
}

func newGetAliasesCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-aliases",
		Short: "Display codec aliases in the configuration file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := app.NewTabWriter(a.OutWriter)
			if !a.NoHeaderFlag {
				fmt.Fprintf(w, "ALIAS\tTARGET\t\n")
			}
			for _, name := range a.Cfg.AliasNames() {
				fmt.Fprintf(w, "%v\t%v\t\n", name, a.Cfg.Aliases[name])
			}
			w.Flush()
		},
	}
	a.AddNoHeadersFlag(cmd)
	return cmd
}

func newAddAliasCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "add-alias [ALIAS] [TARGET]",
		Short:             "Add a name for an existing codec",
		Example:           "txtcodec config add-alias b32 base32hex",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: a.ValidCodecArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, target := args[0], args[1]
			if err := codec.CheckName(name); err != nil {
				return fmt.Errorf("could not add alias: %w", err)
			}
			if a.Cfg.HasAlias(name) {
				return fmt.Errorf("could not add alias: alias with name '%v' exists already", name)
			}
			if existing, err := a.Registry.Lookup(cmd.Context(), name); err == nil {
				return fmt.Errorf("could not add alias: '%v' already names codec %v", name, existing.Name())
			}
			if _, err := a.Registry.Lookup(cmd.Context(), target); err != nil {
				return fmt.Errorf("could not add alias: %w", err)
			}

			if err := a.Cfg.SetAlias(name, target); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Added alias.")
			return nil
		},
	}
}

func newRemoveAliasCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "remove-alias [ALIAS]",
		Short:             "Remove an alias",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidAliasArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !a.Cfg.HasAlias(name) {
				return fmt.Errorf("could not delete alias: alias with name '%v' does not exist", name)
			}
			if err := a.Cfg.RemoveAlias(name); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Removed alias.")
			return nil
		},
	}
}
