package list

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/rbuck/txtcodec/pkg/app"
)

type codecInfo struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

// NewCommand returns the "txtcodec list" command.
func NewCommand(a *app.App) *cobra.Command {
	outputFlag := app.ListFormatDefault

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available codecs",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := a.Registry.AvailableCodecs(cmd.Context())
			infos := make([]codecInfo, 0, cat.Len())
			for _, c := range cat.Codecs() {
				infos = append(infos, codecInfo{Name: c.Name(), Aliases: c.Aliases()})
			}

			switch outputFlag {
			case app.ListFormatJSON:
				b, err := json.Marshal(infos)
				if err != nil {
					return fmt.Errorf("could not encode JSON data: %w", err)
				}
				_, _ = a.ColorableOut.Write(app.FormatValue(b))
				fmt.Fprintln(a.OutWriter)
			case app.ListFormatYAML:
				b, err := yaml.Marshal(infos)
				if err != nil {
					return fmt.Errorf("could not encode YAML data: %w", err)
				}
				_, _ = a.OutWriter.Write(b)
			default:
				w := app.NewTabWriter(a.OutWriter)
				if !a.NoHeaderFlag {
					fmt.Fprintf(w, "NAME\tALIASES\t\n")
				}
				for _, info := range infos {
					fmt.Fprintf(w, "%v\t%v\t\n", info.Name, strings.Join(info.Aliases, ","))
				}
				w.Flush()
			}
			return nil
		},
	}

	cmd.Flags().VarP(&outputFlag, "output", "o", "Set output format: default, json, yaml")
	a.AddNoHeadersFlag(cmd)

	if err := cmd.RegisterFlagCompletionFunc("output", app.CompleteListFormat); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}

	return cmd
}
