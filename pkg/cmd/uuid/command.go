package uuid

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rbuck/txtcodec/pkg/app"
	"github.com/rbuck/txtcodec/pkg/codec"
)

// NewCommand returns the "txtcodec uuid" command.
func NewCommand(a *app.App) *cobra.Command {
	var (
		decodeFlag bool
		countFlag  int
	)

	cmd := &cobra.Command{
		Use:   "uuid [UUID|TEXT...]",
		Short: "Write UUIDs as compact text",
		Long:  "Encode UUIDs through the selected codec with the padding removed. Without arguments, new random UUIDs are generated. With --decode, the arguments are compact texts that are turned back into UUIDs.",
		Example: `  txtcodec uuid --codec base32hex 48890288-e985-42d8-a909-d39323f8c9f1
  txtcodec uuid -n 5 -c base64url
  txtcodec uuid --decode -c base32hex 924G5279GL1DHA89QE9I7U69U4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.ActiveCodec(cmd.Context())
			if err != nil {
				return err
			}
			coder := codec.NewUUIDCoder(c)

			if decodeFlag {
				for _, text := range args {
					id, err := coder.Decode([]byte(text))
					if err != nil {
						return fmt.Errorf("invalid %v text %q: %w", c.Name(), text, err)
					}
					fmt.Fprintln(a.OutWriter, id.String())
				}
				return nil
			}

			ids := make([]uuid.UUID, 0, max(len(args), countFlag))
			for _, arg := range args {
				id, err := uuid.Parse(arg)
				if err != nil {
					return fmt.Errorf("invalid uuid %q: %w", arg, err)
				}
				ids = append(ids, id)
			}
			if len(args) == 0 {
				for i := 0; i < countFlag; i++ {
					ids = append(ids, uuid.New())
				}
			}

			for _, id := range ids {
				text, err := coder.Encode(id)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.OutWriter, string(text))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&decodeFlag, "decode", "d", false, "Turn compact texts back into UUIDs")
	cmd.Flags().IntVarP(&countFlag, "count", "n", 1, "Number of random UUIDs to generate when none are given")
	return cmd
}
