package decode

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rbuck/txtcodec/pkg/app"
)

// NewCommand returns the "txtcodec decode" command.
func NewCommand(a *app.App) *cobra.Command {
	var (
		bufferSizeFlag int
		inputModeFlag  string
		keepGoingFlag  bool
		outputFlag     = app.OutputFormatDefault
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode data. Reads data from stdin.",
		Long:  "Decode data read from stdin with the selected codec, one payload per line by default. Decoded payloads can be printed raw, as hex, or as JSON, and MessagePack payloads can be rendered as JSON.",
		Example: `  echo 'aGVsbG8gd29ybGQ=' | txtcodec decode
  echo '68656C6C6F' | txtcodec decode --codec hex --output json
  echo 'gaFhAQ==' | txtcodec decode --msgpack
  cat mail.txt | txtcodec decode -c quoted-printable --input-mode full --output raw`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.ActiveCodec(cmd.Context())
			if err != nil {
				return err
			}
			dec := c.NewDecoder()
			a.CompactJSON = inputModeFlag != app.InputModeFull

			out := make(chan []byte, 1)
			errCh := make(chan error, 1)
			go app.ReadInput(a.InReader, inputModeFlag, out, errCh, bufferSizeFlag)
			defer app.Drain(out)

			var failed int
			for data := range out {
				decoded, err := dec.Decode(data)
				if err != nil {
					if !keepGoingFlag {
						return err
					}
					failed++
					fmt.Fprintf(a.ErrWriter, "%v\n", err)
					continue
				}

				var stderr bytes.Buffer
				display := a.RenderDecoded(c.Name(), data, decoded, &stderr, outputFlag)
				stderr.WriteTo(a.ErrWriter)
				_, _ = a.ColorableOut.Write(display)
				if outputFlag != app.OutputFormatRaw {
					fmt.Fprintln(a.OutWriter)
				}
			}

			if err := <-errCh; err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d payloads could not be decoded", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputModeFlag, "input-mode", "", app.InputModeLine, "Scanning input mode: [line|full]")
	cmd.Flags().IntVarP(&bufferSizeFlag, "line-length-limit", "", 0, "line length limit in line input mode")
	cmd.Flags().VarP(&outputFlag, "output", "o", "Set output format: default, raw, json, hex")
	cmd.Flags().BoolVar(&a.DecodeMsgPack, "msgpack", false, "Render decoded MessagePack payloads as JSON")
	cmd.Flags().BoolVar(&keepGoingFlag, "keep-going", false, "Report malformed payloads on stderr and continue")

	if err := cmd.RegisterFlagCompletionFunc("output", app.CompleteOutputFormat); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}

	return cmd
}
