package encode

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/cobra"

	"github.com/rbuck/txtcodec/pkg/app"
	"github.com/rbuck/txtcodec/pkg/encoding"
)

// NewCommand returns the "txtcodec encode" command.
func NewCommand(a *app.App) *cobra.Command {
	var (
		repeatFlag      int
		bufferSizeFlag  int
		inputModeFlag   string
		templateFlag    bool
		inputFormatFlag = app.InputFormatDefault
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode data. Reads data from stdin.",
		Long:  "Encode data read from stdin with the selected codec, one payload per line by default. Supports hex input and go templates.",
		Example: `  echo 'hello world' | txtcodec encode
  echo 'hello world' | txtcodec encode --codec base32hex
  echo '48656C6C6F' | txtcodec encode --input hex -c pct-encoded
  echo 'id-{{ .i }}-{{ uuidv4 }}' | txtcodec encode --template -n 3
  cat data.bin | txtcodec encode --input-mode full`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.ActiveCodec(cmd.Context())
			if err != nil {
				return err
			}
			enc := c.NewEncoder()

			out := make(chan []byte, 1)
			errCh := make(chan error, 1)
			go app.ReadInput(a.InReader, inputModeFlag, out, errCh, bufferSizeFlag)
			defer app.Drain(out)

			for data := range out {
				for i := 0; i < repeatFlag; i++ {
					input := data

					if templateFlag {
						vars := map[string]any{"i": i}
						tpl := template.New("txtcodec").Funcs(sprig.HermeticTxtFuncMap())

						tpl, err := tpl.Parse(string(data))
						if err != nil {
							return fmt.Errorf("failed to parse go template: %v", err)
						}

						buf := bytes.NewBuffer(nil)
						if err := tpl.Execute(buf, vars); err != nil {
							return fmt.Errorf("failed to execute go template: %v", err)
						}
						input = buf.Bytes()
					}

					if inputFormatFlag == app.InputFormatHex {
						raw, err := encoding.DecodeBase16(bytes.TrimSpace(input))
						if err != nil {
							return fmt.Errorf("failed to decode hex input: %w", err)
						}
						input = raw
					}

					encoded, err := enc.Encode(input)
					if err != nil {
						return err
					}
					if _, err := a.OutWriter.Write(encoded); err != nil {
						return err
					}
					fmt.Fprintln(a.OutWriter)
				}
			}

			return <-errCh
		},
	}

	cmd.Flags().IntVarP(&repeatFlag, "repeat", "n", 1, "Repeat every payload. The template variable .i holds the repetition index.")
	cmd.Flags().StringVarP(&inputModeFlag, "input-mode", "", app.InputModeLine, "Scanning input mode: [line|full]")
	cmd.Flags().Var(&inputFormatFlag, "input", "Set input format: default, hex")
	cmd.Flags().IntVarP(&bufferSizeFlag, "line-length-limit", "", 0, "line length limit in line input mode")
	cmd.Flags().BoolVar(&templateFlag, "template", false, "run data through go template engine")

	if err := cmd.RegisterFlagCompletionFunc("input", app.CompleteInputFormat); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}

	return cmd
}
