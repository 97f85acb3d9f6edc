package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rbuck/txtcodec/pkg/app"
	"github.com/rbuck/txtcodec/pkg/cmd/completion"
	codecconfig "github.com/rbuck/txtcodec/pkg/cmd/config"
	"github.com/rbuck/txtcodec/pkg/cmd/decode"
	"github.com/rbuck/txtcodec/pkg/cmd/encode"
	"github.com/rbuck/txtcodec/pkg/cmd/info"
	"github.com/rbuck/txtcodec/pkg/cmd/list"
	"github.com/rbuck/txtcodec/pkg/cmd/uuid"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New()
	defer func() { _ = a.Logger.Sync() }()

	return NewRootCommand(a, version, commit).ExecuteContext(ctx)
}

// NewRootCommand builds the full command tree around a.
func NewRootCommand(a *app.App, version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:          "txtcodec",
		Short:        "Encode and decode data with text-safe binary codecs",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()

			if a.OutWriter != os.Stdout {
				a.ColorableOut = a.OutWriter
			}

			return a.InitConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.txtcodec/config)")
	root.PersistentFlags().StringVarP(&a.CodecOverride, "codec", "c", "", "set a temporary codec instead of the configured default")
	root.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "Whether to turn on debug logging")

	if err := root.RegisterFlagCompletionFunc("codec", a.ValidCodecArgs); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}

	root.AddCommand(
		encode.NewCommand(a),
		decode.NewCommand(a),
		list.NewCommand(a),
		info.NewCommand(a),
		uuid.NewCommand(a),
		codecconfig.NewCommand(a),
		completion.NewCommand(root, a),
	)

	a.Root = root
	return root
}
