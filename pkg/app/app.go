package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/rbuck/txtcodec/pkg/codec"
	"github.com/rbuck/txtcodec/pkg/config"
	"github.com/rbuck/txtcodec/pkg/observability"
	"github.com/rbuck/txtcodec/pkg/provider/alias"
)

// App holds all shared mutable state for the CLI. It is created once per
// invocation and threaded into every command package.
type App struct {
	// I/O
	OutWriter    io.Writer
	ErrWriter    io.Writer
	InReader     io.Reader
	ColorableOut io.Writer

	// Config state
	Cfg           config.Config
	CfgFile       string
	CodecOverride string
	Verbose       bool

	Logger   *zap.Logger
	Registry *codec.Registry
	Aliases  *alias.Provider

	// Shared decode state
	Keyfmt        *prettyjson.Formatter
	DecodeMsgPack bool
	// CompactJSON keeps pretty-printed JSON payloads on a single line.
	CompactJSON bool

	// Display
	NoHeaderFlag bool

	// Root command reference (for completion generation)
	Root *cobra.Command
}

// New creates an App with sane defaults.
func New() *App {
	keyfmt := prettyjson.NewFormatter()
	keyfmt.Newline = " " // Replace newline with space to avoid condensed output.
	keyfmt.Indent = 0

	return &App{
		OutWriter:    os.Stdout,
		ErrWriter:    os.Stderr,
		InReader:     os.Stdin,
		ColorableOut: colorable.NewColorableStdout(),
		Logger:       zap.NewNop(),
		Keyfmt:       keyfmt,
	}
}

// InitConfig reads the config file, sets up logging and builds the codec
// registry. Called by PersistentPreRunE on the root command.
func (a *App) InitConfig() error {
	var err error
	a.Cfg, err = config.ReadConfig(a.CfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.Cfg.CodecOverride = a.CodecOverride

	tag := language.English
	if a.Cfg.Language != "" {
		if tag, err = language.Parse(a.Cfg.Language); err != nil {
			return fmt.Errorf("invalid language: %w", err)
		}
	}
	codec.SetLanguage(tag)

	logCfg := a.Cfg.Log
	if a.Verbose {
		logCfg.Level = "debug"
	}
	a.Logger, err = observability.SetupLogger(logCfg, a.OutWriter, a.ErrWriter)
	if err != nil {
		return fmt.Errorf("invalid log config: %w", err)
	}

	return a.initRegistry()
}

func (a *App) initRegistry() error {
	a.Registry = codec.NewRegistry(codec.WithLogger(a.Logger.Named("registry")))

	aliases, err := a.Cfg.AllAliases()
	if err != nil {
		return fmt.Errorf("unable to load aliases: %w", err)
	}
	a.Aliases, err = alias.New(a.Registry, aliases, a.Logger.Named("alias"))
	if err != nil {
		return fmt.Errorf("invalid alias: %w", err)
	}
	a.Registry.Register(a.Aliases)
	a.Logger.Debug("codec registry ready", zap.Int("aliases", len(aliases)))
	return nil
}

// ActiveCodec resolves the codec selected by --codec or the config file.
func (a *App) ActiveCodec(ctx context.Context) (*codec.Codec, error) {
	name := a.Cfg.ActiveCodec()
	c, err := a.Registry.Lookup(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve codec: %w", err)
	}
	a.Logger.Debug("using codec", zap.String("requested", name), zap.String("codec", c.Name()))
	return c, nil
}

// AddNoHeadersFlag installs --no-headers on cmd.
func (a *App) AddNoHeadersFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&a.NoHeaderFlag, "no-headers", false, "Hide table headers")
}

// CodecNames returns the canonical names, built-in aliases and configured
// aliases of every available codec.
func (a *App) CodecNames(ctx context.Context) []string {
	var names []string
	for _, c := range a.Registry.AvailableCodecs(ctx).Codecs() {
		names = append(names, c.Name())
		names = append(names, c.Aliases()...)
	}
	if a.Aliases != nil {
		names = append(names, a.Aliases.Names()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// ValidCodecArgs provides shell completion for codec names.
func (a *App) ValidCodecArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if a.Registry == nil {
		if err := a.InitConfig(); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	return a.CodecNames(cmd.Context()), cobra.ShellCompDirectiveNoFileComp
}

// ValidAliasArgs provides shell completion for configured alias names.
func (a *App) ValidAliasArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return a.Cfg.AliasNames(), cobra.ShellCompDirectiveNoFileComp
}

const (
	TabwriterMinWidth       = 6
	TabwriterMinWidthNested = 2
	TabwriterWidth          = 4
	TabwriterPadding        = 3
	TabwriterPadChar        = ' '
	TabwriterFlags          = 0
)

// NewTabWriter creates a standard tabwriter for CLI output.
func NewTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, TabwriterMinWidth, TabwriterWidth, TabwriterPadding, TabwriterPadChar, TabwriterFlags)
}
