package config

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"
)

// FallbackCodec is used when neither the config file nor a flag names a
// codec.
const FallbackCodec = "base64"

// LogConfig defines logger settings.
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `yaml:"level,omitempty"`
	// Format: console or json
	Format string `yaml:"format,omitempty"`
	// Outputs: stdout, stderr or file paths
	Outputs []string `yaml:"outputs,omitempty"`

	Rotation    RotationConfig `yaml:"rotation,omitempty"`
	Development bool           `yaml:"development,omitempty"`
}

// RotationConfig controls log file rotation for file outputs.
type RotationConfig struct {
	Enable     bool   `yaml:"enable,omitempty"`
	Filename   string `yaml:"filename,omitempty"`
	MaxSizeMB  int    `yaml:"max-size-mb,omitempty"`
	MaxBackups int    `yaml:"max-backups,omitempty"`
	MaxAgeDays int    `yaml:"max-age-days,omitempty"`
	Compress   bool   `yaml:"compress,omitempty"`
}

type Config struct {
	DefaultCodec  string `yaml:"default-codec,omitempty"`
	CodecOverride string `yaml:"-"`
	// Aliases maps extra codec names to the name of the codec they stand
	// for.
	Aliases     map[string]string `yaml:"aliases,omitempty"`
	AliasesFile string            `yaml:"aliases-file,omitempty"`
	// Language is a BCP 47 tag selecting the language of error messages.
	Language string    `yaml:"language,omitempty"`
	Log      LogConfig `yaml:"log,omitempty"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

// ActiveCodec returns the codec name commands use when none is given on the
// command line.
func (c *Config) ActiveCodec() string {
	if c == nil {
		return FallbackCodec
	}
	switch {
	case c.CodecOverride != "":
		return c.CodecOverride
	case c.DefaultCodec != "":
		return c.DefaultCodec
	default:
		return FallbackCodec
	}
}

// SetDefaultCodec persists name as the default codec. The caller is
// responsible for checking that name resolves.
func (c *Config) SetDefaultCodec(name string) error {
	old := c.DefaultCodec
	c.DefaultCodec = name
	if err := c.Write(); err != nil {
		// "Revert" change, either everything is successful or nothing.
		c.DefaultCodec = old
		return err
	}
	return nil
}

func (c *Config) HasAlias(alias string) bool {
	_, ok := c.Aliases[alias]
	return ok
}

// AliasNames returns the configured alias names in sorted order.
func (c *Config) AliasNames() []string {
	return slices.Sorted(maps.Keys(c.Aliases))
}

// SetAlias maps alias to target and persists the config.
func (c *Config) SetAlias(alias, target string) error {
	old, existed := c.Aliases[alias]
	if c.Aliases == nil {
		c.Aliases = make(map[string]string)
	}
	c.Aliases[alias] = target
	if err := c.Write(); err != nil {
		if existed {
			c.Aliases[alias] = old
		} else {
			delete(c.Aliases, alias)
		}
		return err
	}
	return nil
}

// RemoveAlias deletes alias and persists the config.
func (c *Config) RemoveAlias(alias string) error {
	old, ok := c.Aliases[alias]
	if !ok {
		return fmt.Errorf("could not find alias with name %v", alias)
	}
	delete(c.Aliases, alias)
	if err := c.Write(); err != nil {
		c.Aliases[alias] = old
		return err
	}
	return nil
}

// Path returns the file the config is read from and written to.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encoder := yaml.NewEncoder(tmpFile)
	if err := encoder.Encode(c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	return nil
}

// ReadConfig loads the config at cfgPath, or at the default location when
// cfgPath is empty. A missing default config yields an empty Config; an
// explicit path must exist.
func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.configPath = resolvedPath
	return c, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	expanded, err := homedir.Expand(cfgPath)
	if err != nil {
		return "", fmt.Errorf("expand config path: %w", err)
	}
	if !fileExists(expanded) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return expanded, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".txtcodec", "config"), nil
}
