package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magiconair/properties"
	homedir "github.com/mitchellh/go-homedir"
)

// Default aliases file path, relative to the home directory.
var defaultAliasesSubpath = filepath.Join(".txtcodec", "aliases.properties")

// TryFindAliasesFile returns the default aliases file if it exists.
func TryFindAliasesFile() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	absoluteDefaultPath := filepath.Join(home, defaultAliasesSubpath)

	_, err = os.Stat(absoluteDefaultPath)
	if err == nil {
		return absoluteDefaultPath, nil
	}
	return "", os.ErrNotExist
}

// LoadAliasesFile reads alias definitions from a Java-style .properties
// file, one "alias = target" pair per line. A leading ~ in path is expanded.
func LoadAliasesFile(path string) (map[string]string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand aliases file path: %w", err)
	}
	p, err := properties.LoadFile(expanded, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("load aliases file: %w", err)
	}
	aliases := p.Map()
	for alias, target := range aliases {
		if target == "" {
			return nil, fmt.Errorf("alias %q has no target codec", alias)
		}
	}
	return aliases, nil
}

// AllAliases merges the aliases from the aliases file, if any, with the
// aliases in the config. Entries in the config win.
func (c *Config) AllAliases() (map[string]string, error) {
	merged := make(map[string]string, len(c.Aliases))
	path := c.AliasesFile
	if path == "" {
		if found, err := TryFindAliasesFile(); err == nil {
			path = found
		}
	}
	if path != "" {
		fromFile, err := LoadAliasesFile(path)
		if err != nil {
			return nil, err
		}
		for k, v := range fromFile {
			merged[k] = v
		}
	}
	for k, v := range c.Aliases {
		merged[k] = v
	}
	return merged, nil
}
