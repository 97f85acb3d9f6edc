package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	err := os.WriteFile(path, []byte(`default-codec: base32hex
aliases:
  b64: base64
  qp: quoted-printable
aliases-file: /etc/txtcodec/aliases.properties
log:
  level: debug
  format: json
  outputs:
    - stderr
    - /var/log/txtcodec.log
  rotation:
    enable: true
    max-size-mb: 20
    max-backups: 2
    max-age-days: 14
    compress: true
`), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "base32hex", cfg.DefaultCodec)
	require.Equal(t, map[string]string{"b64": "base64", "qp": "quoted-printable"}, cfg.Aliases)
	require.Equal(t, "/etc/txtcodec/aliases.properties", cfg.AliasesFile)
	require.Equal(t, path, cfg.Path())

	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, []string{"stderr", "/var/log/txtcodec.log"}, cfg.Log.Outputs)
	require.True(t, cfg.Log.Rotation.Enable)
	require.Equal(t, 20, cfg.Log.Rotation.MaxSizeMB)
	require.Equal(t, 2, cfg.Log.Rotation.MaxBackups)
	require.Equal(t, 14, cfg.Log.Rotation.MaxAgeDays)
	require.True(t, cfg.Log.Rotation.Compress)
}

func TestReadConfig_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, FallbackCodec, cfg.ActiveCodec())
}

func TestReadConfig_ExplicitPathMustExist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent")
	_, err := ReadConfig(path)
	require.Error(t, err)
}

func TestReadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("aliases: [1, 2"), 0644))
	_, err := ReadConfig(path)
	require.ErrorContains(t, err, "decode config")
}

func TestActiveCodec(t *testing.T) {
	var nilCfg *Config
	require.Equal(t, FallbackCodec, nilCfg.ActiveCodec())

	cfg := Config{}
	require.Equal(t, FallbackCodec, cfg.ActiveCodec())

	cfg.DefaultCodec = "base16"
	require.Equal(t, "base16", cfg.ActiveCodec())

	// CodecOverride takes precedence.
	cfg.CodecOverride = "hex"
	require.Equal(t, "hex", cfg.ActiveCodec())
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config")
	cfg := Config{configPath: path}

	require.NoError(t, cfg.SetDefaultCodec("base64url"))
	require.NoError(t, cfg.SetAlias("u", "base64url"))
	require.NoError(t, cfg.SetAlias("h", "hex"))
	require.True(t, cfg.HasAlias("u"))
	require.Equal(t, []string{"h", "u"}, cfg.AliasNames())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	read, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "base64url", read.DefaultCodec)
	require.Equal(t, map[string]string{"u": "base64url", "h": "hex"}, read.Aliases)

	require.NoError(t, read.RemoveAlias("u"))
	require.Error(t, read.RemoveAlias("u"))

	read, err = ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"h": "hex"}, read.Aliases)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestSetDefaultCodec_RevertsOnFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	// the config directory cannot be created below a regular file
	cfg := Config{DefaultCodec: "base16", configPath: filepath.Join(blocker, "config")}
	require.Error(t, cfg.SetDefaultCodec("base32"))
	require.Equal(t, "base16", cfg.DefaultCodec)

	require.Error(t, cfg.SetAlias("x", "base32"))
	require.False(t, cfg.HasAlias("x"))
}

func TestLoadAliasesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.properties")
	require.NoError(t, os.WriteFile(path, []byte(`# extra names
b32 = base32
url-safe: base64url
`), 0644))

	aliases, err := LoadAliasesFile(path)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"b32": "base32", "url-safe": "base64url"}, aliases)

	cfg := Config{AliasesFile: path, Aliases: map[string]string{"b32": "base32hex"}}
	all, err := cfg.AllAliases()
	require.NoError(t, err)
	require.Equal(t, map[string]string{"b32": "base32hex", "url-safe": "base64url"}, all)
}

func TestLoadAliasesFile_Errors(t *testing.T) {
	_, err := LoadAliasesFile(filepath.Join(t.TempDir(), "missing.properties"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "aliases.properties")
	require.NoError(t, os.WriteFile(path, []byte("dangling =\n"), 0644))
	_, err = LoadAliasesFile(path)
	require.ErrorContains(t, err, "dangling")
}
