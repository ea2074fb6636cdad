package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/coltok/coltok/format"
	"github.com/coltok/coltok/tokenizer"
)

type fakeCmd struct {
	fs *pflag.FlagSet
}

func (c *fakeCmd) Flags() *pflag.FlagSet {
	return c.fs
}

func newFakeCmd(defaults Config) *fakeCmd {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	return &fakeCmd{fs: fs}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, "numeric", cfg.Tokenizer.Kind)
	require.Equal(t, tokenizer.DefaultNumBits, cfg.Tokenizer.NumBits)
	require.Equal(t, tokenizer.DefaultMinYear, cfg.Tokenizer.MinYear)
	require.Equal(t, tokenizer.DefaultMaxYear, cfg.Tokenizer.MaxYear)
	require.Equal(t, "none", cfg.Snapshot.Compression)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Defaults(t *testing.T) {
	defaults := DefaultConfig()

	cfg, err := Load(LoadOptions{
		Cmd:      newFakeCmd(defaults),
		Defaults: defaults,
	})
	require.NoError(t, err)
	require.Equal(t, defaults, cfg)
}

func TestLoad_FlagsOverrideDefaults(t *testing.T) {
	defaults := DefaultConfig()
	cmd := newFakeCmd(defaults)
	require.NoError(t, cmd.fs.Parse([]string{
		"--tokenizer-kind=timestamp",
		"--tokenizer-min-year=1990",
		"--snapshot-compression=zstd",
	}))

	cfg, err := Load(LoadOptions{
		Cmd:      cmd,
		Defaults: defaults,
	})
	require.NoError(t, err)
	require.Equal(t, "timestamp", cfg.Tokenizer.Kind)
	require.Equal(t, 1990, cfg.Tokenizer.MinYear)
	require.Equal(t, "zstd", cfg.Snapshot.Compression)
	// Untouched fields keep their defaults.
	require.Equal(t, tokenizer.DefaultNumBits, cfg.Tokenizer.NumBits)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coltok.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"tokenizer:\n  kind: categorical\nlog_level: debug\n"), 0o644))

	cfg, err := Load(LoadOptions{
		ConfigFile: path,
		Defaults:   DefaultConfig(),
	})
	require.NoError(t, err)
	require.Equal(t, "categorical", cfg.Tokenizer.Kind)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "none", cfg.Snapshot.Compression)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(LoadOptions{
		ConfigFile: filepath.Join(t.TempDir(), "absent.yaml"),
		Defaults:   DefaultConfig(),
	})
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("COLTOK_TOKENIZER_NUM_BITS", "12")

	cfg, err := Load(LoadOptions{Defaults: DefaultConfig()})
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Tokenizer.NumBits)
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name string
		want format.CompressionType
	}{
		{"none", format.CompressionNone},
		{"", format.CompressionNone},
		{"zstd", format.CompressionZstd},
		{"ZSTD", format.CompressionZstd},
		{"s2", format.CompressionS2},
		{"lz4", format.CompressionLZ4},
	}
	for _, tt := range tests {
		got, err := ParseCompression(tt.name)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseCompression("brotli")
	require.Error(t, err)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name string
		want format.TokenizerType
	}{
		{"numeric", format.TypeNumeric},
		{"categorical", format.TypeCategorical},
		{"Timestamp", format.TypeTimestamp},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.name)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseKind("bpe")
	require.Error(t, err)
}
