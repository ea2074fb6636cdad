package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/coltok/coltok/format"
	"github.com/coltok/coltok/tokenizer"
)

type Config struct {
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	Snapshot  SnapshotConfig  `mapstructure:"snapshot"`
	LogLevel  string          `mapstructure:"log_level"`
}

type TokenizerConfig struct {
	Kind    string `mapstructure:"kind"`
	NumBits int    `mapstructure:"num_bits"`
	MinYear int    `mapstructure:"min_year"`
	MaxYear int    `mapstructure:"max_year"`
	Offset  int    `mapstructure:"offset"`
}

type SnapshotConfig struct {
	Compression string `mapstructure:"compression"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Tokenizer: TokenizerConfig{
			Kind:    "numeric",
			NumBits: tokenizer.DefaultNumBits,
			MinYear: tokenizer.DefaultMinYear,
			MaxYear: tokenizer.DefaultMaxYear,
			Offset:  0,
		},
		Snapshot: SnapshotConfig{
			Compression: "none",
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("tokenizer-kind", defaults.Tokenizer.Kind, "Tokenizer kind (numeric|categorical|timestamp)")
	fs.Int("tokenizer-num-bits", defaults.Tokenizer.NumBits, "Bisection depth for numeric tokenizers")
	fs.Int("tokenizer-min-year", defaults.Tokenizer.MinYear, "Minimum accepted year for timestamp tokenizers")
	fs.Int("tokenizer-max-year", defaults.Tokenizer.MaxYear, "Maximum accepted year for timestamp tokenizers")
	fs.Int("tokenizer-offset", defaults.Tokenizer.Offset, "Token-space offset applied to all tokens")
	fs.String("snapshot-compression", defaults.Snapshot.Compression, "Snapshot payload compression (none|zstd|s2|lz4)")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("COLTOK")
	replacer := strings.NewReplacer("-", "_", ".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("coltok")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// ParseCompression maps the config string to a compression type.
func ParseCompression(name string) (format.CompressionType, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

// ParseKind maps the config string to a tokenizer type.
func ParseKind(name string) (format.TokenizerType, error) {
	switch strings.ToLower(name) {
	case "numeric":
		return format.TypeNumeric, nil
	case "categorical":
		return format.TypeCategorical, nil
	case "timestamp":
		return format.TypeTimestamp, nil
	default:
		return 0, fmt.Errorf("unknown tokenizer kind %q", name)
	}
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("tokenizer.kind", c.Tokenizer.Kind)
	v.SetDefault("tokenizer.num_bits", c.Tokenizer.NumBits)
	v.SetDefault("tokenizer.min_year", c.Tokenizer.MinYear)
	v.SetDefault("tokenizer.max_year", c.Tokenizer.MaxYear)
	v.SetDefault("tokenizer.offset", c.Tokenizer.Offset)
	v.SetDefault("snapshot.compression", c.Snapshot.Compression)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("tokenizer.kind", "tokenizer-kind")
	v.RegisterAlias("tokenizer.num_bits", "tokenizer-num-bits")
	v.RegisterAlias("tokenizer.min_year", "tokenizer-min-year")
	v.RegisterAlias("tokenizer.max_year", "tokenizer-max-year")
	v.RegisterAlias("tokenizer.offset", "tokenizer-offset")
	v.RegisterAlias("snapshot.compression", "snapshot-compression")
	v.RegisterAlias("log_level", "log-level")
}
