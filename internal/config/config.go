// Package config loads the settings of the setbuilder command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"set-builder/internal/common"
	"set-builder/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. SETBUILDER_GEN_PREFIX.
const EnvPrefix = "SETBUILDER"

// Demo output formats.
const (
	FormatSpew = "spew"
	FormatYAML = "yaml"
)

// Config represents the setbuilder configuration
type Config struct {
	Gen  GenConfig  `mapstructure:"gen"`
	Log  LogConfig  `mapstructure:"log"`
	Demo DemoConfig `mapstructure:"demo"`
}

// GenConfig configures selector generation
type GenConfig struct {
	Filename string   `mapstructure:"filename"`
	Prefix   string   `mapstructure:"prefix"`
	Types    []string `mapstructure:"types"`
	DryRun   bool     `mapstructure:"dry_run"`
}

// LogConfig configures the command logger
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// DemoConfig configures the demo command
type DemoConfig struct {
	Format string `mapstructure:"format"`
}

// Options tells Load where to look.
type Options struct {
	// File is an explicit configuration file. It must exist when set.
	File string
	// Dir is searched for setbuilder.yaml when File is empty. Defaults to ".".
	Dir string
	// Flags maps configuration keys (e.g. "gen.prefix") to command flags.
	// A flag overrides every other source once it is set on the command line.
	Flags map[string]*pflag.Flag
}

// Load reads defaults, then setbuilder.yaml, then SETBUILDER_* variables,
// then flags, and validates the result.
func Load(opts Options) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("gen.filename", "selectors_gen.go")
	v.SetDefault("gen.prefix", "")
	v.SetDefault("gen.types", []string{})
	v.SetDefault("gen.dry_run", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("demo.format", FormatSpew)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}

		v.SetConfigName("setbuilder")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	// Enable environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range opts.Flags {
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
		}
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if !strings.HasSuffix(cfg.Gen.Filename, ".go") {
		return fmt.Errorf("gen.filename must end in .go, got: %s", cfg.Gen.Filename)
	}

	if cfg.Gen.Prefix != "" && !common.IsIdent(cfg.Gen.Prefix) {
		return fmt.Errorf("gen.prefix must be a Go identifier, got: %s", cfg.Gen.Prefix)
	}

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch cfg.Demo.Format {
	case FormatSpew, FormatYAML:
	default:
		return fmt.Errorf("demo.format must be %s or %s, got: %s", FormatSpew, FormatYAML, cfg.Demo.Format)
	}

	return nil
}
