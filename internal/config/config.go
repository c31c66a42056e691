// Package config handles configuration loading and validation for csvcat
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/reader"
)

// Config holds all configuration for csvcat
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// InputConfig holds delimited-text parsing options
type InputConfig struct {
	Delimiter        string `mapstructure:"delimiter"`
	TrimLeadingSpace bool   `mapstructure:"trim_leading_space"`
}

// OutputConfig holds result rendering options
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Limit  int    `mapstructure:"limit"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// flagKeys maps command-line flag names to configuration keys
var flagKeys = map[string]string{
	"delimiter":   "input.delimiter",
	"trim-spaces": "input.trim_leading_space",
	"format":      "output.format",
	"limit":       "output.limit",
	"log-level":   "log.level",
	"log-format":  "log.format",
	"log-output":  "log.output",
}

// Default configuration values
func defaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Delimiter:        ",",
			TrimLeadingSpace: false,
		},
		Output: OutputConfig{
			Format: "table",
			Limit:  0, // unlimited
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads configuration from defaults, an optional file, the environment
// and, when flags is non-nil, the command line. Later sources win.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	cfg := defaultConfig()
	v.SetDefault("input.delimiter", cfg.Input.Delimiter)
	v.SetDefault("input.trim_leading_space", cfg.Input.TrimLeadingSpace)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.limit", cfg.Output.Limit)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.output", cfg.Log.Output)

	// Environment variable support: CSVCAT_OUTPUT_FORMAT, CSVCAT_LOG_LEVEL, ...
	v.SetEnvPrefix("CSVCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load config file if specified
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("csvcat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.csvcat")

		// It's okay if no config file is found - we use defaults. A file
		// that exists but does not parse is still an error.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	// Unmarshal into struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bindFlags overrides configuration keys with flags the user actually set.
// Unset flags are skipped so their defaults never shadow file or env values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Validate checks that configuration values are sensible
func (c *Config) Validate() error {
	if _, err := reader.ParseDelimiter(c.Input.Delimiter); err != nil {
		return fmt.Errorf("invalid input.delimiter: %w", err)
	}

	if _, err := output.New(c.Output.Format, nil); err != nil {
		return fmt.Errorf("invalid output.format: %w", err)
	}

	if c.Output.Limit < 0 {
		return fmt.Errorf("output.limit must not be negative, got %d", c.Output.Limit)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Log.Format)] {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	return nil
}

// ReaderOptions converts the input section into reader options
func (c *Config) ReaderOptions() (reader.Options, error) {
	delim, err := reader.ParseDelimiter(c.Input.Delimiter)
	if err != nil {
		return reader.Options{}, err
	}
	return reader.Options{Delimiter: delim, TrimLeadingSpace: c.Input.TrimLeadingSpace}, nil
}
