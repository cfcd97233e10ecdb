// Package config resolves polarity settings from flags, environment
// variables and an optional polarity.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "POLARITY"

// Config holds resolved settings
type Config struct {
	// Corpus is a YAML/JSON corpus file; empty means the built-in corpus
	Corpus string `mapstructure:"corpus"`

	// Format selects output rendering: terminal or json
	Format string `mapstructure:"format"`

	Verbose bool `mapstructure:"verbose"`
}

// Load builds a Config. Flags that were set explicitly win over
// environment variables, which win over the config file. configFile may
// be empty, in which case polarity.yaml is searched for in the working
// directory and $HOME/.config/polarity; a missing file is not an error.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("corpus", "")
	v.SetDefault("format", "terminal")
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, name := range []string{"corpus", "format", "verbose"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("polarity")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "polarity"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks option values
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case "", "terminal":
		c.Format = "terminal"
	case "json":
	default:
		return fmt.Errorf("invalid format %q (want terminal or json)", c.Format)
	}
	return nil
}
