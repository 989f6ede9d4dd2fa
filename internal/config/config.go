// Package config loads ringtail settings from defaults, an optional YAML
// file and RINGTAIL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/momentics/cowring/api"
)

// Config represents the ringtail configuration.
type Config struct {
	Tail    TailConfig    `mapstructure:"tail"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TailConfig holds tail settings.
type TailConfig struct {
	Lines       int  `mapstructure:"lines"`        // ring capacity per input
	ShowEvicted bool `mapstructure:"show_evicted"` // echo evicted lines to stderr
	Stats       bool `mapstructure:"stats"`        // log ring stats after each run
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
	File   string `mapstructure:"file"`
}

// Load loads configuration from file. An empty path searches
// $HOME/.ringtail and the working directory for ringtail.yaml; a missing
// file there is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".ringtail"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("ringtail")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("RINGTAIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise panic deeper in the stack.
func (c *Config) Validate() error {
	if c.Tail.Lines <= 0 {
		return api.Wrap(api.ErrCodeInvalidArgument, api.ErrInvalidCapacity).
			WithContext("tail.lines", c.Tail.Lines)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return api.NewError(api.ErrCodeInvalidArgument, "logging.format must be json or text").
			WithContext("logging.format", c.Logging.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tail.lines", 10)
	v.SetDefault("tail.show_evicted", false)
	v.SetDefault("tail.stats", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.file", "")
}
