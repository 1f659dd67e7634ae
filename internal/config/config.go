// Package config loads the server configuration from an optional YAML file
// and SMJ_-prefixed environment variables, with workable defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Paths  PathsConfig  `mapstructure:"paths"`
	Index  IndexConfig  `mapstructure:"index"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// PathsConfig holds the on-disk layout: record files under Data, category
// directories under Uploads.
type PathsConfig struct {
	Data    string `mapstructure:"data"`
	Uploads string `mapstructure:"uploads"`
}

// IndexConfig selects and locates the music metadata index backend.
type IndexConfig struct {
	Backend string `mapstructure:"backend"` // "sqlite" or "bleve"
	Path    string `mapstructure:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the configuration. When file is non-empty it must exist; an
// empty file argument falls back to config.yaml in the working directory,
// which is optional.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.listen", ":5000")
	v.SetDefault("paths.data", "data")
	v.SetDefault("paths.uploads", "uploads")
	v.SetDefault("index.backend", "sqlite")
	v.SetDefault("index.path", "data/tracks.sqlite")
	v.SetDefault("log.level", "info")

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("SMJ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Index.Backend {
	case "sqlite", "bleve":
	default:
		return fmt.Errorf("config: unknown index backend %q", cfg.Index.Backend)
	}
	if cfg.Paths.Data == "" || cfg.Paths.Uploads == "" {
		return fmt.Errorf("config: data and uploads paths must be set")
	}
	return nil
}
