// Package config loads the application's configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"prwatch/internal/logger"
)

// Defaults applied when the config file leaves fields unset.
const (
	DefaultPollInterval = 60 * time.Second
	MinPollInterval     = 10 * time.Second
	DefaultServerAddr   = "127.0.0.1:7868"
)

// Config holds the application's configuration values. It is reloaded at the
// start of every poll so edits take effect without restarting the daemon.
type Config struct {
	Repos               []string      `mapstructure:"repos"`
	PollIntervalSeconds int           `mapstructure:"poll_interval_seconds"`
	GitHubToken         string        `mapstructure:"github_token"`
	SnapshotPath        string        `mapstructure:"snapshot_path"`
	Server              ServerConfig  `mapstructure:"server"`
	Logging             logger.Config `mapstructure:"logging"`
	Notify              NotifyConfig  `mapstructure:"notify"`
}

// ServerConfig configures the local HTTP control API.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// NotifyConfig configures desktop notification delivery.
type NotifyConfig struct {
	// Command overrides the platform notifier. It is run as
	// "command <title> <subtitle> <message>".
	Command string `mapstructure:"command"`
	Sound   bool   `mapstructure:"sound"`
}

// PollInterval returns the configured poll interval clamped to the minimum.
func (c *Config) PollInterval() time.Duration {
	d := time.Duration(c.PollIntervalSeconds) * time.Second
	if d < MinPollInterval {
		return DefaultPollInterval
	}
	return d
}

// Dir returns the directory holding the config file and, by default, the
// snapshot file.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "prwatch"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads configuration from the default path. See LoadFrom.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path, applies PRWATCH_* environment
// overrides and defaults, and validates the result. A missing config file is
// not an error; the defaults plus environment are used instead.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("poll_interval_seconds", int(DefaultPollInterval/time.Second))
	v.SetDefault("server.addr", DefaultServerAddr)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("notify.sound", true)

	v.SetEnvPrefix("PRWATCH")
	v.AutomaticEnv()
	_ = v.BindEnv("github_token", "PRWATCH_GITHUB_TOKEN", "GITHUB_TOKEN")

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = filepath.Join(filepath.Dir(path), "state.json")
	}
	if cfg.Logging.Output == "file" && cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(filepath.Dir(path), "prwatch.log")
	}
	return &cfg, nil
}
