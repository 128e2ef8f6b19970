package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// starterConfig is the shape of the config file written by "prwatch-cli init".
type starterConfig struct {
	Repos               []string           `yaml:"repos"`
	PollIntervalSeconds int                `yaml:"poll_interval_seconds"`
	GitHubToken         string             `yaml:"github_token"`
	Server              starterServer      `yaml:"server"`
	Logging             starterLogging     `yaml:"logging"`
	Notify              starterNotify      `yaml:"notify"`
}

type starterServer struct {
	Addr string `yaml:"addr"`
}

type starterLogging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

type starterNotify struct {
	Sound bool `yaml:"sound"`
}

// StarterYAML renders a commented starter config file.
func StarterYAML() ([]byte, error) {
	s := starterConfig{
		Repos:               []string{"owner/repo"},
		PollIntervalSeconds: int(DefaultPollInterval / time.Second),
		Server:              starterServer{Addr: DefaultServerAddr},
		Logging:             starterLogging{Level: "info", Format: "text", Output: "stderr"},
		Notify:              starterNotify{Sound: true},
	}
	body, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("render starter config: %w", err)
	}
	header := []byte("# prwatch configuration. The token falls back to $GITHUB_TOKEN when empty.\n")
	return append(header, body...), nil
}
