package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Empty(t, cfg.Repos)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval())
	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Notify.Sound)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "state.json"), cfg.SnapshotPath)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
repos:
  - acme/widget
  - acme/gadget
poll_interval_seconds: 120
github_token: tok123
server:
  addr: "127.0.0.1:9999"
logging:
  level: debug
  output: file
notify:
  sound: false
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"acme/widget", "acme/gadget"}, cfg.Repos)
	assert.Equal(t, 120*time.Second, cfg.PollInterval())
	assert.Equal(t, "tok123", cfg.GitHubToken)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(dir, "prwatch.log"), cfg.Logging.File)
	assert.False(t, cfg.Notify.Sound)
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repos: [unterminated"), 0o600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestPollIntervalClampsTinyValues(t *testing.T) {
	cfg := &Config{PollIntervalSeconds: 1}
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval())

	cfg.PollIntervalSeconds = 30
	assert.Equal(t, 30*time.Second, cfg.PollInterval())
}

func TestStarterYAMLRoundTrips(t *testing.T) {
	body, err := StarterYAML()
	require.NoError(t, err)

	var s starterConfig
	require.NoError(t, yaml.Unmarshal(body, &s))
	assert.Equal(t, []string{"owner/repo"}, s.Repos)
	assert.Equal(t, DefaultServerAddr, s.Server.Addr)

	// The rendered starter must be loadable by LoadFrom.
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, body, 0o600))
	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"owner/repo"}, cfg.Repos)
}
