// Package config holds all statscards configuration.
// Precedence: command-line flags > environment > config file > defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all statscards configuration.
type Config struct {
	// Account whose repositories are aggregated.
	Username string `yaml:"username"`

	// Optional API token. Without it, requests fall back to the
	// unauthenticated (rate-limited) API.
	Token string `yaml:"token"`

	// Directory the SVG cards are written into.
	OutputDir string `yaml:"output_dir"`

	// GitHub API client settings.
	GitHub GitHubConfig `yaml:"github"`

	// Chart rendering settings.
	Chart ChartConfig `yaml:"chart"`
}

// GitHubConfig configures the GitHub API client.
type GitHubConfig struct {
	BaseURL     string `yaml:"base_url"`
	Timeout     string `yaml:"timeout"`
	Concurrency int    `yaml:"concurrency"`
}

// RequestTimeout parses the configured per-call timeout, falling back
// to 30s when unset or unparseable.
func (g GitHubConfig) RequestTimeout() time.Duration {
	if g.Timeout == "" {
		return 30 * time.Second
	}
	d, err := time.ParseDuration(g.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// ChartConfig configures chart rendering.
type ChartConfig struct {
	// TopN is how many languages appear individually in the donut;
	// everything past the cutoff is merged into "Other".
	TopN int `yaml:"top_n"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		OutputDir: "assets",
		GitHub: GitHubConfig{
			BaseURL:     "https://api.github.com",
			Timeout:     "30s",
			Concurrency: 5,
		},
		Chart: ChartConfig{
			TopN: 5,
		},
	}
}

// Load reads configuration from an optional YAML file, then applies
// environment overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return cfg, nil
}

// applyEnvOverrides reads well-known environment variables.
// GITHUB_USERNAME wins over GITHUB_ACTOR; GITHUB_TOKEN over GH_TOKEN.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GITHUB_USERNAME"); v != "" {
		c.Username = v
	} else if v := os.Getenv("GITHUB_ACTOR"); v != "" && c.Username == "" {
		c.Username = v
	}

	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		c.Token = v
	} else if v := os.Getenv("GH_TOKEN"); v != "" && c.Token == "" {
		c.Token = v
	}
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := Default()
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.GitHub.BaseURL == "" {
		c.GitHub.BaseURL = def.GitHub.BaseURL
	}
	if c.GitHub.Timeout == "" {
		c.GitHub.Timeout = def.GitHub.Timeout
	}
	if c.GitHub.Concurrency <= 0 {
		c.GitHub.Concurrency = def.GitHub.Concurrency
	}
	if c.Chart.TopN <= 0 {
		c.Chart.TopN = def.Chart.TopN
	}
}

// Validate reports configuration problems that make a run impossible.
func (c *Config) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("no username configured: set --user, GITHUB_USERNAME, or the config file")
	}
	return nil
}
