// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"gfxlens/internal/analysis"
)

type Config struct {
	ModPath    string   `toml:"mod_path"`
	Extensions []string `toml:"extensions"`
	Exclude    Exclude  `toml:"exclude"`
	Watch      Watch    `toml:"watch"`
	Output     Output   `toml:"output"`
	History    History  `toml:"history"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
	// MaxRunsPerMinute caps watch-triggered re-analysis.
	MaxRunsPerMinute float64 `toml:"max_runs_per_minute"`
}

type Output struct {
	TSV     string `toml:"tsv"`
	Summary string `toml:"summary"`
}

type History struct {
	Path       string `toml:"path"`
	ProjectKey string `toml:"project_key"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a usable config when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.ModPath == "" {
		c.ModPath = "."
	}
	if len(c.Extensions) == 0 {
		c.Extensions = analysis.DefaultExtensions
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = 500 * time.Millisecond
	}
	if c.Watch.MaxRunsPerMinute == 0 {
		c.Watch.MaxRunsPerMinute = 12
	}
	if c.History.ProjectKey == "" {
		c.History.ProjectKey = "default"
	}
}
