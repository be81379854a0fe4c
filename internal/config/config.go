// Package config provides configuration management for fundgraph.
//
// Config file locations (priority order, see SearchPaths):
//  1. $FUNDGRAPH_CONFIG
//  2. ./fundgraph.yaml
//  3. <user config dir>/fundgraph/config.yaml ($XDG_CONFIG_HOME or ~/.config on Linux)
//  4. /etc/fundgraph/config.yaml
//
// A .env file in the working directory is loaded first, and FUNDGRAPH_*
// environment variables override values from the file. Keys missing from
// the file keep their DefaultConfig values.
package config

import (
	"fmt"
	"os"
	"time"

	"fundgraph/internal/domain"

	"gopkg.in/yaml.v3"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	if err := loadDotEnv(); err != nil {
		return nil, "", err
	}

	path := FindConfigPath()
	if path == "" {
		cfg := DefaultConfig()
		if err := cfg.applyEnv(); err != nil {
			return nil, "", err
		}
		return cfg, "", cfg.Validate()
	}

	return loadFile(path)
}

// LoadFromPath loads config from a specific path. The .env file and
// FUNDGRAPH_* overrides apply exactly as they do for Load.
func LoadFromPath(path string) (*Config, string, error) {
	if err := loadDotEnv(); err != nil {
		return nil, path, err
	}
	return loadFile(path)
}

func loadFile(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	// Decoding over the defaults leaves keys absent from the file untouched,
	// including bools whose default is true.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, path, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Server: ServerConfig{
			Addr:         ":3000",
			ReadTimeout:  Duration(10 * time.Second),
			WriteTimeout: Duration(30 * time.Second),
			IdleTimeout:  Duration(60 * time.Second),
			CORSOrigin:   "*",
		},
		Logging: LoggingConfig{Env: "development"},
		Graph: GraphConfig{
			IDSource: domain.IDSourceCounter,
			Jitter:   domain.DefaultJitter,
			Render:   domain.DefaultRenderConfig(),
		},
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Graph.IDSource != domain.IDSourceCounter && c.Graph.IDSource != domain.IDSourceUUID {
		return fmt.Errorf("graph.id_source must be %q or %q, got %q", domain.IDSourceCounter, domain.IDSourceUUID, c.Graph.IDSource)
	}
	if c.Graph.Jitter < 0 {
		return fmt.Errorf("graph.jitter must not be negative")
	}
	if c.Graph.Render.Width <= 0 || c.Graph.Render.Height <= 0 {
		return fmt.Errorf("graph.render width and height must be positive")
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Logging.Env == "production"
}

// EffectiveSeed returns the configured PRNG seed, or a clock-derived one when unset
func (c *Config) EffectiveSeed() uint64 {
	if c.Graph.Seed != 0 {
		return c.Graph.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	summary := fmt.Sprintf("Listen: %s, Log env: %s\n", c.Server.Addr, c.Logging.Env)
	summary += fmt.Sprintf("IDs: %s, Jitter: %.0f, Seed: %d\n", c.Graph.IDSource, c.Graph.Jitter, c.Graph.Seed)
	summary += fmt.Sprintf("Canvas: %dx%d", c.Graph.Render.Width, c.Graph.Render.Height)
	return summary
}
