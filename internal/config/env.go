package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable overrides
const (
	EnvAddr     = "FUNDGRAPH_ADDR"
	EnvLogEnv   = "FUNDGRAPH_ENV"
	EnvIDSource = "FUNDGRAPH_ID_SOURCE"
	EnvSeed     = "FUNDGRAPH_SEED"
	EnvJitter   = "FUNDGRAPH_JITTER"
)

// loadDotEnv reads ./.env if present. A missing file is not an error, a
// malformed one is. Variables already set in the environment win.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// applyEnv overrides file values with FUNDGRAPH_* environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvLogEnv); v != "" {
		c.Logging.Env = v
	}
	if v := os.Getenv(EnvIDSource); v != "" {
		c.Graph.IDSource = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		c.Graph.Seed = seed
	}
	if v := os.Getenv(EnvJitter); v != "" {
		jitter, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvJitter, err)
		}
		c.Graph.Jitter = jitter
	}
	return nil
}
