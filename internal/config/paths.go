package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath names an explicit config file
	EnvConfigPath = "FUNDGRAPH_CONFIG"
	// ConfigFileName is looked up in the working directory
	ConfigFileName = "fundgraph.yaml"
	// ConfigDirName is the per-user and system config directory name
	ConfigDirName = "fundgraph"

	systemConfigDir = "/etc"
	userConfigFile  = "config.yaml"
)

// SearchPaths lists the candidate config files in priority order. Entries
// whose base directory cannot be determined are omitted.
func SearchPaths() []string {
	var paths []string

	if explicit := os.Getenv(EnvConfigPath); explicit != "" {
		paths = append(paths, explicit)
	}

	paths = append(paths, ConfigFileName)

	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, ConfigDirName, userConfigFile))
	}

	return append(paths, filepath.Join(systemConfigDir, ConfigDirName, userConfigFile))
}

// FindConfigPath returns the first existing file from SearchPaths, made
// absolute when possible, or "" when none exists
func FindConfigPath() string {
	for _, path := range SearchPaths() {
		if !isFile(path) {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	}
	return ""
}

// DefaultConfigPath is where `config init` writes when no path is given:
// the per-user config file, or ./fundgraph.yaml without a user config dir
func DefaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, ConfigDirName, userConfigFile)
	}
	return ConfigFileName
}

// EnsureConfigDir creates the directory that will hold configPath
func EnsureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0o755)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
