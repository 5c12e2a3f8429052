// Package config handles application configuration.
//
// Configuration is split into two categories:
//   - Protocol rules: the mint-eligibility tables (miner tags, tribute
//     output), which must match across every node replaying the contract
//   - Node settings: data directory and logging, which can vary per node
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds node-specific runtime configuration.
type Config struct {
	DataDir string
	Log     LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	JSON  bool
	File  string
}

// Default returns the default node configuration.
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// DefaultDataDir returns the platform-specific default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".embermint"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Embermint")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Embermint")
	default:
		return filepath.Join(home, ".embermint")
	}
}
