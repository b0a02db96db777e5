package config

import (
	_ "embed"
)

//go:embed defaults/fifteen.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It matches defaults/fifteen.yaml.
func Default() Config {
	return Config{
		Timer: TimerConfig{
			UnitMS: 1000,
		},
		Rules: RulesConfig{
			Adjacency: "row-aware",
		},
		Storage: StorageConfig{
			Path: "~/.fifteen/results.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
