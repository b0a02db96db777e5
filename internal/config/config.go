// Package config provides YAML-based configuration loading for fifteen.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fifteen/internal/puzzle"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Config contains all configuration for the game.
type Config struct {
	Timer   TimerConfig   `yaml:"timer"`
	Rules   RulesConfig   `yaml:"rules"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// TimerConfig defines the elapsed-time unit.
type TimerConfig struct {
	UnitMS int `yaml:"unit_ms"`
}

// RulesConfig defines move legality.
type RulesConfig struct {
	Adjacency string `yaml:"adjacency"` // "row-aware" or "naive"
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig defines the log verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Unit returns the timer unit as a duration.
func (c Config) Unit() time.Duration {
	return time.Duration(c.Timer.UnitMS) * time.Millisecond
}

// Rule returns the parsed adjacency rule.
func (c Config) Rule() (puzzle.AdjacencyRule, error) {
	return puzzle.ParseRule(c.Rules.Adjacency)
}

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	if c.Timer.UnitMS <= 0 {
		return fmt.Errorf("%w: timer.unit_ms must be positive, got %d", ErrInvalidConfig, c.Timer.UnitMS)
	}
	if _, err := c.Rule(); err != nil {
		return fmt.Errorf("%w: rules.adjacency: %w", ErrInvalidConfig, err)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}
