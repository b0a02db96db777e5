package core

import "time"

// RuntimeConfig contains settings the terminal driver passes around.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Unit    time.Duration // Length of one elapsed-time tick
	Seed    int64         // RNG seed, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Unit:    time.Second,
		Seed:    0,
	}
}
