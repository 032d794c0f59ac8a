package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Environment variables read at startup
const (
	// EnvLogLevel selects the diagnostic log level (debug, info, warn, error)
	EnvLogLevel = "BINARYSEARCH_LOG_LEVEL"

	// EnvNoColor disables highlighting when set to any non-empty value
	EnvNoColor = "NO_COLOR"
)

// ErrInvalidConfig is returned by Validate when the configuration cannot be used
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the game configuration
type Config struct {
	// ArraySize is the number of values generated per round
	ArraySize int

	// MinNum is the smallest value that may be generated (inclusive)
	MinNum int

	// MaxNum is the largest value that may be generated (inclusive)
	MaxNum int

	// LogLevel is the minimum level of diagnostic logs written to stderr
	LogLevel slog.Level

	// NoColor disables highlighting of error messages
	NoColor bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		ArraySize: 10,
		MinNum:    0,
		MaxNum:    100,
		LogLevel:  slog.LevelWarn,
		NoColor:   false,
	}
}

// ApplyEnv overrides the ambient settings from the environment.
// The game constants are never read from the environment.
func (c *Config) ApplyEnv(getenv func(key string) string) error {
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvLogLevel, v, err)
		}
		c.LogLevel = level
	}
	if getenv(EnvNoColor) != "" {
		c.NoColor = true
	}
	return nil
}

// Validate checks that the configuration describes a usable range
func (c *Config) Validate() error {
	if c.ArraySize < 0 {
		return fmt.Errorf("%w: array size %d is negative", ErrInvalidConfig, c.ArraySize)
	}
	if c.MaxNum < c.MinNum {
		return fmt.Errorf("%w: max %d is less than min %d", ErrInvalidConfig, c.MaxNum, c.MinNum)
	}
	return nil
}
