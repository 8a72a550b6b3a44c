package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Settings are process-level knobs that do not belong in a scenario file.
type Settings struct {
	LogLevel     string `env:"SKIRMISH_LOG_LEVEL" envDefault:"info"`
	Workers      int    `env:"SKIRMISH_WORKERS" envDefault:"8"`
	MaxHalfTurns int    `env:"SKIRMISH_MAX_HALF_TURNS" envDefault:"200"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
