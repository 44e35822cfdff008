package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrInvalidOutput = errors.New("invalid output type")
	ErrNoVariants    = errors.New("no variants configured")
)

// Outputs accepted by FURNCTL_OUTPUT and the --output flag.
var Outputs = []string{"table", "wide", "json", "yaml"}

// Config holds the furnctl settings read from the environment
type Config struct {
	Variants []string `env:"FURNCTL_VARIANTS" envDefault:"modern,victorian" envSeparator:","`
	Output   string   `env:"FURNCTL_OUTPUT" envDefault:"table"`
	Narrate  bool     `env:"FURNCTL_NARRATE" envDefault:"false"`
	Verbose  bool     `env:"FURNCTL_VERBOSE" envDefault:"false"`
}

// NewConfig loads .env files if present and parses the environment.
// Missing .env files are not an error.
func NewConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for values no command can use
func Validate(cfg *Config) error {
	if len(cfg.Variants) == 0 {
		return ErrNoVariants
	}
	if !slices.Contains(Outputs, cfg.Output) {
		return fmt.Errorf("%w %q, must be one of %v", ErrInvalidOutput, cfg.Output, Outputs)
	}
	return nil
}
